package layout

import (
	"fyne.io/fyne/v2"
)

// Span is a run of day columns occupied by one object
type Span struct {
	Start int
	Days  int
}

// DaySpanLayout places each object over its span of fixed-width day columns.
// Objects beyond the registered spans fill the whole row.
type DaySpanLayout struct {
	spans     []Span
	days      int
	cellWidth float32
	rowHeight float32
}

func NewDaySpanLayout(days int, cellWidth, rowHeight float32, spans ...Span) *DaySpanLayout {
	return &DaySpanLayout{
		spans:     spans,
		days:      days,
		cellWidth: cellWidth,
		rowHeight: rowHeight,
	}
}

func (dsl *DaySpanLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for i, obj := range objects {
		if i >= len(dsl.spans) {
			obj.Resize(containerSize)
			obj.Move(fyne.NewPos(0, 0))
			continue
		}

		span := dsl.spans[i]
		obj.Resize(fyne.NewSize(float32(span.Days)*dsl.cellWidth, containerSize.Height))
		obj.Move(fyne.NewPos(float32(span.Start)*dsl.cellWidth, 0))
	}
}

func (dsl *DaySpanLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(float32(dsl.days)*dsl.cellWidth, dsl.rowHeight)
}

// FixedRowLayout stacks objects top to bottom, each exactly rowHeight tall, so
// independent columns of rows stay aligned.
type FixedRowLayout struct {
	rowHeight float32
}

func NewFixedRowLayout(rowHeight float32) *FixedRowLayout {
	return &FixedRowLayout{rowHeight: rowHeight}
}

func (frl *FixedRowLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	y := float32(0)
	for _, obj := range objects {
		obj.Resize(fyne.NewSize(containerSize.Width, frl.rowHeight))
		obj.Move(fyne.NewPos(0, y))
		y += frl.rowHeight
	}
}

func (frl *FixedRowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	maxWidth := float32(0)
	for _, obj := range objects {
		maxWidth = fyne.Max(maxWidth, obj.MinSize().Width)
	}

	return fyne.NewSize(maxWidth, frl.rowHeight*float32(len(objects)))
}
