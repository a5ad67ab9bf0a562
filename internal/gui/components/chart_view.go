package components

import (
	"release-gantt/internal/chart"
	"release-gantt/internal/gui/layout"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const RowHeight = 26

// ChartView is the Gantt grid: a fixed name column on the left and a
// horizontally scrolling block of day rows with the date axis underneath.
type ChartView struct {
	container *fyne.Container
	names     *fyne.Container
	rows      *fyne.Container
	scroll    *container.Scroll
	cellWidth float32
	onHover   func(string)
}

func NewChartView(cellWidth float32, onHover func(string)) *ChartView {
	names := container.New(layout.NewFixedRowLayout(RowHeight))
	rows := container.New(layout.NewFixedRowLayout(RowHeight))
	scroll := container.NewHScroll(rows)

	nameColumn := container.NewStack(canvas.NewRectangle(chart.HeaderFill), names)
	main := container.NewBorder(nil, nil, nameColumn, nil, scroll)

	return &ChartView{
		container: main,
		names:     names,
		rows:      rows,
		scroll:    scroll,
		cellWidth: cellWidth,
		onHover:   onHover,
	}
}

func (cv *ChartView) GetContainer() *fyne.Container {
	return cv.container
}

// SetLayout replaces the displayed chart.
func (cv *ChartView) SetLayout(l *chart.Layout) {
	names := make([]fyne.CanvasObject, 0, len(l.Rows)+1)
	rows := make([]fyne.CanvasObject, 0, len(l.Rows)+1)

	for _, row := range l.Rows {
		names = append(names, widget.NewLabel(row.Name))
		rows = append(rows, cv.buildRow(l, row))
	}
	names = append(names, widget.NewLabelWithStyle(l.Caption, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	rows = append(rows, cv.buildAxis(l))

	cv.names.Objects = names
	cv.rows.Objects = rows
	cv.names.Refresh()
	cv.rows.Refresh()
	cv.scroll.Offset = fyne.NewPos(0, 0)
	cv.scroll.Refresh()
}

// RowCount is the number of release rows currently shown.
func (cv *ChartView) RowCount() int {
	if len(cv.rows.Objects) == 0 {
		return 0
	}
	return len(cv.rows.Objects) - 1
}

// Row returns the canvas objects of release row i: the background first, then
// the bar when the release has one.
func (cv *ChartView) Row(i int) []fyne.CanvasObject {
	return cv.rows.Objects[i].(*fyne.Container).Objects
}

func (cv *ChartView) buildRow(l *chart.Layout, row chart.Row) fyne.CanvasObject {
	full := layout.Span{Start: 0, Days: l.Days}
	if !row.HasBar {
		blank := NewCell(chart.Background, row.Tooltip, cv.onHover)
		return container.New(layout.NewDaySpanLayout(l.Days, cv.cellWidth, RowHeight, full), blank)
	}

	bar := layout.Span{Start: row.StartDay, Days: row.EndDay - row.StartDay + 1}
	return container.New(
		layout.NewDaySpanLayout(l.Days, cv.cellWidth, RowHeight, full, bar),
		canvas.NewRectangle(chart.Background),
		NewCell(row.Color, row.Tooltip, cv.onHover),
	)
}

func (cv *ChartView) buildAxis(l *chart.Layout) fyne.CanvasObject {
	spans := []layout.Span{{Start: 0, Days: l.Days}}
	objects := []fyne.CanvasObject{canvas.NewRectangle(chart.HeaderFill)}

	for i, tick := range l.Ticks {
		end := l.Days
		if i+1 < len(l.Ticks) {
			end = l.Ticks[i+1].Day
		}
		spans = append(spans, layout.Span{Start: tick.Day, Days: end - tick.Day})

		label := canvas.NewText("  "+tick.Label, theme.Color(theme.ColorNameForeground))
		label.TextSize = theme.CaptionTextSize()
		objects = append(objects, label)
	}

	return container.New(layout.NewDaySpanLayout(l.Days, cv.cellWidth, RowHeight, spans...), objects...)
}
