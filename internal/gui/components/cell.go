package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Cell is a filled block of the chart grid. Hovering it reports its tooltip.
type Cell struct {
	widget.BaseWidget
	fill    color.Color
	tooltip string
	onHover func(string)
}

var _ desktop.Hoverable = (*Cell)(nil)

func NewCell(fill color.Color, tooltip string, onHover func(string)) *Cell {
	cell := &Cell{
		fill:    fill,
		tooltip: tooltip,
		onHover: onHover,
	}
	cell.ExtendBaseWidget(cell)
	return cell
}

func (c *Cell) Fill() color.Color {
	return c.fill
}

func (c *Cell) Tooltip() string {
	return c.tooltip
}

func (c *Cell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(c.fill))
}

func (c *Cell) MouseIn(*desktop.MouseEvent) {
	if c.tooltip != "" && c.onHover != nil {
		c.onHover(c.tooltip)
	}
}

func (c *Cell) MouseMoved(*desktop.MouseEvent) {}

func (c *Cell) MouseOut() {
	if c.tooltip != "" && c.onHover != nil {
		c.onHover("")
	}
}
