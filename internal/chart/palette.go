package chart

import (
	"fmt"
	"image/color"
)

// Palette is the cycle of bar colors, indexed by row.
var Palette = []color.NRGBA{
	{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, // red
	{R: 0xff, G: 0xff, B: 0x00, A: 0xff}, // yellow
	{R: 0x00, G: 0x00, B: 0xff, A: 0xff}, // blue
	{R: 0xff, G: 0xc8, B: 0x00, A: 0xff}, // orange
	{R: 0xff, G: 0x00, B: 0xff, A: 0xff}, // magenta
	{R: 0x00, G: 0xff, B: 0x00, A: 0xff}, // green
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff}, // black
}

var (
	Background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	HeaderFill = color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
)

// ColorFor returns the palette entry for a row index.
func ColorFor(row int) color.NRGBA {
	return Palette[row%len(Palette)]
}

// Hex formats a color as #rrggbb.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
