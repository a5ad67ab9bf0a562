package textchart

import (
	"fmt"
	"io"
	"strings"

	"release-gantt/internal/chart"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledCell = "█"
	emptyCell  = "·"
)

type Options struct {
	// DaysPerCell folds that many days into one character column.
	DaysPerCell int
}

// Render writes the chart as text, one line per row followed by the date axis
// and the caption. Colors are only emitted when w is a color terminal.
func Render(w io.Writer, l *chart.Layout, opts Options) error {
	if opts.DaysPerCell <= 0 {
		opts.DaysPerCell = 1
	}

	renderer := lipgloss.NewRenderer(w)
	nameWidth := 0
	for _, row := range l.Rows {
		nameWidth = max(nameWidth, lipgloss.Width(row.Name))
	}
	nameStyle := renderer.NewStyle().Width(nameWidth + 1)
	emptyStyle := renderer.NewStyle().Foreground(lipgloss.Color("#c0c0c0"))
	captionStyle := renderer.NewStyle().Bold(true)

	cells := columns(l.Days, opts.DaysPerCell)
	var b strings.Builder
	for _, row := range l.Rows {
		barStyle := renderer.NewStyle().Foreground(lipgloss.Color(chart.Hex(row.Color)))

		b.WriteString(nameStyle.Render(row.Name))
		for c := 0; c < cells; c++ {
			first := c * opts.DaysPerCell
			if row.Overlaps(first, first+opts.DaysPerCell-1) {
				b.WriteString(barStyle.Render(filledCell))
			} else {
				b.WriteString(emptyStyle.Render(emptyCell))
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(" ", nameWidth+1))
	b.WriteString(axis(l.Ticks, cells, opts.DaysPerCell))
	b.WriteByte('\n')
	b.WriteString(captionStyle.Render(l.Caption))
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

func columns(days, perCell int) int {
	return (days + perCell - 1) / perCell
}

// axis places each tick label at its cell, dropping labels that would
// overlap the previous one.
func axis(ticks []chart.Tick, cells, perCell int) string {
	line := []rune(strings.Repeat(" ", cells))
	next := 0
	for _, tick := range ticks {
		at := tick.Day / perCell
		if at < next {
			continue
		}
		label := []rune("|" + tick.Label)
		for len(line) < at+len(label) {
			line = append(line, ' ')
		}
		copy(line[at:], label)
		next = at + len(label) + 1
	}
	return strings.TrimRight(string(line), " ")
}
