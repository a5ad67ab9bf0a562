package chart

import (
	"image/color"
	"time"

	"release-gantt/internal/models"
)

const day = 24 * time.Hour

// Row is one release line of the chart. StartDay and EndDay are inclusive
// column offsets from Layout.Start and are only meaningful when HasBar is set.
type Row struct {
	Name     string
	Tooltip  string
	HasBar   bool
	StartDay int
	EndDay   int
	Color    color.NRGBA
}

// Overlaps reports whether the bar touches any day column in first..last.
func (r Row) Overlaps(first, last int) bool {
	return r.HasBar && r.StartDay <= last && r.EndDay >= first
}

// Tick is one date label on the header axis.
type Tick struct {
	Day   int
	Label string
}

// Layout is the whole chart. Days is zero when no release has a drawable
// range; every release still gets a row.
type Layout struct {
	Mode    models.SortMode
	Caption string
	Start   time.Time
	End     time.Time
	Days    int
	Rows    []Row
	Ticks   []Tick
}

// BarStart returns the date a release's bar begins at for a mode. Completion
// ordering has no start date of its own and draws from the open date.
func BarStart(r models.Release, mode models.SortMode) models.Date {
	if mode == models.SortByDependencyDate {
		return r.DependencyDate
	}
	return r.OpenDate
}

// Build lays out releases in the given order. A release missing its start or
// completion date, or whose start falls after its completion, gets an empty row.
func Build(releases []models.Release, mode models.SortMode) *Layout {
	var start, end time.Time
	found := false
	for _, r := range releases {
		from, to := BarStart(r, mode), r.CompletionDate
		if !hasSpan(from, to) {
			continue
		}
		if !found || from.Time.Before(start) {
			start = from.Time
		}
		if !found || to.Time.After(end) {
			end = to.Time
		}
		found = true
	}
	layout := &Layout{
		Mode:    mode,
		Caption: mode.Caption(),
		Rows:    make([]Row, len(releases)),
	}
	if found {
		layout.Start = start
		layout.End = end
		layout.Days = daysBetween(start, end) + 1
		layout.Ticks = monthTicks(start, end)
	}

	for i, r := range releases {
		row := Row{
			Name:    r.Name,
			Tooltip: r.String(),
			Color:   ColorFor(i),
		}
		from, to := BarStart(r, mode), r.CompletionDate
		if hasSpan(from, to) {
			row.HasBar = true
			row.StartDay = daysBetween(start, from.Time)
			row.EndDay = daysBetween(start, to.Time)
		}
		layout.Rows[i] = row
	}

	return layout
}

func hasSpan(from, to models.Date) bool {
	return from.Valid && to.Valid && !from.Time.After(to.Time)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / day)
}

// monthTicks steps a whole month at a time from start, clamping to the last
// day of shorter months, while the tick is not after end.
func monthTicks(start, end time.Time) []Tick {
	ticks := make([]Tick, 0)
	for i := 0; ; i++ {
		t := addMonths(start, i)
		if t.After(end) {
			break
		}
		ticks = append(ticks, Tick{Day: daysBetween(start, t), Label: t.Format(time.DateOnly)})
	}
	return ticks
}

func addMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	d := t.Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}
