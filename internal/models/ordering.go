package models

import (
	"fmt"
	"slices"
	"strings"
)

// DateAccessor selects the date a comparator orders by.
type DateAccessor func(Release) Date

func OpenDateOf(r Release) Date       { return r.OpenDate }
func DependencyDateOf(r Release) Date { return r.DependencyDate }
func CompletionDateOf(r Release) Date { return r.CompletionDate }

// CompareBy returns a comparator ascending on the accessed date, with absent
// dates after all present ones.
func CompareBy(get DateAccessor) func(a, b Release) int {
	return func(a, b Release) int {
		left, right := get(a), get(b)
		switch {
		case !left.Valid && !right.Valid:
			return 0
		case !left.Valid:
			return 1
		case !right.Valid:
			return -1
		default:
			return left.Compare(right)
		}
	}
}

// SortMode selects which date drives display order
type SortMode int

const (
	SortByCompletionDate SortMode = iota
	SortByOpenDate
	SortByDependencyDate
)

func (m SortMode) String() string {
	switch m {
	case SortByCompletionDate:
		return "completion"
	case SortByOpenDate:
		return "open"
	case SortByDependencyDate:
		return "dependency"
	default:
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
}

// Accessor returns the date field the mode orders by.
func (m SortMode) Accessor() DateAccessor {
	switch m {
	case SortByOpenDate:
		return OpenDateOf
	case SortByDependencyDate:
		return DependencyDateOf
	default:
		return CompletionDateOf
	}
}

// Caption labels a chart sorted with this mode.
func (m SortMode) Caption() string {
	switch m {
	case SortByOpenDate:
		return "SORTED BY OPEN DATE."
	case SortByDependencyDate:
		return "SORTED BY DEPENDENCY DATE."
	default:
		return "SORTED BY COMPLETION DATE."
	}
}

// ParseSortMode accepts the config spelling of a mode.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "completion", "rtm", "release":
		return SortByCompletionDate, nil
	case "open", "start":
		return SortByOpenDate, nil
	case "dependency":
		return SortByDependencyDate, nil
	default:
		return 0, fmt.Errorf("unknown sort mode %q", s)
	}
}

// SortReleases orders releases in place by the mode's date. The sort is
// stable, so ties keep their file order.
func SortReleases(releases []Release, mode SortMode) {
	slices.SortStableFunc(releases, CompareBy(mode.Accessor()))
}
