package models

import (
	"time"
)

// Date is an optional calendar date. The zero value is absent.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate returns a present date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// ParseDate parses YYYY-MM-DD text. Empty text is an absent date, not an error.
func ParseDate(text string) (Date, error) {
	if text == "" {
		return Date{}, nil
	}

	t, err := time.Parse(time.DateOnly, text)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t, Valid: true}, nil
}

// Compare orders two present dates chronologically.
func (d Date) Compare(other Date) int {
	return d.Time.Compare(other.Time)
}

func (d Date) String() string {
	if !d.Valid {
		return "null"
	}
	return d.Time.Format(time.DateOnly)
}
