package models

import (
	"errors"
	"fmt"
	"strings"
)

// FieldCount is the number of columns in a releases.csv data line.
const FieldCount = 11

var (
	ErrFieldCount  = errors.New("wrong number of fields")
	ErrInvalidDate = errors.New("invalid date")
)

// Column names in file order.
var Columns = [FieldCount]string{
	"id", "name", "type", "status",
	"open_date", "dependency_date", "content_date", "rtm_date",
	"manager", "author", "app_id",
}

// Release is one parsed row of release metadata and lifecycle dates
type Release struct {
	ID             string
	Name           string
	Type           string
	Status         string
	OpenDate       Date
	DependencyDate Date
	ContentDate    Date
	CompletionDate Date
	Manager        string
	Author         string
	AppID          string
}

// NewRelease builds a Release from exactly FieldCount raw fields. Field text is
// kept verbatim, quotes included.
func NewRelease(fields []string) (Release, error) {
	if len(fields) != FieldCount {
		return Release{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), FieldCount)
	}

	dates := make([]Date, 4)
	for i := range dates {
		column := 4 + i
		d, err := ParseDate(fields[column])
		if err != nil {
			return Release{}, fmt.Errorf("%w in %s: %q", ErrInvalidDate, Columns[column], fields[column])
		}
		dates[i] = d
	}

	return Release{
		ID:             fields[0],
		Name:           fields[1],
		Type:           fields[2],
		Status:         fields[3],
		OpenDate:       dates[0],
		DependencyDate: dates[1],
		ContentDate:    dates[2],
		CompletionDate: dates[3],
		Manager:        fields[8],
		Author:         fields[9],
		AppID:          fields[10],
	}, nil
}

// String is the one-line summary shown in chart tooltips.
func (r Release) String() string {
	return fmt.Sprintf("id = %10s, name = %20s, type = %6s, status = %9s, "+
		"open_date = %10s, dependency_date = %10s, content_date = %10s, "+
		"rtm_date = %10s, manager = %20s, author = %20s",
		r.ID, r.Name, strings.TrimSpace(r.Type), r.Status,
		r.OpenDate, r.DependencyDate, r.ContentDate, r.CompletionDate,
		r.Manager, r.Author)
}
