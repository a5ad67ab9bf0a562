package pipeline

import (
	"strings"

	"release-gantt/internal/models"
)

type scanState int

const (
	outsideQuote scanState = iota
	insideQuote
)

// SplitFields splits one CSV line on commas that are not inside a quoted span.
// Each '"' toggles the span and is kept in the field text; there is no RFC 4180
// unescaping. A comma is a delimiter exactly when an even number of quotes
// precede it.
func SplitFields(line string) []string {
	fields := make([]string, 0, models.FieldCount)
	state := outsideQuote

	// Quote and comma are ASCII, so scanning bytes keeps non-UTF-8 text
	// such as Latin-1 exports intact.
	var field strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if state == outsideQuote {
				state = insideQuote
			} else {
				state = outsideQuote
			}
			field.WriteByte(c)
		case c == ',' && state == outsideQuote:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}

	return append(fields, field.String())
}

// ParseRecord turns one data line into a Release.
func ParseRecord(line string) (models.Release, error) {
	return models.NewRelease(SplitFields(line))
}
