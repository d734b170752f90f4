package handlers

import (
	"errors"
	"time"
)

var errBadDateTime = errors.New("unparsable date-time")

// Layouts accepted for booking instants: full RFC3339, and the
// offset-less forms browser datetime-local inputs produce.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseDate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

func parseDateTime(raw string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, errBadDateTime
}
