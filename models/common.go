package models

import (
	"strings"
	"time"
)

// dateLayouts lists the accepted date formats, most specific first.
// Layouts without an offset are interpreted as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateRange represents an inclusive range of instants
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange parses both bounds of a range. A start after the end is not an error;
// such a range simply contains nothing.
func NewDateRange(startDate, endDate string) (DateRange, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return DateRange{}, NewInvalidDateError("startDate")
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return DateRange{}, NewInvalidDateError("endDate")
	}
	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether t lies within the range, both bounds included
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDate parses a date or date-time string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, dateStr, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
