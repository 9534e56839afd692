package screens

import (
	"fmt"
	"time"
)

// DateInputLayout is the layout of date-time form inputs (local time, minute precision).
const DateInputLayout = "2006-01-02T15:04"

// ParseDateInput reads a form date in loc. Full RFC 3339 timestamps are accepted too.
func ParseDateInput(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(DateInputLayout, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected %s", value, DateInputLayout)
}

// FormatDateInput renders t in loc using DateInputLayout.
func FormatDateInput(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateInputLayout)
}
