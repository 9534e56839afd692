package helpers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"eventsportal/internal/domain"
)

// Date layouts accepted for startDate and endDate, most specific first.
var queryDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

// ParseEventFilters reads the events list query string. It reports whether
// the flat representation was requested with simple=true.
func ParseEventFilters(r *http.Request) (domain.EventFilters, bool, error) {
	q := r.URL.Query()
	var f domain.EventFilters
	f.Name = q.Get("name")
	f.Place = q.Get("place")

	var err error
	if f.StartDate, err = parseQueryDate(q.Get("startDate")); err != nil {
		return f, false, fmt.Errorf("startDate: %w", err)
	}
	if f.EndDate, err = parseQueryDate(q.Get("endDate")); err != nil {
		return f, false, fmt.Errorf("endDate: %w", err)
	}
	if f.SortBy, err = domain.ParseSortField(q.Get("sortBy")); err != nil {
		return f, false, err
	}
	if f.SortOrder, err = domain.ParseSortOrder(q.Get("sortOrder")); err != nil {
		return f, false, err
	}

	simple := false
	if s := q.Get("simple"); s != "" {
		if simple, err = strconv.ParseBool(s); err != nil {
			return f, false, fmt.Errorf("simple: invalid boolean %q", s)
		}
	}
	return f, simple, nil
}

func parseQueryDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range queryDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// PathID parses the {id} path value as a positive integer.
func PathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid event id %q", raw)
	}
	return id, nil
}
