package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// SortField is a field the events list can be ordered by.
type SortField string

const (
	SortByName      SortField = "name"
	SortByDate      SortField = "date"
	SortByCreatedAt SortField = "createdAt"
)

// SortOrder is the direction of the events list ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// Default ordering when a search leaves it unset.
const (
	DefaultSortBy    = SortByDate
	DefaultSortOrder = SortAsc
)

// EventFilters refines an events listing. Zero values mean "not set".
type EventFilters struct {
	Name      string
	Place     string
	StartDate time.Time
	EndDate   time.Time
	SortBy    SortField
	SortOrder SortOrder
}

// ParseSortField validates s as a SortField. The empty string is accepted as unset.
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case "", SortByName, SortByDate, SortByCreatedAt:
		return f, nil
	}
	return "", fmt.Errorf("invalid sort field %q", s)
}

// ParseSortOrder validates s as a SortOrder. The empty string is accepted as unset.
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case "", SortAsc, SortDesc:
		return o, nil
	}
	return "", fmt.Errorf("invalid sort order %q", s)
}

// WithDefaults returns a copy with SortBy and SortOrder filled in when unset.
func (f EventFilters) WithDefaults() EventFilters {
	if f.SortBy == "" {
		f.SortBy = DefaultSortBy
	}
	if f.SortOrder == "" {
		f.SortOrder = DefaultSortOrder
	}
	return f
}

// HasActive reports whether any narrowing filter is set. Ordering does not count.
func (f EventFilters) HasActive() bool {
	return f.Name != "" || f.Place != "" || !f.StartDate.IsZero() || !f.EndDate.IsZero()
}

// IsZero reports whether no field is set.
func (f EventFilters) IsZero() bool {
	return !f.HasActive() && f.SortBy == "" && f.SortOrder == ""
}

// Matches reports whether e passes the narrowing filters: case-insensitive
// substring match on name and place, inclusive date range.
func (f EventFilters) Matches(e Event) bool {
	if f.Name != "" && !containsFold(e.Name, f.Name) {
		return false
	}
	if f.Place != "" && !containsFold(e.Place, f.Place) {
		return false
	}
	if !f.StartDate.IsZero() && e.Date.Before(f.StartDate) {
		return false
	}
	if !f.EndDate.IsZero() && e.Date.After(f.EndDate) {
		return false
	}
	return true
}

// SortEvents orders events in place. Ties keep id order.
func SortEvents(events []Event, by SortField, order SortOrder) {
	cmpField := func(a, b Event) int {
		switch by {
		case SortByName:
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case SortByCreatedAt:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
		return a.Date.Compare(b.Date)
	}
	slices.SortStableFunc(events, func(a, b Event) int {
		c := cmpField(a, b)
		if order == SortDesc {
			c = -c
		}
		if c == 0 {
			return cmp.Compare(a.ID, b.ID)
		}
		return c
	})
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
