package screens

import (
	"fmt"
	"time"

	"eventsportal/internal/domain"
)

// Search form fields.
const (
	FilterName      = "name"
	FilterPlace     = "place"
	FilterStartDate = "startDate"
	FilterEndDate   = "endDate"
	FilterSortBy    = "sortBy"
	FilterSortOrder = "sortOrder"
)

// EventSearch is the local state of the search panel. It is independent of
// the store's applied filters until Submit.
type EventSearch struct {
	filters  domain.EventFilters
	expanded bool
	loc      *time.Location
}

// NewEventSearch starts from the applied filters.
func NewEventSearch(applied domain.EventFilters) *EventSearch {
	return &EventSearch{filters: applied, loc: time.Local}
}

// WithLocation sets the zone date inputs are read in.
func (s *EventSearch) WithLocation(loc *time.Location) *EventSearch {
	s.loc = loc
	return s
}

// Filters returns the local, unsubmitted filters.
func (s *EventSearch) Filters() domain.EventFilters { return s.filters }

// UpdateFilter sets one field from its form value. Dates use the
// YYYY-MM-DDTHH:MM input layout; an empty value unsets the field.
func (s *EventSearch) UpdateFilter(field, value string) error {
	switch field {
	case FilterName:
		s.filters.Name = value
	case FilterPlace:
		s.filters.Place = value
	case FilterStartDate, FilterEndDate:
		var t time.Time
		if value != "" {
			parsed, err := ParseDateInput(value, s.loc)
			if err != nil {
				return err
			}
			t = parsed
		}
		if field == FilterStartDate {
			s.filters.StartDate = t
		} else {
			s.filters.EndDate = t
		}
	case FilterSortBy:
		by, err := domain.ParseSortField(value)
		if err != nil {
			return err
		}
		s.filters.SortBy = by
	case FilterSortOrder:
		order, err := domain.ParseSortOrder(value)
		if err != nil {
			return err
		}
		s.filters.SortOrder = order
	default:
		return fmt.Errorf("unknown filter %q", field)
	}
	return nil
}

// HasActiveFilters reports whether any narrowing filter is set locally.
func (s *EventSearch) HasActiveFilters() bool { return s.filters.HasActive() }

// IsExpanded reports whether the panel is open.
func (s *EventSearch) IsExpanded() bool { return s.expanded }

// ToggleExpanded opens or closes the panel.
func (s *EventSearch) ToggleExpanded() { s.expanded = !s.expanded }

// Clear resets the local filters.
func (s *EventSearch) Clear() { s.filters = domain.EventFilters{} }

// Submit returns the filters to apply, with the default ordering filled in.
func (s *EventSearch) Submit() domain.EventFilters {
	return s.filters.WithDefaults()
}
