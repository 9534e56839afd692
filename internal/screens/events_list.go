package screens

import (
	"context"

	"eventsportal/internal/domain"
	"eventsportal/internal/store"
)

// EventsList is the list screen: it fetches on load and applies searches.
type EventsList struct {
	store *store.EventStore
}

func NewEventsList(s *store.EventStore) *EventsList {
	return &EventsList{store: s}
}

// State exposes the store snapshot.
func (l *EventsList) State() store.EventState { return l.store.State() }

// Load fetches with the currently applied filters.
func (l *EventsList) Load(ctx context.Context) error {
	return l.store.FetchEvents(ctx, nil)
}

// Search applies filters and fetches.
func (l *EventsList) Search(ctx context.Context, filters domain.EventFilters) error {
	return l.store.FetchEvents(ctx, &filters)
}

// ClearFilters drops the applied filters and fetches everything.
func (l *EventsList) ClearFilters(ctx context.Context) error {
	l.store.ClearFilters()
	return l.store.FetchEvents(ctx, &domain.EventFilters{})
}

// ClearError drops the store error.
func (l *EventsList) ClearError() { l.store.ClearError() }
