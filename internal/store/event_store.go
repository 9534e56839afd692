package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"eventsportal/internal/domain"
	"eventsportal/internal/i18n"
	"eventsportal/internal/usecase"
)

// EventState is a snapshot of the event store.
type EventState struct {
	Events       []domain.Event
	CurrentEvent *domain.Event
	Filters      domain.EventFilters
	IsLoading    bool
	Error        string
}

// EventStore holds the last fetched list, the current event and the applied filters.
type EventStore struct {
	mu        sync.Mutex
	state     EventState
	uc        usecase.EventUseCases
	logger    *slog.Logger
	listeners listeners[EventState]
}

// NewEventStore returns an empty store driving uc.
func NewEventStore(uc usecase.EventUseCases, logger *slog.Logger) *EventStore {
	return &EventStore{
		state:  EventState{Events: []domain.Event{}},
		uc:     uc,
		logger: orDiscard(logger),
	}
}

// State returns a copy of the current state.
func (s *EventStore) State() EventState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe registers fn to receive every new state. The returned func unsubscribes.
func (s *EventStore) Subscribe(fn func(EventState)) func() {
	return s.listeners.add(fn)
}

func (s *EventStore) snapshot() EventState {
	st := s.state
	st.Events = slices.Clone(s.state.Events)
	if s.state.CurrentEvent != nil {
		ev := *s.state.CurrentEvent
		st.CurrentEvent = &ev
	}
	return st
}

func (s *EventStore) update(fn func(st *EventState)) EventState {
	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshot()
	s.mu.Unlock()
	s.listeners.notify(snap)
	return snap
}

func (s *EventStore) fail(ctx context.Context, action string, err error, fallback string, fn func(st *EventState)) {
	msg := errorMessage(err, fallback)
	s.logger.WarnContext(ctx, "event action failed", "action", action, "err", err)
	s.update(func(st *EventState) {
		st.IsLoading = false
		st.Error = msg
		if fn != nil {
			fn(st)
		}
	})
}

// FetchEvents replaces the list. A nil filters re-uses the applied filters;
// any non-nil value, including the zero value, replaces them.
func (s *EventStore) FetchEvents(ctx context.Context, filters *domain.EventFilters) error {
	var applied domain.EventFilters
	s.update(func(st *EventState) {
		st.IsLoading = true
		st.Error = ""
		if filters != nil {
			st.Filters = *filters
		}
		applied = st.Filters
	})

	events, err := s.uc.GetEvents.Execute(ctx, true, &applied)
	if err != nil {
		s.fail(ctx, "fetch_events", err, i18n.MsgFailedLoadEvents, nil)
		return err
	}
	if events == nil {
		events = []domain.Event{}
	}
	s.update(func(st *EventState) {
		st.Events = events
		st.IsLoading = false
	})
	return nil
}

// FetchEventByID replaces the current event. On failure the current event is
// cleared so screens can render their not-found state.
func (s *EventStore) FetchEventByID(ctx context.Context, id int64) error {
	s.update(func(st *EventState) {
		st.IsLoading = true
		st.Error = ""
		if st.CurrentEvent != nil && st.CurrentEvent.ID != id {
			st.CurrentEvent = nil
		}
	})

	ev, err := s.uc.GetEventByID.Execute(ctx, id)
	if err != nil {
		s.fail(ctx, "fetch_event", err, i18n.MsgFailedLoadEvent, func(st *EventState) {
			st.CurrentEvent = nil
		})
		return err
	}
	s.update(func(st *EventState) {
		st.CurrentEvent = ev
		st.IsLoading = false
	})
	return nil
}

// CreateEvent creates an event and makes it current. The list is not touched.
func (s *EventStore) CreateEvent(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	s.update(func(st *EventState) {
		st.IsLoading = true
		st.Error = ""
	})

	ev, err := s.uc.CreateEvent.Execute(ctx, in)
	if err != nil {
		s.fail(ctx, "create_event", err, i18n.MsgFailedCreateEvent, nil)
		return nil, err
	}
	s.update(func(st *EventState) {
		st.CurrentEvent = ev
		st.IsLoading = false
	})
	return ev, nil
}

// UpdateEvent updates an event and makes it current. The list is not touched.
func (s *EventStore) UpdateEvent(ctx context.Context, id int64, patch domain.EventPatch) (*domain.Event, error) {
	s.update(func(st *EventState) {
		st.IsLoading = true
		st.Error = ""
	})

	ev, err := s.uc.UpdateEvent.Execute(ctx, id, patch)
	if err != nil {
		s.fail(ctx, "update_event", err, i18n.MsgFailedUpdateEvent, nil)
		return nil, err
	}
	s.update(func(st *EventState) {
		st.CurrentEvent = ev
		st.IsLoading = false
	})
	return ev, nil
}

// DeleteEvent deletes an event. Only on success is it dropped from the list
// and, when it was current, cleared.
func (s *EventStore) DeleteEvent(ctx context.Context, id int64) error {
	s.update(func(st *EventState) {
		st.IsLoading = true
		st.Error = ""
	})

	if err := s.uc.DeleteEvent.Execute(ctx, id); err != nil {
		s.fail(ctx, "delete_event", err, i18n.MsgFailedDeleteEvent, nil)
		return err
	}
	s.update(func(st *EventState) {
		st.Events = slices.DeleteFunc(slices.Clone(st.Events), func(e domain.Event) bool { return e.ID == id })
		if st.CurrentEvent != nil && st.CurrentEvent.ID == id {
			st.CurrentEvent = nil
		}
		st.IsLoading = false
	})
	return nil
}

// ClearFilters resets the applied filters without fetching.
func (s *EventStore) ClearFilters() {
	s.update(func(st *EventState) { st.Filters = domain.EventFilters{} })
}

// ClearError drops the current error message.
func (s *EventStore) ClearError() {
	s.update(func(st *EventState) { st.Error = "" })
}
