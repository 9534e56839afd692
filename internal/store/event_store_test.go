package store

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsportal/internal/adapters/httpclient"
	"eventsportal/internal/domain"
	"eventsportal/internal/i18n"
	"eventsportal/internal/usecase"
)

// fakeEventRepo is an in-memory EventRepository. onCall runs inside every method
// so tests can observe the store mid-request.
type fakeEventRepo struct {
	byID        map[int64]domain.Event
	nextID      int64
	err         error
	onCall      func()
	lastFilters *domain.EventFilters
	calls       int
}

func newFakeEventRepo(events ...domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{byID: make(map[int64]domain.Event), nextID: 1}
	for _, e := range events {
		f.byID[e.ID] = e
		if e.ID >= f.nextID {
			f.nextID = e.ID + 1
		}
	}
	return f
}

func (f *fakeEventRepo) enter() error {
	f.calls++
	if f.onCall != nil {
		f.onCall()
	}
	return f.err
}

func (f *fakeEventRepo) FindAll(ctx context.Context, simple bool, filters *domain.EventFilters) ([]domain.Event, error) {
	f.lastFilters = filters
	if err := f.enter(); err != nil {
		return nil, err
	}
	out := []domain.Event{}
	for id := int64(1); id < f.nextID; id++ {
		if e, ok := f.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, &httpclient.APIError{Status: http.StatusNotFound, Message: "event not found"}
	}
	return &e, nil
}

func (f *fakeEventRepo) Create(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	e := domain.Event{ID: f.nextID, Name: in.Name, Date: in.Date, Place: in.Place, Description: in.Description}
	f.nextID++
	f.byID[e.ID] = e
	return &e, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id int64, patch domain.EventPatch) (*domain.Event, error) {
	if err := f.enter(); err != nil {
		return nil, err
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, &httpclient.APIError{Status: http.StatusNotFound, Message: "event not found"}
	}
	patch.Apply(&e)
	f.byID[id] = e
	return &e, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	if err := f.enter(); err != nil {
		return err
	}
	if _, ok := f.byID[id]; !ok {
		return &httpclient.APIError{Status: http.StatusNotFound, Message: "event not found"}
	}
	delete(f.byID, id)
	return nil
}

func sampleEvents() []domain.Event {
	return []domain.Event{
		{ID: 1, Name: "Launch", Date: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Retro", Date: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)},
	}
}

func newTestEventStore(repo domain.EventRepository) *EventStore {
	return NewEventStore(usecase.NewEventUseCases(repo), nil)
}

func TestEventStore_LoadingAroundEveryAction(t *testing.T) {
	ctx := context.Background()
	in := domain.EventInput{Name: "New", Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}

	actions := []struct {
		name string
		run  func(s *EventStore) error
	}{
		{"fetch events", func(s *EventStore) error { return s.FetchEvents(ctx, nil) }},
		{"fetch event", func(s *EventStore) error { return s.FetchEventByID(ctx, 1) }},
		{"create", func(s *EventStore) error { _, err := s.CreateEvent(ctx, in); return err }},
		{"update", func(s *EventStore) error { _, err := s.UpdateEvent(ctx, 1, in.Patch()); return err }},
		{"delete", func(s *EventStore) error { return s.DeleteEvent(ctx, 1) }},
	}

	for _, a := range actions {
		for _, failing := range []bool{false, true} {
			name := a.name + " success"
			if failing {
				name = a.name + " failure"
			}
			t.Run(name, func(t *testing.T) {
				repo := newFakeEventRepo(sampleEvents()...)
				if failing {
					repo.err = errors.New("connection refused")
				}
				s := newTestEventStore(repo)
				s.update(func(st *EventState) { st.Error = "stale" })

				var loadingDuringCall, errorDuringCall = false, "unset"
				repo.onCall = func() {
					st := s.State()
					loadingDuringCall = st.IsLoading
					errorDuringCall = st.Error
				}

				err := a.run(s)
				assert.True(t, loadingDuringCall, "isLoading must be true while the request runs")
				assert.Empty(t, errorDuringCall, "previous error is cleared before the request")
				assert.False(t, s.State().IsLoading, "isLoading must be reset afterwards")
				if failing {
					require.Error(t, err)
					assert.NotEmpty(t, s.State().Error)
				} else {
					require.NoError(t, err)
					assert.Empty(t, s.State().Error)
				}
			})
		}
	}
}

func TestEventStore_FetchEvents_Filters(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo(sampleEvents()...)
	s := newTestEventStore(repo)

	require.NoError(t, s.FetchEvents(ctx, &domain.EventFilters{Name: "la", SortBy: domain.SortByName}))
	assert.Equal(t, "la", s.State().Filters.Name)
	assert.Equal(t, "la", repo.lastFilters.Name)

	// nil re-applies the last filters
	require.NoError(t, s.FetchEvents(ctx, nil))
	assert.Equal(t, "la", repo.lastFilters.Name)

	// an empty value clears them
	require.NoError(t, s.FetchEvents(ctx, &domain.EventFilters{}))
	assert.True(t, s.State().Filters.IsZero())
	assert.True(t, repo.lastFilters.IsZero())
}

func TestEventStore_FetchEvents_ReplacesList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo(sampleEvents()...)
	s := newTestEventStore(repo)

	require.NoError(t, s.FetchEvents(ctx, nil))
	require.Len(t, s.State().Events, 2)

	delete(repo.byID, 1)
	require.NoError(t, s.FetchEvents(ctx, nil))
	events := s.State().Events
	require.Len(t, events, 1)
	assert.Equal(t, int64(2), events[0].ID)
}

func TestEventStore_FetchEvents_FailureKeepsList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo(sampleEvents()...)
	s := newTestEventStore(repo)
	require.NoError(t, s.FetchEvents(ctx, nil))

	repo.err = errors.New("dial tcp: connection refused")
	err := s.FetchEvents(ctx, nil)
	require.Error(t, err)
	st := s.State()
	assert.Equal(t, i18n.MsgFailedLoadEvents, st.Error)
	assert.Len(t, st.Events, 2)
}

func TestEventStore_FetchEventByID(t *testing.T) {
	ctx := context.Background()
	s := newTestEventStore(newFakeEventRepo(sampleEvents()...))

	require.NoError(t, s.FetchEventByID(ctx, 2))
	require.NotNil(t, s.State().CurrentEvent)
	assert.Equal(t, "Retro", s.State().CurrentEvent.Name)

	err := s.FetchEventByID(ctx, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	st := s.State()
	assert.Nil(t, st.CurrentEvent, "not found leaves no current event")
	assert.Equal(t, "event not found", st.Error, "API message is surfaced")
}

func TestEventStore_CreateDoesNotMergeIntoList(t *testing.T) {
	ctx := context.Background()
	s := newTestEventStore(newFakeEventRepo(sampleEvents()...))
	require.NoError(t, s.FetchEvents(ctx, nil))

	ev, err := s.CreateEvent(ctx, domain.EventInput{Name: "Party", Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), ev.ID)
	st := s.State()
	assert.Len(t, st.Events, 2)
	require.NotNil(t, st.CurrentEvent)
	assert.Equal(t, "Party", st.CurrentEvent.Name)
}

func TestEventStore_UpdateDoesNotMergeIntoList(t *testing.T) {
	ctx := context.Background()
	s := newTestEventStore(newFakeEventRepo(sampleEvents()...))
	require.NoError(t, s.FetchEvents(ctx, nil))

	name := "Launch v2"
	ev, err := s.UpdateEvent(ctx, 1, domain.EventPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Launch v2", ev.Name)
	st := s.State()
	assert.Equal(t, "Launch", st.Events[0].Name)
	assert.Equal(t, "Launch v2", st.CurrentEvent.Name)
}

func TestEventStore_DeleteEvent(t *testing.T) {
	ctx := context.Background()
	s := newTestEventStore(newFakeEventRepo(sampleEvents()...))
	require.NoError(t, s.FetchEvents(ctx, nil))
	require.NoError(t, s.FetchEventByID(ctx, 1))

	require.NoError(t, s.DeleteEvent(ctx, 1))
	st := s.State()
	require.Len(t, st.Events, 1)
	assert.Equal(t, int64(2), st.Events[0].ID)
	assert.Nil(t, st.CurrentEvent)
}

func TestEventStore_DeleteMissingLeavesListIntact(t *testing.T) {
	ctx := context.Background()
	s := newTestEventStore(newFakeEventRepo(sampleEvents()...))
	require.NoError(t, s.FetchEvents(ctx, nil))
	before := s.State().Events

	err := s.DeleteEvent(ctx, 404)
	require.Error(t, err)
	st := s.State()
	assert.Equal(t, before, st.Events)
	assert.Equal(t, "event not found", st.Error)
}

func TestEventStore_ClearFiltersAndError(t *testing.T) {
	s := newTestEventStore(newFakeEventRepo())
	s.update(func(st *EventState) {
		st.Filters = domain.EventFilters{Place: "Madrid"}
		st.Error = "boom"
	})

	s.ClearFilters()
	assert.True(t, s.State().Filters.IsZero())
	s.ClearError()
	assert.Empty(t, s.State().Error)
}

func TestEventStore_Subscribe(t *testing.T) {
	s := newTestEventStore(newFakeEventRepo(sampleEvents()...))

	var seen []EventState
	unsubscribe := s.Subscribe(func(st EventState) { seen = append(seen, st) })
	require.NoError(t, s.FetchEvents(context.Background(), nil))

	require.Len(t, seen, 2)
	assert.True(t, seen[0].IsLoading)
	assert.False(t, seen[1].IsLoading)
	assert.Len(t, seen[1].Events, 2)

	unsubscribe()
	s.ClearError()
	assert.Len(t, seen, 2)
}

func TestEventStore_StateIsACopy(t *testing.T) {
	s := newTestEventStore(newFakeEventRepo(sampleEvents()...))
	require.NoError(t, s.FetchEvents(context.Background(), nil))

	st := s.State()
	st.Events[0].Name = "mutated"
	assert.Equal(t, "Launch", s.State().Events[0].Name)
}
