package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsportal/internal/domain"
	"eventsportal/internal/validation"
)

// fakeEventStorage is an in-memory EventStorage for tests.
type fakeEventStorage struct {
	byID        map[int64]domain.Event
	nextID      int64
	err         error
	lastFilters domain.EventFilters
}

func newFakeEventStorage() *fakeEventStorage {
	return &fakeEventStorage{byID: make(map[int64]domain.Event), nextID: 1}
}

func (f *fakeEventStorage) List(ctx context.Context, filters domain.EventFilters) ([]domain.Event, error) {
	f.lastFilters = filters
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Event
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventStorage) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (f *fakeEventStorage) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	e.ID = f.nextID
	f.nextID++
	f.byID[e.ID] = *e
	return nil
}

func (f *fakeEventStorage) Update(ctx context.Context, e *domain.Event) error {
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[e.ID] = *e
	return nil
}

func (f *fakeEventStorage) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestEventService(storage domain.EventStorage) *eventService {
	svc := NewEventService(storage, 5*time.Second).(*eventService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestEventService_List(t *testing.T) {
	t.Run("fills default ordering and never returns nil", func(t *testing.T) {
		storage := newFakeEventStorage()
		svc := newTestEventService(storage)

		events, err := svc.List(context.Background(), domain.EventFilters{Name: "go"})
		require.NoError(t, err)
		assert.NotNil(t, events)
		assert.Empty(t, events)
		assert.Equal(t, domain.EventFilters{Name: "go", SortBy: domain.SortByDate, SortOrder: domain.SortAsc}, storage.lastFilters)
	})

	t.Run("wraps storage errors", func(t *testing.T) {
		storage := newFakeEventStorage()
		storage.err = errors.New("db down")
		_, err := newTestEventService(storage).List(context.Background(), domain.EventFilters{})
		assert.EqualError(t, err, "failed to list events: db down")
	})
}

func TestEventService_WrapsStorageErrors(t *testing.T) {
	date := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		call func(svc *eventService) error
		want string
	}{
		{"get", func(svc *eventService) error { _, err := svc.Get(context.Background(), 1); return err }, "failed to get event: db down"},
		{"create", func(svc *eventService) error {
			_, err := svc.Create(context.Background(), domain.EventInput{Name: "Meetup", Date: date})
			return err
		}, "failed to create event: db down"},
		{"update", func(svc *eventService) error {
			name := "Meetup"
			_, err := svc.Update(context.Background(), 1, domain.EventPatch{Name: &name})
			return err
		}, "failed to get event: db down"},
		{"delete", func(svc *eventService) error { return svc.Delete(context.Background(), 1) }, "failed to delete event: db down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := newFakeEventStorage()
			storage.err = errors.New("db down")
			err := tt.call(newTestEventService(storage))
			assert.EqualError(t, err, tt.want)
			assert.False(t, errors.Is(err, domain.ErrNotFound))
		})
	}
}

func TestEventService_Create(t *testing.T) {
	date := time.Date(2025, 7, 1, 9, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

	tests := []struct {
		name       string
		in         domain.EventInput
		wantFields validation.FieldErrors
	}{
		{"valid", domain.EventInput{Name: "  Launch ", Date: date, Place: "Online"}, nil},
		{"missing name", domain.EventInput{Name: " ", Date: date}, validation.FieldErrors{validation.FieldName: validation.MsgNameRequired}},
		{"missing both", domain.EventInput{}, validation.FieldErrors{
			validation.FieldName: validation.MsgNameRequired,
			validation.FieldDate: validation.MsgDateRequired,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := newFakeEventStorage()
			ev, err := newTestEventService(storage).Create(context.Background(), tt.in)
			if tt.wantFields != nil {
				var fe validation.FieldErrors
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.wantFields, fe)
				assert.Empty(t, storage.byID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), ev.ID)
			assert.Equal(t, "Launch", ev.Name)
			assert.Equal(t, time.UTC, ev.Date.Location())
			assert.True(t, date.Equal(ev.Date))
			assert.Equal(t, fixedNow, ev.CreatedAt)
			assert.Equal(t, fixedNow, ev.UpdatedAt)
		})
	}
}

func TestEventService_Update(t *testing.T) {
	seed := func() *fakeEventStorage {
		s := newFakeEventStorage()
		e := domain.Event{Name: "Launch", Place: "Online", Description: "v1", Date: fixedNow, CreatedAt: fixedNow.Add(-time.Hour)}
		_ = s.Create(context.Background(), &e)
		return s
	}
	str := func(s string) *string { return &s }

	t.Run("applies only supplied fields", func(t *testing.T) {
		storage := seed()
		ev, err := newTestEventService(storage).Update(context.Background(), 1, domain.EventPatch{Place: str("Madrid")})
		require.NoError(t, err)
		assert.Equal(t, "Launch", ev.Name)
		assert.Equal(t, "Madrid", ev.Place)
		assert.Equal(t, "v1", ev.Description)
		assert.Equal(t, fixedNow, ev.UpdatedAt)
		assert.Equal(t, "Madrid", storage.byID[1].Place)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := newTestEventService(seed()).Update(context.Background(), 1, domain.EventPatch{Name: str("")})
		var fe validation.FieldErrors
		require.ErrorAs(t, err, &fe)
		assert.Contains(t, fe, validation.FieldName)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := newTestEventService(seed()).Update(context.Background(), 42, domain.EventPatch{Place: str("x")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_GetDelete(t *testing.T) {
	storage := newFakeEventStorage()
	svc := newTestEventService(storage)
	ctx := context.Background()
	created, err := svc.Create(ctx, domain.EventInput{Name: "Launch", Date: fixedNow})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch", got.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)
}
