// Package memory holds the mock API's in-process storage, used when no
// database is configured.
package memory

import (
	"context"
	"sync"

	"eventsportal/internal/domain"
)

type eventRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.Event
}

// NewEventRepository returns an empty EventStorage. Ids start at 1.
func NewEventRepository() domain.EventStorage {
	return &eventRepository{nextID: 1, byID: make(map[int64]domain.Event)}
}

func (r *eventRepository) List(ctx context.Context, filters domain.EventFilters) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Event, 0, len(r.byID))
	for _, e := range r.byID {
		if filters.Matches(e) {
			out = append(out, e)
		}
	}
	f := filters.WithDefaults()
	domain.SortEvents(out, f.SortBy, f.SortOrder)
	return out, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	r.byID[e.ID] = *e
	return nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[e.ID] = *e
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
