package usecase

import (
	"context"

	"eventsportal/internal/domain"
)

// GetEvents lists events, optionally filtered.
type GetEvents struct {
	repo domain.EventRepository
}

func NewGetEvents(repo domain.EventRepository) *GetEvents {
	return &GetEvents{repo: repo}
}

func (uc *GetEvents) Execute(ctx context.Context, simple bool, filters *domain.EventFilters) ([]domain.Event, error) {
	return uc.repo.FindAll(ctx, simple, filters)
}

// GetEventByID loads a single event.
type GetEventByID struct {
	repo domain.EventRepository
}

func NewGetEventByID(repo domain.EventRepository) *GetEventByID {
	return &GetEventByID{repo: repo}
}

func (uc *GetEventByID) Execute(ctx context.Context, id int64) (*domain.Event, error) {
	return uc.repo.FindByID(ctx, id)
}

// CreateEvent creates an event from form input.
type CreateEvent struct {
	repo domain.EventRepository
}

func NewCreateEvent(repo domain.EventRepository) *CreateEvent {
	return &CreateEvent{repo: repo}
}

func (uc *CreateEvent) Execute(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	return uc.repo.Create(ctx, in)
}

// UpdateEvent applies a partial update.
type UpdateEvent struct {
	repo domain.EventRepository
}

func NewUpdateEvent(repo domain.EventRepository) *UpdateEvent {
	return &UpdateEvent{repo: repo}
}

func (uc *UpdateEvent) Execute(ctx context.Context, id int64, patch domain.EventPatch) (*domain.Event, error) {
	return uc.repo.Update(ctx, id, patch)
}

// DeleteEvent removes an event.
type DeleteEvent struct {
	repo domain.EventRepository
}

func NewDeleteEvent(repo domain.EventRepository) *DeleteEvent {
	return &DeleteEvent{repo: repo}
}

func (uc *DeleteEvent) Execute(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// EventUseCases bundles the event operations a store needs.
type EventUseCases struct {
	GetEvents    *GetEvents
	GetEventByID *GetEventByID
	CreateEvent  *CreateEvent
	UpdateEvent  *UpdateEvent
	DeleteEvent  *DeleteEvent
}

// NewEventUseCases wires every event use-case to repo.
func NewEventUseCases(repo domain.EventRepository) EventUseCases {
	return EventUseCases{
		GetEvents:    NewGetEvents(repo),
		GetEventByID: NewGetEventByID(repo),
		CreateEvent:  NewCreateEvent(repo),
		UpdateEvent:  NewUpdateEvent(repo),
		DeleteEvent:  NewDeleteEvent(repo),
	}
}
