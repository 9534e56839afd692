package domain

import (
	"context"
	"time"
)

// Event is a record managed through the events API.
// ID and timestamps are assigned by the API; the client never sets them.
type Event struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	Place       string    `json:"place,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventInput is the body of a create request: an Event without id and timestamps.
type EventInput struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	Place       string    `json:"place,omitempty"`
}

// EventPatch is the partial body of an update request. Nil fields are left untouched.
type EventPatch struct {
	Name        *string    `json:"name,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Description *string    `json:"description,omitempty"`
	Place       *string    `json:"place,omitempty"`
}

// Patch returns an EventPatch that sets name and date. Description and place
// are set only when non-empty, so a blank optional field is left unchanged.
func (in EventInput) Patch() EventPatch {
	name, date := in.Name, in.Date
	p := EventPatch{Name: &name, Date: &date}
	if in.Description != "" {
		desc := in.Description
		p.Description = &desc
	}
	if in.Place != "" {
		place := in.Place
		p.Place = &place
	}
	return p
}

// Apply copies the non-nil fields of p onto e.
func (p EventPatch) Apply(e *Event) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Place != nil {
		e.Place = *p.Place
	}
}

// EventRepository is the client-side contract for the remote events resource.
// simple asks the API for the flat representation of each event.
type EventRepository interface {
	FindAll(ctx context.Context, simple bool, filters *EventFilters) ([]Event, error)
	FindByID(ctx context.Context, id int64) (*Event, error)
	Create(ctx context.Context, in EventInput) (*Event, error)
	Update(ctx context.Context, id int64, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventStorage persists events for the mock API.
type EventStorage interface {
	List(ctx context.Context, filters EventFilters) ([]Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id int64) error
}

// EventService is the mock API's business logic for events.
type EventService interface {
	List(ctx context.Context, filters EventFilters) ([]Event, error)
	Get(ctx context.Context, id int64) (*Event, error)
	Create(ctx context.Context, in EventInput) (*Event, error)
	Update(ctx context.Context, id int64, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id int64) error
}
