package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventsportal/internal/domain"
	"eventsportal/internal/validation"
)

type eventService struct {
	storage        domain.EventStorage
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEventService(storage domain.EventStorage, timeout time.Duration) domain.EventService {
	return &eventService{
		storage:        storage,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *eventService) List(ctx context.Context, filters domain.EventFilters) ([]domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.storage.List(ctx, filters.WithDefaults())
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.storage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// Create requires a name and a date. Validation failures are validation.FieldErrors.
func (s *eventService) Create(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	errs := validation.FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs[validation.FieldName] = validation.MsgNameRequired
	}
	if in.Date.IsZero() {
		errs[validation.FieldDate] = validation.MsgDateRequired
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	event := &domain.Event{
		Name:        strings.TrimSpace(in.Name),
		Date:        in.Date.UTC(),
		Description: in.Description,
		Place:       in.Place,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.storage.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// Update applies only the supplied fields. A supplied name must not be blank.
func (s *eventService) Update(ctx context.Context, id int64, patch domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	errs := validation.FieldErrors{}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		errs[validation.FieldName] = validation.MsgNameRequired
	}
	if patch.Date != nil && patch.Date.IsZero() {
		errs[validation.FieldDate] = validation.MsgDateInvalid
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	event, err := s.storage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	patch.Apply(event)
	event.Name = strings.TrimSpace(event.Name)
	event.Date = event.Date.UTC()
	event.UpdatedAt = s.now().UTC()
	if err := s.storage.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
