// Package rest implements the domain repositories over the events HTTP API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"eventsportal/internal/adapters/httpclient"
	"eventsportal/internal/domain"
)

type eventRepository struct {
	client *httpclient.Client
}

// NewEventRepository returns an EventRepository backed by the /events endpoints.
func NewEventRepository(client *httpclient.Client) domain.EventRepository {
	return &eventRepository{client: client}
}

func (r *eventRepository) FindAll(ctx context.Context, simple bool, filters *domain.EventFilters) ([]domain.Event, error) {
	raw, err := r.client.Get(ctx, "/events", eventsQuery(simple, filters))
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	events, err := decodeList(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	raw, err := r.client.Get(ctx, eventPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get event %d: %w", id, err)
	}
	return decodeEvent(raw)
}

func (r *eventRepository) Create(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	raw, err := r.client.Post(ctx, "/events", in)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return decodeEvent(raw)
}

func (r *eventRepository) Update(ctx context.Context, id int64, patch domain.EventPatch) (*domain.Event, error) {
	raw, err := r.client.Put(ctx, eventPath(id), patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update event %d: %w", id, err)
	}
	return decodeEvent(raw)
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, eventPath(id)); err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	return nil
}

func eventPath(id int64) string {
	return "/events/" + strconv.FormatInt(id, 10)
}

// eventsQuery builds simple, name, place, startDate, endDate, sortBy and sortOrder; unset filters are omitted.
func eventsQuery(simple bool, f *domain.EventFilters) url.Values {
	q := url.Values{}
	q.Set("simple", strconv.FormatBool(simple))
	if f == nil {
		return q
	}
	if f.Name != "" {
		q.Set("name", f.Name)
	}
	if f.Place != "" {
		q.Set("place", f.Place)
	}
	if !f.StartDate.IsZero() {
		q.Set("startDate", f.StartDate.UTC().Format(time.RFC3339))
	}
	if !f.EndDate.IsZero() {
		q.Set("endDate", f.EndDate.UTC().Format(time.RFC3339))
	}
	if f.SortBy != "" {
		q.Set("sortBy", string(f.SortBy))
	}
	if f.SortOrder != "" {
		q.Set("sortOrder", string(f.SortOrder))
	}
	return q
}

// decodeList accepts both a bare array and a {"data": [...]} envelope.
func decodeList(raw json.RawMessage) ([]domain.Event, error) {
	events := []domain.Event{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return events, nil
	}
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &events); err != nil {
			return nil, err
		}
		return events, nil
	}
	var env struct {
		Data []domain.Event `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	if env.Data != nil {
		events = env.Data
	}
	return events, nil
}

// decodeEvent accepts a bare event and a {"data": {...}} envelope.
func decodeEvent(raw json.RawMessage) (*domain.Event, error) {
	body, err := unwrapData(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode event: %w", err)
	}
	var e domain.Event
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, fmt.Errorf("failed to decode event: %w", err)
	}
	return &e, nil
}

// unwrapData returns the "data" member of an envelope object, or raw itself
// when it is not an envelope. Objects carrying an "id" are never envelopes.
func unwrapData(raw json.RawMessage) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty response body")
	}
	if raw[0] != '{' {
		return raw, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	data, hasData := fields["data"]
	if _, hasID := fields["id"]; hasData && !hasID {
		return data, nil
	}
	return raw, nil
}
