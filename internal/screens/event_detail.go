package screens

import (
	"context"

	"eventsportal/internal/domain"
	"eventsportal/internal/i18n"
	"eventsportal/internal/store"
)

// EventDetail is the detail screen of one event.
type EventDetail struct {
	store   *store.EventStore
	nav     Navigator
	notify  Notifier
	text    *i18n.Catalog
	eventID int64
	loaded  bool
}

func NewEventDetail(s *store.EventStore, eventID int64, nav Navigator, notify Notifier, text *i18n.Catalog) *EventDetail {
	return &EventDetail{store: s, nav: nav, notify: notify, text: text, eventID: eventID}
}

// Load fetches the event.
func (d *EventDetail) Load(ctx context.Context) error {
	defer func() { d.loaded = true }()
	return d.store.FetchEventByID(ctx, d.eventID)
}

// Event returns the loaded event, or nil.
func (d *EventDetail) Event() *domain.Event {
	ev := d.store.State().CurrentEvent
	if ev == nil || ev.ID != d.eventID {
		return nil
	}
	return ev
}

// IsLoading reports whether a request is in flight.
func (d *EventDetail) IsLoading() bool { return d.store.State().IsLoading }

// Error is the store error.
func (d *EventDetail) Error() string { return d.store.State().Error }

// NotFound reports the empty state: loading finished without an event.
func (d *EventDetail) NotFound() bool {
	return d.loaded && !d.IsLoading() && d.Event() == nil
}

// Edit opens the edit form.
func (d *EventDetail) Edit() { d.nav.Navigate(RouteEventEdit(d.eventID)) }

// Back returns to the list.
func (d *EventDetail) Back() { d.nav.Navigate(RouteEvents) }

// Delete removes the event, toasts and returns to the list.
func (d *EventDetail) Delete(ctx context.Context) error {
	if err := d.store.DeleteEvent(ctx, d.eventID); err != nil {
		return err
	}
	d.notify.Success(d.text.T(i18n.MsgEventDeleted))
	d.nav.Navigate(RouteEvents)
	return nil
}

// ClearError drops the store error.
func (d *EventDetail) ClearError() { d.store.ClearError() }
