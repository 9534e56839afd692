package screens

import (
	"context"
	"fmt"
	"time"

	"eventsportal/internal/domain"
	"eventsportal/internal/i18n"
	"eventsportal/internal/store"
	"eventsportal/internal/validation"
)

// EventFormData is the raw form input.
type EventFormData struct {
	Name        string
	Date        string
	Description string
	Place       string
}

// EventForm is the create/edit screen. A zero eventID means create.
type EventForm struct {
	store   *store.EventStore
	nav     Navigator
	notify  Notifier
	text    *i18n.Catalog
	loc     *time.Location
	eventID int64

	Data             EventFormData
	ValidationErrors validation.FieldErrors
}

func NewEventForm(s *store.EventStore, eventID int64, nav Navigator, notify Notifier, text *i18n.Catalog) *EventForm {
	return &EventForm{
		store:            s,
		nav:              nav,
		notify:           notify,
		text:             text,
		loc:              time.Local,
		eventID:          eventID,
		ValidationErrors: validation.FieldErrors{},
	}
}

// WithLocation sets the zone the date input is read and shown in.
func (f *EventForm) WithLocation(loc *time.Location) *EventForm {
	f.loc = loc
	return f
}

// IsEdit reports whether the form edits an existing event.
func (f *EventForm) IsEdit() bool { return f.eventID != 0 }

// Title is the localized heading.
func (f *EventForm) Title() string {
	if f.IsEdit() {
		return f.text.T(i18n.MsgEditEvent)
	}
	return f.text.T(i18n.MsgNewEvent)
}

// IsLoading is true only while the event being edited has not arrived yet.
func (f *EventForm) IsLoading() bool {
	st := f.store.State()
	return st.IsLoading && f.IsEdit() && st.CurrentEvent == nil
}

// Error is the store error.
func (f *EventForm) Error() string { return f.store.State().Error }

// ClearError drops the store error.
func (f *EventForm) ClearError() { f.store.ClearError() }

// Load fetches the event when editing and fills the form from it.
func (f *EventForm) Load(ctx context.Context) error {
	if !f.IsEdit() {
		return nil
	}
	if err := f.store.FetchEventByID(ctx, f.eventID); err != nil {
		return err
	}
	if ev := f.store.State().CurrentEvent; ev != nil && ev.ID == f.eventID {
		f.Data = EventFormData{
			Name:        ev.Name,
			Date:        FormatDateInput(ev.Date, f.loc),
			Description: ev.Description,
			Place:       ev.Place,
		}
	}
	return nil
}

// UpdateField sets one form field.
func (f *EventForm) UpdateField(field, value string) error {
	switch field {
	case validation.FieldName:
		f.Data.Name = value
	case validation.FieldDate:
		f.Data.Date = value
	case validation.FieldDescription:
		f.Data.Description = value
	case validation.FieldPlace:
		f.Data.Place = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// Submit validates, then creates or updates. On success it toasts and returns
// to the events list; the detail view is never the target.
func (f *EventForm) Submit(ctx context.Context) error {
	f.store.ClearError()
	f.ValidationErrors = validation.EventForm(f.Data.Name, f.Data.Date)
	if err := f.ValidationErrors.Err(); err != nil {
		return err
	}
	date, err := ParseDateInput(f.Data.Date, f.loc)
	if err != nil {
		f.ValidationErrors[validation.FieldDate] = validation.MsgDateInvalid
		return f.ValidationErrors
	}

	in := domain.EventInput{
		Name:        f.Data.Name,
		Date:        date.UTC(),
		Description: f.Data.Description,
		Place:       f.Data.Place,
	}
	if f.IsEdit() {
		if _, err := f.store.UpdateEvent(ctx, f.eventID, in.Patch()); err != nil {
			return err
		}
		f.notify.Success(f.text.T(i18n.MsgEventUpdated))
	} else {
		if _, err := f.store.CreateEvent(ctx, in); err != nil {
			return err
		}
		f.notify.Success(f.text.T(i18n.MsgEventCreated))
	}
	f.nav.Navigate(RouteEvents)
	return nil
}
