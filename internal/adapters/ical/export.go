// Package ical renders events as an iCalendar (RFC 5545) feed.
package ical

import (
	"fmt"
	"io"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"

	"eventsportal/internal/domain"
)

const (
	productID = "-//eventsportal//events export//EN"
	// DefaultDuration is the length given to events, which carry only a start.
	DefaultDuration = time.Hour
)

// Exporter writes events as VEVENTs. UIDs are stable per event id and host.
type Exporter struct {
	host string
	now  func() time.Time
}

func NewExporter(host string) *Exporter {
	if host == "" {
		host = "eventsportal"
	}
	return &Exporter{host: host, now: time.Now}
}

// UID is the VEVENT uid of an event.
func (e *Exporter) UID(id int64) string {
	return "event-" + strconv.FormatInt(id, 10) + "@" + e.host
}

// Calendar builds the calendar for events.
func (e *Exporter) Calendar(name string, events []domain.Event) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	if name != "" {
		cal.SetXWRCalName(name)
	}
	stamp := e.now().UTC()
	for _, ev := range events {
		vev := cal.AddEvent(e.UID(ev.ID))
		vev.SetDtStampTime(stamp)
		vev.SetSummary(ev.Name)
		vev.SetStartAt(ev.Date.UTC())
		vev.SetEndAt(ev.Date.UTC().Add(DefaultDuration))
		if ev.Description != "" {
			vev.SetDescription(ev.Description)
		}
		if ev.Place != "" {
			vev.SetLocation(ev.Place)
		}
		if !ev.CreatedAt.IsZero() {
			vev.SetCreatedTime(ev.CreatedAt.UTC())
		}
		if !ev.UpdatedAt.IsZero() {
			vev.SetModifiedAt(ev.UpdatedAt.UTC())
		}
	}
	return cal
}

// Write serializes the calendar for events to w.
func (e *Exporter) Write(w io.Writer, name string, events []domain.Event) error {
	if _, err := io.WriteString(w, e.Calendar(name, events).Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}
