// Package ics renders appointments as an iCalendar feed.
package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"termine-api/internal/model"
)

const (
	ProductID   = "-//termine-api//Termine//DE"
	ContentType = "text/calendar; charset=utf-8"
	uidDomain   = "@termine-api"
)

type Options struct {
	Name     string
	TimeZone string
	// Now stamps DTSTAMP; zero means time.Now.
	Now time.Time
}

// Export builds a PUBLISH calendar with one event per appointment. The
// appointment id is the stable part of the UID so subscribers update events
// in place.
func Export(appointments []model.Appointment, opts Options) string {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}
	if opts.TimeZone != "" {
		cal.SetXWRTimezone(opts.TimeZone)
	}

	for _, a := range appointments {
		ev := cal.AddEvent(a.ID + uidDomain)
		ev.SetDtStampTime(now)
		ev.SetStartAt(a.Start)
		ev.SetEndAt(a.End)
		ev.SetSummary(a.Title)
		ev.SetDescription("Status: " + a.Status.Label())
		if !a.CreatedAt.IsZero() {
			ev.SetCreatedTime(a.CreatedAt)
		}
		if !a.UpdatedAt.IsZero() {
			ev.SetModifiedAt(a.UpdatedAt)
		}
		ev.SetStatus(eventStatus(a.Status))
	}
	return cal.Serialize()
}

func eventStatus(s model.Status) ical.ObjectStatus {
	if s == model.StatusOpen {
		return ical.ObjectStatusTentative
	}
	return ical.ObjectStatusConfirmed
}
