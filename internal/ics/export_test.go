package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"termine-api/internal/model"
)

func TestExportParsesBack(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	in := []model.Appointment{
		{ID: "a1", Title: "Beratung", Start: start, End: start.Add(time.Hour), Status: model.StatusPlanned},
		{ID: "a2", Title: "Rückruf", Start: start.Add(2 * time.Hour), End: start.Add(3 * time.Hour), Status: model.StatusOpen},
	}

	out := Export(in, Options{Name: "Termine", TimeZone: "Europe/Berlin", Now: start})

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"PRODID:" + ProductID,
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Termine",
		"UID:a1@termine-api",
		"STATUS:TENTATIVE",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	ev := events[0]
	if p := ev.GetProperty(ical.ComponentPropertySummary); p == nil || p.Value != "Beratung" {
		t.Fatalf("unexpected summary: %+v", p)
	}
	got, err := ev.GetStartAt()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !got.Equal(start) {
		t.Fatalf("start: got %v, want %v", got, start)
	}
	end, err := ev.GetEndAt()
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if !end.Equal(start.Add(time.Hour)) {
		t.Fatalf("end: got %v", end)
	}
}

func TestExportEmpty(t *testing.T) {
	out := Export(nil, Options{})
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Fatal("expected no events")
	}
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Fatal("expected calendar envelope")
	}
}
