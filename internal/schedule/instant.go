package schedule

import (
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	clockLayoutSeconds = "15:04:05"
)

// ParseInstant combines a calendar date (YYYY-MM-DD) and a wall-clock time
// (HH:MM or HH:MM:SS) into one instant in loc. Either part being empty is an
// error.
func ParseInstant(date, clock string, loc *time.Location) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return time.Time{}, &OrderingError{Reason: msgInvalidInstant}
	}
	if loc == nil {
		loc = time.Local
	}

	layout := DateLayout + "T" + ClockLayout
	if strings.Count(clock, ":") == 2 {
		layout = DateLayout + "T" + clockLayoutSeconds
	}
	t, err := time.ParseInLocation(layout, date+"T"+clock, loc)
	if err != nil {
		return time.Time{}, &OrderingError{Reason: msgInvalidInstant, Err: err}
	}
	return t, nil
}

// SplitInstant is the inverse of ParseInstant, used to prefill edit forms.
// Seconds are written only when set, so the pair parses back to t.
func SplitInstant(t time.Time, loc *time.Location) (date, clock string) {
	if t.IsZero() {
		return "", ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	layout := ClockLayout
	if t.Second() != 0 {
		layout = clockLayoutSeconds
	}
	return t.Format(DateLayout), t.Format(layout)
}
