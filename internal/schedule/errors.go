package schedule

import "errors"

const (
	msgInvalidInstant = "Datum oder Uhrzeit ist ungültig."
	msgEndBeforeStart = "Endzeit darf nicht vor der Startzeit liegen."
	msgOverlap        = "In diesem Zeitraum liegt schon ein Termin."
)

// ErrSourceUnavailable wraps failures of the existing-appointments read when
// they are propagated to the caller.
var ErrSourceUnavailable = errors.New("existing appointments unavailable")

// OrderingError reports an unparseable instant or an end that is not strictly
// after the start.
type OrderingError struct {
	Reason string
	Err    error
}

func (e *OrderingError) Error() string { return e.Reason }

func (e *OrderingError) Unwrap() error { return e.Err }

// OverlapError reports that the candidate intersects stored appointments.
type OverlapError struct {
	Conflicts []Interval
}

func (e *OverlapError) Error() string { return msgOverlap }

func IsOrdering(err error) bool {
	var oe *OrderingError
	return errors.As(err, &oe)
}

func IsOverlap(err error) bool {
	var oe *OverlapError
	return errors.As(err, &oe)
}
