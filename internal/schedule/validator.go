package schedule

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Interval is the half-open range [Start, End) of a stored or candidate
// appointment.
type Interval struct {
	ID    string
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the two half-open intervals intersect. Touching
// boundaries do not count.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

// Window restricts a read of existing intervals to those intersecting
// [From, To). A zero bound is open.
type Window struct {
	From time.Time
	To   time.Time
}

// Source enumerates existing appointment intervals.
type Source interface {
	ListIntervals(ctx context.Context, w Window, excludeID string) ([]Interval, error)
}

type EditMode string

const (
	// EditSkip only parses the instants of an edited appointment.
	EditSkip EditMode = "skip"
	// EditEnforce runs ordering and overlap checks on edits as well,
	// excluding the edited appointment.
	EditEnforce EditMode = "enforce"
)

type ReadFailureMode string

const (
	ReadPropagate ReadFailureMode = "propagate"
	// ReadPermissive treats a failed read as "no existing intervals".
	ReadPermissive ReadFailureMode = "permissive"
)

type Policy struct {
	Edit        EditMode
	ReadFailure ReadFailureMode
}

func DefaultPolicy() Policy {
	return Policy{Edit: EditSkip, ReadFailure: ReadPropagate}
}

// Candidate is the appointment time range as entered in the form.
type Candidate struct {
	StartDate string
	StartTime string
	EndDate   string
	EndTime   string
}

type Validator struct {
	src    Source
	policy Policy
	loc    *time.Location
	log    *zap.Logger
}

func NewValidator(src Source, policy Policy, loc *time.Location, log *zap.Logger) *Validator {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Validator{src: src, policy: policy, loc: loc, log: log}
}

func (v *Validator) Policy() Policy { return v.policy }

func (v *Validator) Location() *time.Location { return v.loc }

// Parse turns the candidate into an interval without checking its order.
func (v *Validator) Parse(c Candidate) (Interval, error) {
	start, err := ParseInstant(c.StartDate, c.StartTime, v.loc)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseInstant(c.EndDate, c.EndTime, v.loc)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// Check decides whether the candidate may be saved. excludeID, when set, is
// left out of the overlap set.
func (v *Validator) Check(ctx context.Context, c Candidate, excludeID string) (Interval, error) {
	iv, err := v.Parse(c)
	if err != nil {
		return Interval{}, err
	}
	iv.ID = excludeID
	if !iv.End.After(iv.Start) {
		return Interval{}, &OrderingError{Reason: msgEndBeforeStart}
	}

	existing, err := v.src.ListIntervals(ctx, Window{From: iv.Start, To: iv.End}, excludeID)
	if err != nil {
		if v.policy.ReadFailure == ReadPermissive {
			v.log.Warn("overlap check read failed, treating as no overlap", zap.Error(err))
			return iv, nil
		}
		return Interval{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	if conflicts := FindOverlaps(iv, existing, excludeID); len(conflicts) > 0 {
		return Interval{}, &OverlapError{Conflicts: conflicts}
	}
	return iv, nil
}

// CheckEdit applies the configured edit policy to an update of appointment id.
func (v *Validator) CheckEdit(ctx context.Context, c Candidate, id string) (Interval, error) {
	if v.policy.Edit == EditEnforce {
		return v.Check(ctx, c, id)
	}
	iv, err := v.Parse(c)
	if err != nil {
		return Interval{}, err
	}
	iv.ID = id
	return iv, nil
}

// FindOverlaps returns the members of existing that intersect candidate,
// ignoring excludeID.
func FindOverlaps(candidate Interval, existing []Interval, excludeID string) []Interval {
	var out []Interval
	for _, e := range existing {
		if excludeID != "" && e.ID == excludeID {
			continue
		}
		if candidate.Overlaps(e) {
			out = append(out, e)
		}
	}
	return out
}
