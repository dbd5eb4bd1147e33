package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"termine-api/internal/model"
	"termine-api/internal/schedule"
	"termine-api/internal/service"
	"termine-api/internal/store/filestore"
)

type stubCompleter struct {
	n   int
	err error
}

func (s stubCompleter) CompleteEnded(context.Context) (int, error) { return s.n, s.err }

func TestNewSchedules(t *testing.T) {
	tests := []struct {
		spec    string
		entries int
		wantErr bool
	}{
		{"@every 15m", 1, false},
		{"*/5 * * * *", 1, false},
		{"", 0, false},
		{"every now and then", 0, true},
	}
	for _, tt := range tests {
		s, err := New(tt.spec, time.UTC, stubCompleter{}, nil)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.spec)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tt.spec, err)
		}
		if s.Entries() != tt.entries {
			t.Errorf("%q: expected %d entries, got %d", tt.spec, tt.entries, s.Entries())
		}
	}
}

func TestSweepSwallowsErrors(t *testing.T) {
	s, err := New("", time.UTC, stubCompleter{err: errors.New("db down")}, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if n := s.Sweep(context.Background()); n != 0 {
		t.Fatalf("expected 0 on failure, got %d", n)
	}
}

func TestSweepCompletesEndedAppointments(t *testing.T) {
	st := filestore.NewMemory()
	defer st.Close()
	ctx := context.Background()

	past := time.Now().Add(-2 * time.Hour)
	future := time.Now().Add(2 * time.Hour)
	seed := []model.Appointment{
		{ID: "ended", Title: "a", Start: past, End: past.Add(time.Hour), Status: model.StatusPlanned},
		{ID: "open", Title: "b", Start: past, End: past.Add(time.Hour), Status: model.StatusOpen},
		{ID: "later", Title: "c", Start: future, End: future.Add(time.Hour), Status: model.StatusPlanned},
	}
	for i := range seed {
		if err := st.CreateAppointment(ctx, &seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	v := schedule.NewValidator(st, schedule.DefaultPolicy(), time.UTC, nil)
	s, err := New("@every 1h", time.UTC, service.NewAppointmentService(st, v, nil), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if n := s.Sweep(ctx); n != 1 {
		t.Fatalf("expected 1 completed, got %d", n)
	}

	want := map[string]model.Status{
		"ended": model.StatusCompleted,
		"open":  model.StatusOpen,
		"later": model.StatusPlanned,
	}
	for id, status := range want {
		a, err := st.GetAppointment(ctx, id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if a.Status != status {
			t.Errorf("%s: expected %s, got %s", id, status, a.Status)
		}
	}
}

func TestStartStop(t *testing.T) {
	s, err := New("@every 1h", time.UTC, stubCompleter{}, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	s.Start()
	s.Stop()
}
