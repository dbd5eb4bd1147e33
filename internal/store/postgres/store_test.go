package postgres_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"termine-api/internal/model"
	"termine-api/internal/schedule"
	"termine-api/internal/store"
	"termine-api/internal/store/postgres"
)

func setup(t *testing.T) *postgres.Store {
	t.Helper()
	_ = godotenv.Load("../../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	st, err := postgres.Open(ctx, dbURL)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(st.Close)
	if err := st.Migrate(ctx, "../../../db/migrations/001_init.sql"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return st
}

// far-future slot per test run so parallel runs against one database do not collide
func slot(t *testing.T) time.Time {
	t.Helper()
	day := time.Duration(time.Now().UnixNano()%100000) * 24 * time.Hour
	return time.Date(2200, 1, 1, 10, 0, 0, 0, time.UTC).Add(day)
}

func newAppointment(start time.Time, d time.Duration) *model.Appointment {
	return &model.Appointment{
		ID:     uuid.NewString(),
		Title:  "Beratung",
		Start:  start,
		End:    start.Add(d),
		Status: model.StatusPlanned,
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	start := slot(t)

	a := newAppointment(start, time.Hour)
	if err := st.CreateAppointment(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { st.DeleteAppointment(context.Background(), a.ID) })
	if a.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be returned")
	}

	got, err := st.GetAppointment(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Start.Equal(a.Start) || !got.End.Equal(a.End) || got.Status != model.StatusPlanned {
		t.Fatalf("unexpected appointment: %+v", got)
	}

	a.Title = "Nachsorge"
	if err := st.UpdateAppointment(ctx, a); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = st.GetAppointment(ctx, a.ID)
	if got.Title != "Nachsorge" {
		t.Fatalf("expected updated title, got %q", got.Title)
	}

	if err := st.DeleteAppointment(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.GetAppointment(ctx, a.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := st.DeleteAppointment(ctx, a.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListIntervalsWindowAndExclude(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	start := slot(t)

	a := newAppointment(start, time.Hour)
	b := newAppointment(start.Add(time.Hour), time.Hour)
	for _, x := range []*model.Appointment{a, b} {
		if err := st.CreateAppointment(ctx, x); err != nil {
			t.Fatalf("create: %v", err)
		}
		id := x.ID
		t.Cleanup(func() { st.DeleteAppointment(context.Background(), id) })
	}

	// [10:30, 11:00) touches only a
	w := schedule.Window{From: start.Add(30 * time.Minute), To: start.Add(time.Hour)}
	got, err := st.ListIntervals(ctx, w, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("expected only %s, got %+v", a.ID, got)
	}

	got, err = st.ListIntervals(ctx, w, a.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected excluded id to be filtered, got %+v", got)
	}
}

func TestCompleteEnded(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	start := slot(t)

	a := newAppointment(start, time.Hour)
	if err := st.CreateAppointment(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { st.DeleteAppointment(context.Background(), a.ID) })

	if _, err := st.CompleteEnded(ctx, start.Add(2*time.Hour)); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	got, _ := st.GetAppointment(ctx, a.ID)
	if got.Status != model.StatusCompleted {
		t.Fatalf("expected completed, got %s", got.Status)
	}
}

func TestDeleteCustomerUnlinks(t *testing.T) {
	st := setup(t)
	ctx := context.Background()

	c := &model.Customer{ID: uuid.NewString(), LastName: "Müller", FirstName: "Jörg"}
	if err := st.CreateCustomer(ctx, c); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	a := newAppointment(slot(t), time.Hour)
	if err := st.CreateAppointment(ctx, a); err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	t.Cleanup(func() { st.DeleteAppointment(context.Background(), a.ID) })

	if err := st.LinkCustomer(ctx, a.ID, c.ID); err != nil {
		t.Fatalf("link: %v", err)
	}
	if err := st.DeleteCustomer(ctx, c.ID); err != nil {
		t.Fatalf("delete customer: %v", err)
	}
	got, _ := st.GetAppointment(ctx, a.ID)
	if got.CustomerID != "" {
		t.Fatalf("expected appointment to be unlinked, got %q", got.CustomerID)
	}
	if _, err := st.GetCustomer(ctx, c.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
