package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"termine-api/internal/model"
	"termine-api/internal/schedule"
	"termine-api/internal/store"
	"termine-api/internal/store/filestore"
)

var berlin = mustLoad("Europe/Berlin")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func newServices(t *testing.T, policy schedule.Policy) (*AppointmentService, *CustomerService, store.Store) {
	t.Helper()
	st := filestore.NewMemory()
	t.Cleanup(st.Close)
	v := schedule.NewValidator(st, policy, berlin, nil)
	return NewAppointmentService(st, v, nil), NewCustomerService(st, nil), st
}

func input(title, start, end string) AppointmentInput {
	return AppointmentInput{
		Title:     title,
		StartDate: "2024-01-01",
		StartTime: start,
		EndDate:   "2024-01-01",
		EndTime:   end,
		Status:    "Geplant",
	}
}

func validCustomer() CustomerInput {
	return CustomerInput{
		Title:     "Frau",
		LastName:  " Müller ",
		FirstName: "Anna",
		Street:    "Hauptstraße 1",
		Zip:       "59955",
		City:      "Winterberg",
		Phone:     "02981 123",
		Email:     "anna@example.de",
	}
}

func TestCreateAppointmentRequiredFields(t *testing.T) {
	as, _, _ := newServices(t, schedule.DefaultPolicy())

	tests := []struct {
		name  string
		in    AppointmentInput
		check func(model.AppointmentErrors) bool
	}{
		{"title blank", func() AppointmentInput { in := input("  ", "10:00", "11:00"); return in }(),
			func(e model.AppointmentErrors) bool { return e.Title == msgTitleRequired }},
		{"start date missing", func() AppointmentInput { in := input("x", "10:00", "11:00"); in.StartDate = ""; return in }(),
			func(e model.AppointmentErrors) bool { return e.StartDate == msgStartDateRequired }},
		{"end time missing", input("x", "10:00", ""),
			func(e model.AppointmentErrors) bool { return e.EndTime == msgEndTimeRequired }},
		{"status unselected", func() AppointmentInput { in := input("x", "10:00", "11:00"); in.Status = model.StatusUnselected; return in }(),
			func(e model.AppointmentErrors) bool { return e.Status == msgStatusRequired }},
		{"status unknown", func() AppointmentInput { in := input("x", "10:00", "11:00"); in.Status = "storniert"; return in }(),
			func(e model.AppointmentErrors) bool { return e.Status == msgStatusRequired }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := as.Create(context.Background(), tt.in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !tt.check(ve.Appointment) {
				t.Fatalf("unexpected field errors: %+v", ve.Appointment)
			}
		})
	}
}

func TestCreateAppointmentOverlap(t *testing.T) {
	as, _, _ := newServices(t, schedule.DefaultPolicy())
	ctx := context.Background()

	first, err := as.Create(ctx, input("Beratung", "10:00", "11:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Status != model.StatusPlanned {
		t.Fatalf("expected status from German label, got %s", first.Status)
	}

	_, err = as.Create(ctx, input("Zweiter", "10:30", "11:30"))
	var oe *schedule.OverlapError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OverlapError, got %v", err)
	}
	if len(oe.Conflicts) != 1 || oe.Conflicts[0].ID != first.ID {
		t.Fatalf("unexpected conflicts: %+v", oe.Conflicts)
	}

	if _, err := as.Create(ctx, input("Danach", "11:00", "12:00")); err != nil {
		t.Fatalf("adjacent appointment should be accepted: %v", err)
	}
}

func TestCreateAppointmentOrdering(t *testing.T) {
	as, _, _ := newServices(t, schedule.DefaultPolicy())
	_, err := as.Create(context.Background(), input("x", "11:00", "10:00"))
	if !schedule.IsOrdering(err) {
		t.Fatalf("expected OrderingError, got %v", err)
	}
}

func TestUpdateEditPolicy(t *testing.T) {
	tests := []struct {
		name    string
		edit    schedule.EditMode
		wantErr bool
	}{
		{"skip", schedule.EditSkip, false},
		{"enforce", schedule.EditEnforce, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as, _, _ := newServices(t, schedule.Policy{Edit: tt.edit, ReadFailure: schedule.ReadPropagate})
			ctx := context.Background()
			if _, err := as.Create(ctx, input("A", "10:00", "11:00")); err != nil {
				t.Fatal(err)
			}
			b, err := as.Create(ctx, input("B", "12:00", "13:00"))
			if err != nil {
				t.Fatal(err)
			}

			_, err = as.Update(ctx, b.ID, input("B", "10:30", "12:30"))
			if tt.wantErr && !schedule.IsOverlap(err) {
				t.Fatalf("expected OverlapError, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected edit to pass, got %v", err)
			}
		})
	}
}

func TestUpdateUnchangedIntervalExcludesSelf(t *testing.T) {
	as, _, _ := newServices(t, schedule.Policy{Edit: schedule.EditEnforce, ReadFailure: schedule.ReadPropagate})
	ctx := context.Background()
	a, err := as.Create(ctx, input("A", "10:00", "11:00"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := as.Update(ctx, a.ID, input("A neu", "10:00", "11:00"))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "A neu" || !got.CreatedAt.Equal(a.CreatedAt) {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestUpdateNotFound(t *testing.T) {
	as, _, _ := newServices(t, schedule.DefaultPolicy())
	_, err := as.Update(context.Background(), "missing", input("x", "10:00", "11:00"))
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestValidateDoesNotWrite(t *testing.T) {
	as, _, st := newServices(t, schedule.DefaultPolicy())
	ctx := context.Background()
	iv, err := as.Validate(ctx, input("x", "10:00", "11:00"), "")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	want := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if !iv.Start.Equal(want) {
		t.Fatalf("start: got %v, want %v", iv.Start.UTC(), want)
	}
	list, _ := st.ListAppointments(ctx, schedule.Window{})
	if len(list) != 0 {
		t.Fatalf("validate must not persist, found %d", len(list))
	}
}

type failingSource struct{ store.Store }

func (failingSource) ListIntervals(context.Context, schedule.Window, string) ([]schedule.Interval, error) {
	return nil, errors.New("connection refused")
}

func TestReadFailurePolicy(t *testing.T) {
	for _, mode := range []schedule.ReadFailureMode{schedule.ReadPropagate, schedule.ReadPermissive} {
		t.Run(string(mode), func(t *testing.T) {
			st := failingSource{filestore.NewMemory()}
			v := schedule.NewValidator(st, schedule.Policy{Edit: schedule.EditSkip, ReadFailure: mode}, berlin, nil)
			as := NewAppointmentService(st, v, nil)

			_, err := as.Create(context.Background(), input("x", "10:00", "11:00"))
			if mode == schedule.ReadPropagate && !errors.Is(err, schedule.ErrSourceUnavailable) {
				t.Fatalf("expected ErrSourceUnavailable, got %v", err)
			}
			if mode == schedule.ReadPermissive && err != nil {
				t.Fatalf("expected permissive create to succeed, got %v", err)
			}
		})
	}
}

func TestListDefaultWindow(t *testing.T) {
	as, _, st := newServices(t, schedule.DefaultPolicy())
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	as.now = func() time.Time { return now }
	ctx := context.Background()

	for id, start := range map[string]time.Time{
		"old":    now.AddDate(0, -3, 0),
		"recent": now.AddDate(0, 0, -10),
		"soon":   now.AddDate(0, 1, 0),
		"far":    now.AddDate(1, 0, 0),
	} {
		a := &model.Appointment{ID: id, Title: id, Start: start, End: start.Add(time.Hour), Status: model.StatusOpen}
		if err := st.CreateAppointment(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	list, err := as.List(ctx, schedule.Window{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "recent" || list[1].ID != "soon" {
		t.Fatalf("unexpected default window result: %+v", list)
	}
}

func TestExportUsesWindow(t *testing.T) {
	as, _, _ := newServices(t, schedule.DefaultPolicy())
	ctx := context.Background()
	if _, err := as.Create(ctx, input("Beratung", "10:00", "11:00")); err != nil {
		t.Fatal(err)
	}
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, berlin)
	out, err := as.Export(ctx, schedule.Window{From: from, To: from.AddDate(0, 0, 1)})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "SUMMARY:Beratung") {
		t.Fatalf("expected event in export:\n%s", out)
	}
}

func TestCompleteEnded(t *testing.T) {
	as, _, _ := newServices(t, schedule.DefaultPolicy())
	ctx := context.Background()
	a, err := as.Create(ctx, input("x", "10:00", "11:00"))
	if err != nil {
		t.Fatal(err)
	}
	as.now = func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }
	n, err := as.CompleteEnded(ctx)
	if err != nil || n != 1 {
		t.Fatalf("sweep: n=%d err=%v", n, err)
	}
	got, _ := as.Get(ctx, a.ID)
	if got.Status != model.StatusCompleted {
		t.Fatalf("expected completed, got %s", got.Status)
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	_, cs, _ := newServices(t, schedule.DefaultPolicy())

	in := validCustomer()
	in.LastName = "   "
	in.Zip = "59a55"
	in.BirthDate = "1990-13-01"
	_, err := cs.Create(context.Background(), in, "")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := model.CustomerErrors{
		LastName:  msgLastNameRequired,
		Zip:       msgZipInvalid,
		BirthDate: msgBirthDateInvalid,
	}
	if ve.Customer != want {
		t.Fatalf("got %+v, want %+v", ve.Customer, want)
	}
}

func TestCreateCustomerLinksAppointment(t *testing.T) {
	as, cs, _ := newServices(t, schedule.DefaultPolicy())
	ctx := context.Background()
	a, err := as.Create(ctx, input("x", "10:00", "11:00"))
	if err != nil {
		t.Fatal(err)
	}

	res, err := cs.Create(ctx, validCustomer(), a.ID)
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if res.LinkWarning != "" {
		t.Fatalf("unexpected link warning: %s", res.LinkWarning)
	}
	if res.Customer.LastName != "Müller" {
		t.Fatalf("expected trimmed last name, got %q", res.Customer.LastName)
	}
	got, _ := as.Get(ctx, a.ID)
	if got.CustomerID != res.Customer.ID {
		t.Fatalf("appointment not linked: %q", got.CustomerID)
	}
}

func TestCreateCustomerLinkFailureKeepsCustomer(t *testing.T) {
	_, cs, _ := newServices(t, schedule.DefaultPolicy())
	ctx := context.Background()

	res, err := cs.Create(ctx, validCustomer(), "missing")
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if !strings.HasPrefix(res.LinkWarning, msgLinkFailed) {
		t.Fatalf("expected link warning, got %q", res.LinkWarning)
	}
	if _, err := cs.Get(ctx, res.Customer.ID); err != nil {
		t.Fatalf("customer should be kept: %v", err)
	}
}

func TestUpdateAppointmentCustomerLink(t *testing.T) {
	as, cs, _ := newServices(t, schedule.DefaultPolicy())
	ctx := context.Background()
	a, err := as.Create(ctx, input("x", "10:00", "11:00"))
	if err != nil {
		t.Fatal(err)
	}
	res, err := cs.Create(ctx, validCustomer(), a.ID)
	if err != nil {
		t.Fatal(err)
	}

	// empty customer id keeps the link
	got, err := as.Update(ctx, a.ID, input("y", "10:00", "11:00"))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.CustomerID != res.Customer.ID {
		t.Fatalf("link dropped by plain update: %q", got.CustomerID)
	}

	// unlink wins over a stale or unknown id
	in := input("y", "10:00", "11:00")
	in.CustomerID = "missing"
	in.UnlinkCustomer = true
	got, err = as.Update(ctx, a.ID, in)
	if err != nil {
		t.Fatalf("unlink: %v", err)
	}
	if got.CustomerID != "" {
		t.Fatalf("expected unlinked appointment, got %q", got.CustomerID)
	}
	stored, _ := as.Get(ctx, a.ID)
	if stored.CustomerID != "" {
		t.Fatalf("unlink not persisted: %q", stored.CustomerID)
	}
	if _, err := cs.Get(ctx, res.Customer.ID); err != nil {
		t.Fatalf("unlinking must not delete the customer: %v", err)
	}
}

func TestCreateAppointmentUnknownCustomer(t *testing.T) {
	as, _, _ := newServices(t, schedule.DefaultPolicy())
	in := input("x", "10:00", "11:00")
	in.CustomerID = "missing"
	if _, err := as.Create(context.Background(), in); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchCustomers(t *testing.T) {
	_, cs, _ := newServices(t, schedule.DefaultPolicy())
	ctx := context.Background()
	for _, name := range []string{"Zimmer", "Müller", "Albers"} {
		in := validCustomer()
		in.LastName = name
		if _, err := cs.Create(ctx, in, ""); err != nil {
			t.Fatal(err)
		}
	}

	got, err := cs.Search(ctx, "MÜL")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].LastName != "Müller" {
		t.Fatalf("unexpected search result: %+v", got)
	}

	got, _ = cs.Search(ctx, "  ")
	if len(got) != 0 {
		t.Fatalf("blank query should return nothing, got %d", len(got))
	}

	all, _ := cs.List(ctx)
	if len(all) != 3 || all[0].LastName != "Albers" || all[2].LastName != "Zimmer" {
		t.Fatalf("unexpected list order: %+v", all)
	}
}
