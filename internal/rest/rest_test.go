package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"termine-api/internal/middleware"
	"termine-api/internal/schedule"
	"termine-api/internal/service"
	"termine-api/internal/store"
	"termine-api/internal/store/filestore"
)

func setupWith(t *testing.T, st store.Store, opts Options) http.Handler {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("tz: %v", err)
	}
	v := schedule.NewValidator(st, schedule.DefaultPolicy(), loc, nil)
	h := NewHandler(service.NewAppointmentService(st, v, nil), service.NewCustomerService(st, nil), nil)
	return NewServer(h, opts)
}

func setup(t *testing.T) http.Handler {
	t.Helper()
	st := filestore.NewMemory()
	t.Cleanup(st.Close)
	return setupWith(t, st, Options{})
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func slot(day, start, end string) map[string]string {
	return map[string]string{
		"title":     "Termin " + start,
		"startDate": day,
		"startTime": start,
		"endDate":   day,
		"endTime":   end,
		"status":    "Geplant",
	}
}

type errorBody struct {
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields"`
	Conflicts []struct {
		ID string `json:"id"`
	} `json:"conflicts"`
}

func TestCreateAndGetAppointment(t *testing.T) {
	h := setup(t)
	rec := do(t, h, http.MethodPost, "/api/appointments", slot("2024-07-01", "10:00", "11:00"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body)
	}
	var created appointmentView
	decodeBody(t, rec, &created)
	if created.Status != "planned" || created.StatusLabel != "Geplant" {
		t.Fatalf("status: %s / %s", created.Status, created.StatusLabel)
	}
	// CEST: 10:00 local is 08:00 UTC
	if got := created.Start.UTC().Format(time.RFC3339); got != "2024-07-01T08:00:00Z" {
		t.Fatalf("start: %s", got)
	}

	rec = do(t, h, http.MethodGet, "/api/appointments/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: %d", rec.Code)
	}
	var got appointmentView
	decodeBody(t, rec, &got)
	if got.StartDate != "2024-07-01" || got.StartTime != "10:00" || got.EndTime != "11:00" {
		t.Fatalf("civil fields: %+v", got)
	}
}

func TestCreateAppointmentErrors(t *testing.T) {
	h := setup(t)
	if rec := do(t, h, http.MethodPost, "/api/appointments", slot("2024-01-01", "10:00", "11:00")); rec.Code != http.StatusCreated {
		t.Fatalf("seed: %d %s", rec.Code, rec.Body)
	}

	tests := []struct {
		name   string
		body   any
		code   int
		fields int
		clash  bool
	}{
		{"missing fields", map[string]string{}, http.StatusBadRequest, 6, false},
		{"end before start", slot("2024-01-01", "15:00", "14:00"), http.StatusBadRequest, 0, false},
		{"overlap", slot("2024-01-01", "10:30", "11:30"), http.StatusConflict, 0, true},
		{"adjacent", slot("2024-01-01", "11:00", "12:00"), http.StatusCreated, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/appointments", tt.body)
			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d: %s", tt.code, rec.Code, rec.Body)
			}
			if tt.code == http.StatusCreated {
				return
			}
			var eb errorBody
			decodeBody(t, rec, &eb)
			if eb.Error == "" {
				t.Fatal("expected error message")
			}
			if len(eb.Fields) != tt.fields {
				t.Fatalf("expected %d field errors, got %v", tt.fields, eb.Fields)
			}
			if tt.clash && len(eb.Conflicts) != 1 {
				t.Fatalf("expected one conflict, got %v", eb.Conflicts)
			}
		})
	}
}

func TestInvalidBody(t *testing.T) {
	h := setup(t)
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateAndDeleteAppointment(t *testing.T) {
	h := setup(t)
	rec := do(t, h, http.MethodPost, "/api/appointments", slot("2024-01-01", "10:00", "11:00"))
	var a appointmentView
	decodeBody(t, rec, &a)

	upd := slot("2024-01-01", "10:00", "11:00")
	upd["title"] = "Verschoben"
	rec = do(t, h, http.MethodPut, "/api/appointments/"+a.ID, upd)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: %d %s", rec.Code, rec.Body)
	}
	var updated appointmentView
	decodeBody(t, rec, &updated)
	if updated.Title != "Verschoben" {
		t.Fatalf("title: %s", updated.Title)
	}

	if rec := do(t, h, http.MethodPut, "/api/appointments/missing", upd); rec.Code != http.StatusNotFound {
		t.Fatalf("update missing: %d", rec.Code)
	}
	if rec := do(t, h, http.MethodDelete, "/api/appointments/"+a.ID, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/api/appointments/"+a.ID, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("get deleted: %d", rec.Code)
	}
}

func TestListAppointmentsWindow(t *testing.T) {
	h := setup(t)
	for _, day := range []string{"2024-01-10", "2024-01-20", "2024-02-05"} {
		if rec := do(t, h, http.MethodPost, "/api/appointments", slot(day, "09:00", "10:00")); rec.Code != http.StatusCreated {
			t.Fatalf("seed %s: %d", day, rec.Code)
		}
	}

	tests := []struct {
		query string
		code  int
		want  int
	}{
		{"?from=2024-01-01&to=2024-01-31", http.StatusOK, 2},
		{"?from=2024-01-20&to=2024-01-20", http.StatusOK, 1},
		{"?from=2024-01-01T00:00:00Z&to=2024-03-01T00:00:00Z", http.StatusOK, 3},
		{"?from=yesterday", http.StatusBadRequest, 0},
		{"?from=2024-02-01&to=2024-01-01", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/api/appointments"+tt.query, nil)
			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d: %s", tt.code, rec.Code, rec.Body)
			}
			if tt.code != http.StatusOK {
				return
			}
			var list []appointmentView
			decodeBody(t, rec, &list)
			if len(list) != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, len(list))
			}
		})
	}
}

func TestValidateAppointment(t *testing.T) {
	h := setup(t)
	rec := do(t, h, http.MethodPost, "/api/appointments", slot("2024-01-01", "10:00", "11:00"))
	var a appointmentView
	decodeBody(t, rec, &a)

	body := map[string]string{
		"title": "x", "startDate": "2024-01-01", "startTime": "10:00",
		"endDate": "2024-01-01", "endTime": "11:00", "status": "open",
	}
	if rec := do(t, h, http.MethodPost, "/api/appointments/validate", body); rec.Code != http.StatusConflict {
		t.Fatalf("expected conflict, got %d", rec.Code)
	}
	body["excludeId"] = a.ID
	if rec := do(t, h, http.MethodPost, "/api/appointments/validate", body); rec.Code != http.StatusOK {
		t.Fatalf("expected ok with self excluded, got %d %s", rec.Code, rec.Body)
	}
}

func TestCalendarExport(t *testing.T) {
	h := setup(t)
	do(t, h, http.MethodPost, "/api/appointments", slot("2024-01-01", "10:00", "11:00"))

	rec := do(t, h, http.MethodGet, "/api/calendar.ics?from=2024-01-01&to=2024-01-02", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export: %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("content type: %s", ct)
	}
	cal, err := ical.ParseCalendar(rec.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n := len(cal.Events()); n != 1 {
		t.Fatalf("expected 1 event, got %d", n)
	}
}

func TestCustomerEndpoints(t *testing.T) {
	h := setup(t)
	rec := do(t, h, http.MethodPost, "/api/appointments", slot("2024-01-01", "10:00", "11:00"))
	var a appointmentView
	decodeBody(t, rec, &a)

	body := map[string]string{
		"lastName": "Müller", "firstName": "Jörg", "street": "Hauptstr. 1",
		"zip": "10115", "city": "Berlin", "phone": "030123", "email": "j@example.de",
		"appointmentId": a.ID,
	}
	rec = do(t, h, http.MethodPost, "/api/customers", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body)
	}
	var created struct {
		ID          string `json:"id"`
		LastName    string `json:"lastName"`
		LinkWarning string `json:"linkWarning"`
	}
	decodeBody(t, rec, &created)
	if created.ID == "" || created.LastName != "Müller" || created.LinkWarning != "" {
		t.Fatalf("created: %+v", created)
	}

	rec = do(t, h, http.MethodGet, "/api/appointments/"+a.ID, nil)
	var linked appointmentView
	decodeBody(t, rec, &linked)
	if linked.CustomerID != created.ID {
		t.Fatalf("appointment not linked: %q", linked.CustomerID)
	}

	rec = do(t, h, http.MethodGet, "/api/customers/search?query=m%C3%BCl", nil)
	var found []map[string]any
	decodeBody(t, rec, &found)
	if len(found) != 1 {
		t.Fatalf("search: %v", found)
	}

	rec = do(t, h, http.MethodGet, "/api/customers/search?query=", nil)
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("empty search: %s", rec.Body)
	}

	if rec := do(t, h, http.MethodDelete, "/api/customers/"+created.ID, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/api/customers/"+created.ID, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("get deleted: %d", rec.Code)
	}
}

func TestCustomerValidation(t *testing.T) {
	h := setup(t)
	rec := do(t, h, http.MethodPost, "/api/customers", map[string]string{"lastName": "Nur Name", "zip": "abc"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var eb errorBody
	decodeBody(t, rec, &eb)
	if eb.Fields["zip"] == "" || eb.Fields["firstName"] == "" {
		t.Fatalf("fields: %v", eb.Fields)
	}
	if _, ok := eb.Fields["lastName"]; ok {
		t.Fatal("lastName was given")
	}
}

type brokenStore struct{ store.Store }

func (brokenStore) ListIntervals(context.Context, schedule.Window, string) ([]schedule.Interval, error) {
	return nil, errors.New("connection reset")
}

func TestSourceUnavailable(t *testing.T) {
	st := filestore.NewMemory()
	t.Cleanup(st.Close)
	h := setupWith(t, brokenStore{st}, Options{})
	rec := do(t, h, http.MethodPost, "/api/appointments", slot("2024-01-01", "10:00", "11:00"))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestRateLimitAppliesToWrites(t *testing.T) {
	st := filestore.NewMemory()
	t.Cleanup(st.Close)
	rl := middleware.NewRateLimiter(0.001, 1)
	t.Cleanup(rl.Stop)
	h := setupWith(t, st, Options{Limiter: rl})

	if rec := do(t, h, http.MethodPost, "/api/appointments", slot("2024-01-01", "10:00", "11:00")); rec.Code != http.StatusCreated {
		t.Fatalf("first write: %d", rec.Code)
	}
	if rec := do(t, h, http.MethodPost, "/api/appointments", slot("2024-01-02", "10:00", "11:00")); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second write: %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/api/appointments", nil); rec.Code != http.StatusOK {
		t.Fatalf("read: %d", rec.Code)
	}
}

func TestRateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	proxies, err := middleware.ParseTrustedProxies([]string{"192.0.2.1"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tests := []struct {
		name    string
		proxies middleware.TrustedProxies
		want    int
	}{
		{"no trusted proxies", middleware.TrustedProxies{}, 1},
		{"behind trusted proxy", proxies, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := filestore.NewMemory()
			t.Cleanup(st.Close)
			rl := middleware.NewRateLimiter(0.001, 1)
			t.Cleanup(rl.Stop)
			h := setupWith(t, st, Options{Limiter: rl, Proxies: tt.proxies})

			allowed := 0
			for i := 0; i < 5; i++ {
				var buf bytes.Buffer
				json.NewEncoder(&buf).Encode(slot(fmt.Sprintf("2024-01-%02d", i+1), "10:00", "11:00"))
				req := httptest.NewRequest(http.MethodPost, "/api/appointments", &buf)
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
				req.RemoteAddr = "192.0.2.1:4000"
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, req)
				if rec.Code != http.StatusTooManyRequests {
					allowed++
				}
			}
			if allowed != tt.want {
				t.Fatalf("%d writes allowed, want %d", allowed, tt.want)
			}
		})
	}
}

func TestUpdateAppointmentUnlinksCustomer(t *testing.T) {
	h := setup(t)
	rec := do(t, h, http.MethodPost, "/api/appointments", slot("2024-01-01", "10:00", "11:00"))
	var a appointmentView
	decodeBody(t, rec, &a)
	rec = do(t, h, http.MethodPost, "/api/customers", map[string]string{
		"lastName": "Müller", "firstName": "Jörg", "street": "Hauptstr. 1",
		"zip": "10115", "city": "Berlin", "phone": "030123", "email": "j@example.de",
		"appointmentId": a.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create customer: %d %s", rec.Code, rec.Body)
	}

	upd := map[string]any{}
	for k, v := range slot("2024-01-01", "10:00", "11:00") {
		upd[k] = v
	}
	rec = do(t, h, http.MethodPut, "/api/appointments/"+a.ID, upd)
	var kept appointmentView
	decodeBody(t, rec, &kept)
	if kept.CustomerID == "" {
		t.Fatal("update without customerId dropped the link")
	}

	upd["unlinkCustomer"] = true
	rec = do(t, h, http.MethodPut, "/api/appointments/"+a.ID, upd)
	if rec.Code != http.StatusOK {
		t.Fatalf("unlink: %d %s", rec.Code, rec.Body)
	}
	var unlinked appointmentView
	decodeBody(t, rec, &unlinked)
	if unlinked.CustomerID != "" {
		t.Fatalf("expected unlinked appointment, got %q", unlinked.CustomerID)
	}
}

func TestGRPCWebGoesToBridge(t *testing.T) {
	st := filestore.NewMemory()
	t.Cleanup(st.Close)
	var hit bool
	bridge := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.WriteHeader(http.StatusOK)
	})
	h := setupWith(t, st, Options{Bridge: bridge})

	req := httptest.NewRequest(http.MethodPost, "/termine.v1.TermineService/ListCustomers", bytes.NewReader([]byte{0, 0, 0, 0, 0}))
	req.Header.Set("Content-Type", "application/grpc-web+proto")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if !hit {
		t.Fatal("grpc-web request did not reach the bridge")
	}

	hit = false
	if rec := do(t, h, http.MethodGet, "/health", nil); rec.Code != http.StatusOK || hit {
		t.Fatalf("health: %d (bridge hit %v)", rec.Code, hit)
	}
}

func TestCORSPreflight(t *testing.T) {
	st := filestore.NewMemory()
	t.Cleanup(st.Close)
	h := setupWith(t, st, Options{Origins: []string{"http://app.test"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/appointments", nil)
	req.Header.Set("Origin", "http://app.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://app.test" {
		t.Fatalf("allow origin: %q", got)
	}
}
