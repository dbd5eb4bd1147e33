// Package rest serves the JSON API and dispatches gRPC-Web requests to the
// bridge on the same port.
package rest

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"termine-api/internal/schedule"
	"termine-api/internal/service"
)

const maxBody = 1 << 20

type Handler struct {
	appointments *service.AppointmentService
	customers    *service.CustomerService
	log          *zap.Logger
}

func NewHandler(as *service.AppointmentService, cs *service.CustomerService, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{appointments: as, customers: cs, log: log}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(v); err != nil {
		return ErrBadRequest("invalid request body")
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warn("write response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	he, known := toHTTPError(err)
	if !known {
		h.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	h.writeJSON(w, he.Code, he.body())
}

// window reads the from/to query parameters. Each is either RFC3339 or a
// calendar date in the service time zone; a date-only "to" includes that day.
func (h *Handler) window(r *http.Request) (schedule.Window, error) {
	loc := h.appointments.Location()
	var w schedule.Window
	var err error
	if w.From, err = parseBound(r.URL.Query().Get("from"), loc, false); err != nil {
		return w, ErrBadRequest("invalid from: " + err.Error())
	}
	if w.To, err = parseBound(r.URL.Query().Get("to"), loc, true); err != nil {
		return w, ErrBadRequest("invalid to: " + err.Error())
	}
	if !w.From.IsZero() && !w.To.IsZero() && !w.To.After(w.From) {
		return w, ErrBadRequest("range end must be after range start")
	}
	return w, nil
}

func parseBound(s string, loc *time.Location, end bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(schedule.DateLayout, s, loc)
	if err != nil {
		return time.Time{}, err
	}
	if end {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
