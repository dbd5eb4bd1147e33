package rest

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"termine-api/internal/ics"
	"termine-api/internal/model"
	"termine-api/internal/schedule"
	"termine-api/internal/service"
)

type appointmentRequest struct {
	Title          string `json:"title"`
	StartDate      string `json:"startDate"`
	StartTime      string `json:"startTime"`
	EndDate        string `json:"endDate"`
	EndTime        string `json:"endTime"`
	Status         string `json:"status"`
	CustomerID     string `json:"customerId"`
	UnlinkCustomer bool   `json:"unlinkCustomer"`
}

func (a appointmentRequest) input() service.AppointmentInput {
	return service.AppointmentInput{
		Title:          a.Title,
		StartDate:      a.StartDate,
		StartTime:      a.StartTime,
		EndDate:        a.EndDate,
		EndTime:        a.EndTime,
		Status:         a.Status,
		CustomerID:     a.CustomerID,
		UnlinkCustomer: a.UnlinkCustomer,
	}
}

// appointmentView adds the civil date and time fields used to prefill the
// edit form.
type appointmentView struct {
	model.Appointment
	StatusLabel string `json:"statusLabel"`
	StartDate   string `json:"startDate"`
	StartTime   string `json:"startTime"`
	EndDate     string `json:"endDate"`
	EndTime     string `json:"endTime"`
}

func (h *Handler) view(a model.Appointment) appointmentView {
	loc := h.appointments.Location()
	v := appointmentView{Appointment: a, StatusLabel: a.Status.Label()}
	v.StartDate, v.StartTime = schedule.SplitInstant(a.Start, loc)
	v.EndDate, v.EndTime = schedule.SplitInstant(a.End, loc)
	return v
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	win, err := h.window(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list, err := h.appointments.List(r.Context(), win)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]appointmentView, len(list))
	for i, a := range list {
		out[i] = h.view(a)
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.appointments.Create(r.Context(), req.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, h.view(*a))
}

func (h *Handler) ValidateAppointment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		appointmentRequest
		ExcludeID string `json:"excludeId"`
	}
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	iv, err := h.appointments.Validate(r.Context(), req.input(), req.ExcludeID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	}{iv.Start, iv.End})
}

func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	a, err := h.appointments.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.view(*a))
}

func (h *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.appointments.Update(r.Context(), mux.Vars(r)["id"], req.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.view(*a))
}

func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if err := h.appointments.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	win, err := h.window(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	cal, err := h.appointments.Export(r.Context(), win)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", ics.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="termine.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(cal))
}
