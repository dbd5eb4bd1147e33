package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"termine-api/internal/model"
	"termine-api/internal/service"
)

type customerRequest struct {
	Title     string `json:"title"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	BirthDate string `json:"birthDate"`
	Street    string `json:"street"`
	Zip       string `json:"zip"`
	City      string `json:"city"`
	Phone     string `json:"phone"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	Website   string `json:"website"`
}

func (c customerRequest) input() service.CustomerInput {
	return service.CustomerInput{
		Title:     c.Title,
		LastName:  c.LastName,
		FirstName: c.FirstName,
		BirthDate: c.BirthDate,
		Street:    c.Street,
		Zip:       c.Zip,
		City:      c.City,
		Phone:     c.Phone,
		Mobile:    c.Mobile,
		Email:     c.Email,
		Website:   c.Website,
	}
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	list, err := h.customers.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(list))
}

func (h *Handler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	list, err := h.customers.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(list))
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		customerRequest
		AppointmentID string `json:"appointmentId"`
	}
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.customers.Create(r.Context(), req.input(), req.AppointmentID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, struct {
		*model.Customer
		LinkWarning string `json:"linkWarning,omitempty"`
	}{res.Customer, res.LinkWarning})
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.customers.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.customers.Update(r.Context(), mux.Vars(r)["id"], req.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.customers.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func nonNil(cs []model.Customer) []model.Customer {
	if cs == nil {
		return []model.Customer{}
	}
	return cs
}
