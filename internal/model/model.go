package model

import (
	"strings"
	"time"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusPlanned   Status = "planned"
	StatusCompleted Status = "completed"
)

// StatusUnselected is what the form submits before a status is picked.
const StatusUnselected = "Auswählen"

var statusLabels = map[Status]string{
	StatusOpen:      "Offen",
	StatusPlanned:   "Geplant",
	StatusCompleted: "Abgeschlossen",
}

// ParseStatus accepts the canonical codes and the German display labels,
// case-insensitively. The unselected sentinel and unknown values are rejected.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	for st, label := range statusLabels {
		if strings.EqualFold(s, string(st)) || strings.EqualFold(s, label) {
			return st, true
		}
	}
	return "", false
}

func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

type Appointment struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Status     Status    `json:"status"`
	CustomerID string    `json:"customerId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Customer struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	BirthDate string    `json:"birthDate,omitempty"`
	Street    string    `json:"street"`
	Zip       string    `json:"zip"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	Mobile    string    `json:"mobile,omitempty"`
	Email     string    `json:"email"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentErrors holds one optional message per appointment form field.
// The zero value means no errors.
type AppointmentErrors struct {
	Title     string `json:"title,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Status    string `json:"status,omitempty"`
}

func (e AppointmentErrors) Empty() bool { return e == AppointmentErrors{} }

// Fields lists the non-empty messages in form order.
func (e AppointmentErrors) Fields() []FieldError {
	return collect(
		FieldError{"title", e.Title},
		FieldError{"startDate", e.StartDate},
		FieldError{"endDate", e.EndDate},
		FieldError{"startTime", e.StartTime},
		FieldError{"endTime", e.EndTime},
		FieldError{"status", e.Status},
	)
}

// CustomerErrors holds one optional message per required customer field,
// plus the birth date which is optional but must be a valid date when set.
type CustomerErrors struct {
	LastName  string `json:"lastName,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
	Street    string `json:"street,omitempty"`
	Zip       string `json:"zip,omitempty"`
	City      string `json:"city,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

func (e CustomerErrors) Empty() bool { return e == CustomerErrors{} }

func (e CustomerErrors) Fields() []FieldError {
	return collect(
		FieldError{"lastName", e.LastName},
		FieldError{"firstName", e.FirstName},
		FieldError{"birthDate", e.BirthDate},
		FieldError{"street", e.Street},
		FieldError{"zip", e.Zip},
		FieldError{"city", e.City},
		FieldError{"phone", e.Phone},
		FieldError{"email", e.Email},
	)
}

type FieldError struct {
	Field   string
	Message string
}

func collect(all ...FieldError) []FieldError {
	var out []FieldError
	for _, f := range all {
		if f.Message != "" {
			out = append(out, f)
		}
	}
	return out
}
