package service

import (
	"strings"

	"termine-api/internal/model"
)

// ValidationError reports required or malformed form fields. Only one of the
// two records is populated, depending on the form.
type ValidationError struct {
	Appointment model.AppointmentErrors
	Customer    model.CustomerErrors
}

func (e *ValidationError) Fields() []model.FieldError {
	return append(e.Appointment.Fields(), e.Customer.Fields()...)
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	for i, f := range e.Fields() {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(f.Field)
		b.WriteString(": ")
		b.WriteString(f.Message)
	}
	return b.String()
}
