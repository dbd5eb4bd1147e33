// Package store defines the persistence collaborator shared by every
// backend. Implementations live in the postgres and filestore subpackages.
package store

import (
	"context"
	"errors"
	"time"

	"termine-api/internal/model"
	"termine-api/internal/schedule"
)

var ErrNotFound = errors.New("not found")

type Store interface {
	schedule.Source

	CreateAppointment(ctx context.Context, a *model.Appointment) error
	GetAppointment(ctx context.Context, id string) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, a *model.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error
	// ListAppointments returns appointments intersecting w ordered by start,
	// then creation time.
	ListAppointments(ctx context.Context, w schedule.Window) ([]model.Appointment, error)
	LinkCustomer(ctx context.Context, appointmentID, customerID string) error
	// CompleteEnded marks planned appointments that ended before t as
	// completed and reports how many changed.
	CompleteEnded(ctx context.Context, t time.Time) (int, error)

	CreateCustomer(ctx context.Context, c *model.Customer) error
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, c *model.Customer) error
	// DeleteCustomer removes the customer and unlinks its appointments.
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context) ([]model.Customer, error)

	Close()
}

const (
	DriverPostgres = "postgres"
	DriverFile     = "file"
	DriverMemory   = "memory"
)
