// Package service holds the form rules and orchestration between the
// validator and the store. Transports translate its errors.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"termine-api/internal/ics"
	"termine-api/internal/model"
	"termine-api/internal/schedule"
	"termine-api/internal/store"
)

const (
	msgTitleRequired     = "Bitte Titel eingeben."
	msgStartDateRequired = "Bitte Startdatum wählen."
	msgEndDateRequired   = "Bitte Enddatum wählen."
	msgStartTimeRequired = "Bitte Startzeit wählen."
	msgEndTimeRequired   = "Bitte Endzeit wählen."
	msgStatusRequired    = "Bitte Status wählen."
)

// AppointmentInput is the appointment form as submitted.
type AppointmentInput struct {
	Title      string
	StartDate  string
	StartTime  string
	EndDate    string
	EndTime    string
	Status     string
	CustomerID string
	// UnlinkCustomer removes the customer link on update and wins over
	// CustomerID. An empty CustomerID alone keeps the current link.
	UnlinkCustomer bool
}

func (in AppointmentInput) candidate() schedule.Candidate {
	return schedule.Candidate{
		StartDate: in.StartDate,
		StartTime: in.StartTime,
		EndDate:   in.EndDate,
		EndTime:   in.EndTime,
	}
}

// checkAppointmentFields reports missing fields and the parsed status.
func checkAppointmentFields(in AppointmentInput) (model.AppointmentErrors, model.Status) {
	var errs model.AppointmentErrors
	if strings.TrimSpace(in.Title) == "" {
		errs.Title = msgTitleRequired
	}
	if strings.TrimSpace(in.StartDate) == "" {
		errs.StartDate = msgStartDateRequired
	}
	if strings.TrimSpace(in.EndDate) == "" {
		errs.EndDate = msgEndDateRequired
	}
	if strings.TrimSpace(in.StartTime) == "" {
		errs.StartTime = msgStartTimeRequired
	}
	if strings.TrimSpace(in.EndTime) == "" {
		errs.EndTime = msgEndTimeRequired
	}
	st, ok := model.ParseStatus(in.Status)
	if !ok {
		errs.Status = msgStatusRequired
	}
	return errs, st
}

type AppointmentService struct {
	store     store.Store
	validator *schedule.Validator
	log       *zap.Logger
	now       func() time.Time
	calName   string
}

func NewAppointmentService(st store.Store, v *schedule.Validator, log *zap.Logger) *AppointmentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AppointmentService{store: st, validator: v, log: log, now: time.Now, calName: "Termine"}
}

// Validate runs the full create-path check without writing. excludeID is
// left out of the overlap set so an edit can be checked against the rest.
func (s *AppointmentService) Validate(ctx context.Context, in AppointmentInput, excludeID string) (schedule.Interval, error) {
	errs, _ := checkAppointmentFields(in)
	if !errs.Empty() {
		return schedule.Interval{}, &ValidationError{Appointment: errs}
	}
	return s.validator.Check(ctx, in.candidate(), excludeID)
}

func (s *AppointmentService) Create(ctx context.Context, in AppointmentInput) (*model.Appointment, error) {
	errs, st := checkAppointmentFields(in)
	if !errs.Empty() {
		return nil, &ValidationError{Appointment: errs}
	}
	if err := s.checkCustomer(ctx, in.CustomerID); err != nil {
		return nil, err
	}
	iv, err := s.validator.Check(ctx, in.candidate(), "")
	if err != nil {
		return nil, err
	}

	a := &model.Appointment{
		ID:         uuid.NewString(),
		Title:      strings.TrimSpace(in.Title),
		Start:      iv.Start,
		End:        iv.End,
		Status:     st,
		CustomerID: strings.TrimSpace(in.CustomerID),
	}
	if err := s.store.CreateAppointment(ctx, a); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	s.log.Info("appointment created", zap.String("id", a.ID), zap.Time("start", a.Start), zap.Time("end", a.End))
	return a, nil
}

// Update replaces the appointment's fields. Whether ordering and overlap are
// checked depends on the validator's edit policy. An empty CustomerID keeps
// the current link.
func (s *AppointmentService) Update(ctx context.Context, id string, in AppointmentInput) (*model.Appointment, error) {
	existing, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	errs, st := checkAppointmentFields(in)
	if !errs.Empty() {
		return nil, &ValidationError{Appointment: errs}
	}
	if !in.UnlinkCustomer {
		if err := s.checkCustomer(ctx, in.CustomerID); err != nil {
			return nil, err
		}
	}
	iv, err := s.validator.CheckEdit(ctx, in.candidate(), id)
	if err != nil {
		return nil, err
	}

	a := *existing
	a.Title = strings.TrimSpace(in.Title)
	a.Start = iv.Start
	a.End = iv.End
	a.Status = st
	switch c := strings.TrimSpace(in.CustomerID); {
	case in.UnlinkCustomer:
		a.CustomerID = ""
	case c != "":
		a.CustomerID = c
	}
	if err := s.store.UpdateAppointment(ctx, &a); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	s.log.Info("appointment updated", zap.String("id", a.ID))
	return &a, nil
}

func (s *AppointmentService) checkCustomer(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if _, err := s.store.GetCustomer(ctx, id); err != nil {
		return fmt.Errorf("customer %s: %w", id, err)
	}
	return nil
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*model.Appointment, error) {
	return s.store.GetAppointment(ctx, id)
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteAppointment(ctx, id); err != nil {
		return err
	}
	s.log.Info("appointment deleted", zap.String("id", id))
	return nil
}

// DefaultWindow is the range shown on the home view: the last 30 days and
// the next two months.
func (s *AppointmentService) DefaultWindow() schedule.Window {
	now := s.now()
	return schedule.Window{From: now.AddDate(0, 0, -30), To: now.AddDate(0, 2, 0)}
}

// List returns appointments intersecting w. A fully open window is replaced
// by DefaultWindow.
func (s *AppointmentService) List(ctx context.Context, w schedule.Window) ([]model.Appointment, error) {
	if w.From.IsZero() && w.To.IsZero() {
		w = s.DefaultWindow()
	}
	return s.store.ListAppointments(ctx, w)
}

func (s *AppointmentService) Export(ctx context.Context, w schedule.Window) (string, error) {
	list, err := s.List(ctx, w)
	if err != nil {
		return "", err
	}
	return ics.Export(list, ics.Options{
		Name:     s.calName,
		TimeZone: s.validator.Location().String(),
		Now:      s.now(),
	}), nil
}

// CompleteEnded moves planned appointments whose end has passed to completed.
func (s *AppointmentService) CompleteEnded(ctx context.Context) (int, error) {
	n, err := s.store.CompleteEnded(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("complete ended appointments: %w", err)
	}
	return n, nil
}

// Location is the civil time zone form dates are read in.
func (s *AppointmentService) Location() *time.Location {
	return s.validator.Location()
}
