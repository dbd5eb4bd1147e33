package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"termine-api/internal/model"
	"termine-api/internal/schedule"
	"termine-api/internal/search"
	"termine-api/internal/store"
)

const (
	msgLastNameRequired  = "Bitte Name eingeben."
	msgFirstNameRequired = "Bitte Vorname eingeben."
	msgStreetRequired    = "Bitte Straße eingeben."
	msgZipRequired       = "Bitte Postleitzahl eingeben."
	msgZipInvalid        = "Bitte gültige Postleitzahl eingeben."
	msgCityRequired      = "Bitte Stadt eingeben."
	msgPhoneRequired     = "Bitte Telefon eingeben."
	msgEmailRequired     = "Bitte Email eingeben."
	msgBirthDateInvalid  = "Bitte gültiges Geburtsdatum eingeben."

	msgLinkFailed = "Termin-Zuordnung fehlgeschlagen"
)

type CustomerInput struct {
	Title     string
	LastName  string
	FirstName string
	BirthDate string
	Street    string
	Zip       string
	City      string
	Phone     string
	Mobile    string
	Email     string
	Website   string
}

func (in CustomerInput) trimmed() CustomerInput {
	return CustomerInput{
		Title:     strings.TrimSpace(in.Title),
		LastName:  strings.TrimSpace(in.LastName),
		FirstName: strings.TrimSpace(in.FirstName),
		BirthDate: strings.TrimSpace(in.BirthDate),
		Street:    strings.TrimSpace(in.Street),
		Zip:       strings.TrimSpace(in.Zip),
		City:      strings.TrimSpace(in.City),
		Phone:     strings.TrimSpace(in.Phone),
		Mobile:    strings.TrimSpace(in.Mobile),
		Email:     strings.TrimSpace(in.Email),
		Website:   strings.TrimSpace(in.Website),
	}
}

func required(v, msg string) string {
	if v == "" {
		return msg
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// checkCustomerFields expects trimmed input.
func checkCustomerFields(in CustomerInput) model.CustomerErrors {
	errs := model.CustomerErrors{
		LastName:  required(in.LastName, msgLastNameRequired),
		FirstName: required(in.FirstName, msgFirstNameRequired),
		Street:    required(in.Street, msgStreetRequired),
		Zip:       required(in.Zip, msgZipRequired),
		City:      required(in.City, msgCityRequired),
		Phone:     required(in.Phone, msgPhoneRequired),
		Email:     required(in.Email, msgEmailRequired),
	}
	if in.Zip != "" && !isDigits(in.Zip) {
		errs.Zip = msgZipInvalid
	}
	if in.BirthDate != "" {
		if _, err := time.Parse(schedule.DateLayout, in.BirthDate); err != nil {
			errs.BirthDate = msgBirthDateInvalid
		}
	}
	return errs
}

func (in CustomerInput) apply(c *model.Customer) {
	c.Title = in.Title
	c.LastName = in.LastName
	c.FirstName = in.FirstName
	c.BirthDate = in.BirthDate
	c.Street = in.Street
	c.Zip = in.Zip
	c.City = in.City
	c.Phone = in.Phone
	c.Mobile = in.Mobile
	c.Email = in.Email
	c.Website = in.Website
}

// CustomerResult carries the saved customer and, when linking to an
// appointment failed, a warning. The customer is kept in that case.
type CustomerResult struct {
	Customer    *model.Customer
	LinkWarning string
}

type CustomerService struct {
	store store.Store
	log   *zap.Logger
}

func NewCustomerService(st store.Store, log *zap.Logger) *CustomerService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CustomerService{store: st, log: log}
}

// Create saves a new customer and, when appointmentID is set, links that
// appointment to it.
func (s *CustomerService) Create(ctx context.Context, in CustomerInput, appointmentID string) (*CustomerResult, error) {
	in = in.trimmed()
	if errs := checkCustomerFields(in); !errs.Empty() {
		return nil, &ValidationError{Customer: errs}
	}

	c := &model.Customer{ID: uuid.NewString()}
	in.apply(c)
	if err := s.store.CreateCustomer(ctx, c); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	s.log.Info("customer created", zap.String("id", c.ID))

	res := &CustomerResult{Customer: c}
	if appointmentID = strings.TrimSpace(appointmentID); appointmentID != "" {
		if err := s.store.LinkCustomer(ctx, appointmentID, c.ID); err != nil {
			s.log.Warn("link appointment to customer failed",
				zap.String("appointment", appointmentID), zap.String("customer", c.ID), zap.Error(err))
			res.LinkWarning = fmt.Sprintf("%s: %v", msgLinkFailed, err)
		}
	}
	return res, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, in CustomerInput) (*model.Customer, error) {
	existing, err := s.store.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	in = in.trimmed()
	if errs := checkCustomerFields(in); !errs.Empty() {
		return nil, &ValidationError{Customer: errs}
	}

	c := *existing
	in.apply(&c)
	if err := s.store.UpdateCustomer(ctx, &c); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return &c, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	return s.store.GetCustomer(ctx, id)
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	s.log.Info("customer deleted", zap.String("id", id))
	return nil
}

// List returns all customers in phone-book order.
func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	all, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	search.Sort(all)
	return all, nil
}

func (s *CustomerService) Search(ctx context.Context, query string) ([]model.Customer, error) {
	if strings.TrimSpace(query) == "" {
		return []model.Customer{}, nil
	}
	all, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return search.Customers(query, all), nil
}
