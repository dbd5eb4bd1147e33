// Package filestore keeps appointments and customers in a single JSON
// document on local disk, or only in memory when no path is given.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"termine-api/internal/model"
	"termine-api/internal/schedule"
	"termine-api/internal/store"
)

const (
	BackupSuffix    = ".backup"
	TmpSuffix       = ".tmp"
	FilePermissions = 0o644
)

var ErrClosed = errors.New("filestore: closed")

type document struct {
	Appointments []model.Appointment `json:"appointments"`
	Customers    []model.Customer    `json:"customers"`
}

func (d *document) clone() *document {
	return &document{
		Appointments: append([]model.Appointment(nil), d.Appointments...),
		Customers:    append([]model.Customer(nil), d.Customers...),
	}
}

type Store struct {
	mu     sync.RWMutex
	path   string
	doc    *document
	closed bool
	now    func() time.Time
	log    *zap.Logger
}

// Open loads the document at path, creating an empty one when neither the
// file nor its backup exists. An empty path yields a memory-only store.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{path: path, doc: &document{}, now: time.Now, log: log}
	if path == "" {
		return s, nil
	}

	doc, err := load(path)
	if errors.Is(err, os.ErrNotExist) {
		// a crash between backup and rename leaves only the backup behind
		doc, err = load(path + BackupSuffix)
		if err == nil {
			log.Warn("data file missing, restored from backup", zap.String("path", path))
		}
	}
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Info("starting with empty data file", zap.String("path", path))
	case err != nil:
		return nil, fmt.Errorf("load %s: %w", path, err)
	default:
		s.doc = doc
	}
	return s, nil
}

func NewMemory() *Store {
	s, _ := Open("", nil)
	return s
}

func load(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// save writes doc next to the data file and renames it into place. The
// previous generation is kept as the backup. Caller must hold the write lock.
func (s *Store) save(doc *document) error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmpFile := s.path + TmpSuffix
	if err := os.WriteFile(tmpFile, data, FilePermissions); err != nil {
		return err
	}
	if _, err := os.Stat(s.path); err == nil {
		if err := os.Rename(s.path, s.path+BackupSuffix); err != nil {
			s.log.Warn("failed to create backup", zap.Error(err))
		}
	}
	return os.Rename(tmpFile, s.path)
}

// mutate applies fn to a copy of the document and swaps it in only after
// the copy has been persisted.
func (s *Store) mutate(fn func(d *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	next := s.doc.clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.save(next); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	s.doc = next
	return nil
}

func (s *Store) read(fn func(d *document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return fn(s.doc)
}

func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func indexAppointment(d *document, id string) int {
	for i := range d.Appointments {
		if d.Appointments[i].ID == id {
			return i
		}
	}
	return -1
}

func indexCustomer(d *document, id string) int {
	for i := range d.Customers {
		if d.Customers[i].ID == id {
			return i
		}
	}
	return -1
}

// CreateAppointment stamps a only once the document has been saved.
func (s *Store) CreateAppointment(_ context.Context, a *model.Appointment) error {
	stamped := *a
	err := s.mutate(func(d *document) error {
		if indexAppointment(d, a.ID) >= 0 {
			return fmt.Errorf("appointment %s already exists", a.ID)
		}
		stamped.CreatedAt = s.now().UTC()
		stamped.UpdatedAt = stamped.CreatedAt
		d.Appointments = append(d.Appointments, stamped)
		return nil
	})
	if err != nil {
		return err
	}
	*a = stamped
	return nil
}

func (s *Store) GetAppointment(_ context.Context, id string) (*model.Appointment, error) {
	var out model.Appointment
	err := s.read(func(d *document) error {
		i := indexAppointment(d, id)
		if i < 0 {
			return store.ErrNotFound
		}
		out = d.Appointments[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) UpdateAppointment(_ context.Context, a *model.Appointment) error {
	stamped := *a
	err := s.mutate(func(d *document) error {
		i := indexAppointment(d, a.ID)
		if i < 0 {
			return store.ErrNotFound
		}
		stamped.CreatedAt = d.Appointments[i].CreatedAt
		stamped.UpdatedAt = s.now().UTC()
		d.Appointments[i] = stamped
		return nil
	})
	if err != nil {
		return err
	}
	*a = stamped
	return nil
}

func (s *Store) DeleteAppointment(_ context.Context, id string) error {
	return s.mutate(func(d *document) error {
		i := indexAppointment(d, id)
		if i < 0 {
			return store.ErrNotFound
		}
		d.Appointments = append(d.Appointments[:i], d.Appointments[i+1:]...)
		return nil
	})
}

func intersects(start, end time.Time, w schedule.Window) bool {
	if !w.From.IsZero() && !end.After(w.From) {
		return false
	}
	if !w.To.IsZero() && !start.Before(w.To) {
		return false
	}
	return true
}

// ListAppointments orders by start. Insertion order breaks ties, which is
// creation order.
func (s *Store) ListAppointments(_ context.Context, w schedule.Window) ([]model.Appointment, error) {
	out := make([]model.Appointment, 0)
	err := s.read(func(d *document) error {
		for _, a := range d.Appointments {
			if intersects(a.Start, a.End, w) {
				out = append(out, a)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (s *Store) ListIntervals(_ context.Context, w schedule.Window, excludeID string) ([]schedule.Interval, error) {
	var out []schedule.Interval
	err := s.read(func(d *document) error {
		for _, a := range d.Appointments {
			if excludeID != "" && a.ID == excludeID {
				continue
			}
			if intersects(a.Start, a.End, w) {
				out = append(out, schedule.Interval{ID: a.ID, Start: a.Start, End: a.End})
			}
		}
		return nil
	})
	return out, err
}

func (s *Store) LinkCustomer(_ context.Context, appointmentID, customerID string) error {
	return s.mutate(func(d *document) error {
		i := indexAppointment(d, appointmentID)
		if i < 0 {
			return store.ErrNotFound
		}
		d.Appointments[i].CustomerID = customerID
		d.Appointments[i].UpdatedAt = s.now().UTC()
		return nil
	})
}

func (s *Store) CompleteEnded(_ context.Context, t time.Time) (int, error) {
	n := 0
	err := s.mutate(func(d *document) error {
		now := s.now().UTC()
		for i := range d.Appointments {
			a := &d.Appointments[i]
			if a.Status == model.StatusPlanned && a.End.Before(t) {
				a.Status = model.StatusCompleted
				a.UpdatedAt = now
				n++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) CreateCustomer(_ context.Context, c *model.Customer) error {
	stamped := *c
	err := s.mutate(func(d *document) error {
		if indexCustomer(d, c.ID) >= 0 {
			return fmt.Errorf("customer %s already exists", c.ID)
		}
		stamped.CreatedAt = s.now().UTC()
		stamped.UpdatedAt = stamped.CreatedAt
		d.Customers = append(d.Customers, stamped)
		return nil
	})
	if err != nil {
		return err
	}
	*c = stamped
	return nil
}

func (s *Store) GetCustomer(_ context.Context, id string) (*model.Customer, error) {
	var out model.Customer
	err := s.read(func(d *document) error {
		i := indexCustomer(d, id)
		if i < 0 {
			return store.ErrNotFound
		}
		out = d.Customers[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) UpdateCustomer(_ context.Context, c *model.Customer) error {
	stamped := *c
	err := s.mutate(func(d *document) error {
		i := indexCustomer(d, c.ID)
		if i < 0 {
			return store.ErrNotFound
		}
		stamped.CreatedAt = d.Customers[i].CreatedAt
		stamped.UpdatedAt = s.now().UTC()
		d.Customers[i] = stamped
		return nil
	})
	if err != nil {
		return err
	}
	*c = stamped
	return nil
}

func (s *Store) DeleteCustomer(_ context.Context, id string) error {
	return s.mutate(func(d *document) error {
		i := indexCustomer(d, id)
		if i < 0 {
			return store.ErrNotFound
		}
		d.Customers = append(d.Customers[:i], d.Customers[i+1:]...)
		now := s.now().UTC()
		for j := range d.Appointments {
			if d.Appointments[j].CustomerID == id {
				d.Appointments[j].CustomerID = ""
				d.Appointments[j].UpdatedAt = now
			}
		}
		return nil
	})
}

func (s *Store) ListCustomers(_ context.Context) ([]model.Customer, error) {
	var out []model.Customer
	err := s.read(func(d *document) error {
		out = append(make([]model.Customer, 0, len(d.Customers)), d.Customers...)
		return nil
	})
	return out, err
}

var _ store.Store = (*Store)(nil)
