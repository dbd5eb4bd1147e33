package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"termine-api/internal/model"
	"termine-api/internal/schedule"
	"termine-api/internal/store"
)

const appointmentColumns = `id, title, start_time, end_time, status, customer_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*model.Appointment, error) {
	a := &model.Appointment{}
	var customerID *string
	if err := row.Scan(&a.ID, &a.Title, &a.Start, &a.End, &a.Status,
		&customerID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if customerID != nil {
		a.CustomerID = *customerID
	}
	return a, nil
}

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO appointments (id, title, start_time, end_time, status, customer_id)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING created_at, updated_at`,
		a.ID, a.Title, a.Start, a.End, a.Status, nullable(a.CustomerID),
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (s *Store) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	a, err := scanAppointment(s.pool.QueryRow(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return a, err
}

func (s *Store) UpdateAppointment(ctx context.Context, a *model.Appointment) error {
	err := s.pool.QueryRow(ctx,
		`UPDATE appointments
		 SET title=$1, start_time=$2, end_time=$3, status=$4, customer_id=$5, updated_at=NOW()
		 WHERE id=$6
		 RETURNING created_at, updated_at`,
		a.Title, a.Start, a.End, a.Status, nullable(a.CustomerID), a.ID,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// windowClause appends the half-open intersection filter for w to q.
func windowClause(q string, args []any, w schedule.Window) (string, []any) {
	if !w.From.IsZero() {
		args = append(args, w.From)
		q += fmt.Sprintf(` AND end_time > $%d`, len(args))
	}
	if !w.To.IsZero() {
		args = append(args, w.To)
		q += fmt.Sprintf(` AND start_time < $%d`, len(args))
	}
	return q, args
}

func (s *Store) ListAppointments(ctx context.Context, w schedule.Window) ([]model.Appointment, error) {
	q, args := windowClause(`SELECT `+appointmentColumns+` FROM appointments WHERE TRUE`, nil, w)
	q += ` ORDER BY start_time, created_at, id`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *Store) ListIntervals(ctx context.Context, w schedule.Window, excludeID string) ([]schedule.Interval, error) {
	q, args := windowClause(`SELECT id, start_time, end_time FROM appointments WHERE TRUE`, nil, w)
	if excludeID != "" {
		args = append(args, excludeID)
		q += fmt.Sprintf(` AND id != $%d`, len(args))
	}

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.ID, &iv.Start, &iv.End); err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}

func (s *Store) LinkCustomer(ctx context.Context, appointmentID, customerID string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE appointments SET customer_id=$1, updated_at=NOW() WHERE id=$2`,
		nullable(customerID), appointmentID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CompleteEnded(ctx context.Context, t time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE appointments SET status=$1, updated_at=NOW()
		 WHERE status=$2 AND end_time < $3`,
		model.StatusCompleted, model.StatusPlanned, t,
	)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
