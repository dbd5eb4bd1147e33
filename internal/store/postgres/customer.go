package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"termine-api/internal/model"
	"termine-api/internal/store"
)

const customerColumns = `id, title, last_name, first_name, birth_date, street, zip, city,
	phone, mobile, email, website, created_at, updated_at`

func scanCustomer(row rowScanner) (*model.Customer, error) {
	c := &model.Customer{}
	err := row.Scan(&c.ID, &c.Title, &c.LastName, &c.FirstName, &c.BirthDate,
		&c.Street, &c.Zip, &c.City, &c.Phone, &c.Mobile, &c.Email, &c.Website,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c *model.Customer) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO customers (id, title, last_name, first_name, birth_date, street, zip, city,
		                        phone, mobile, email, website)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		 RETURNING created_at, updated_at`,
		c.ID, c.Title, c.LastName, c.FirstName, c.BirthDate, c.Street, c.Zip, c.City,
		c.Phone, c.Mobile, c.Email, c.Website,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (s *Store) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	c, err := scanCustomer(s.pool.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return c, err
}

func (s *Store) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	err := s.pool.QueryRow(ctx,
		`UPDATE customers
		 SET title=$1, last_name=$2, first_name=$3, birth_date=$4, street=$5, zip=$6, city=$7,
		     phone=$8, mobile=$9, email=$10, website=$11, updated_at=NOW()
		 WHERE id=$12
		 RETURNING created_at, updated_at`,
		c.Title, c.LastName, c.FirstName, c.BirthDate, c.Street, c.Zip, c.City,
		c.Phone, c.Mobile, c.Email, c.Website, c.ID,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE appointments SET customer_id=NULL, updated_at=NOW() WHERE customer_id=$1`, id,
	); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (s *Store) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+customerColumns+` FROM customers ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}
