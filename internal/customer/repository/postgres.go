package repository

import (
	"context"
	"database/sql"
	"errors"

	"invoicing-dashboard/internal/customer/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a customer repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all customers ordered by name.
func (r *PostgresRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, image_url FROM customers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

// GetByID returns the customer for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, image_url FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create persists the customer. The customer must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, c *domain.Customer) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (id, name, email, image_url) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Email, c.ImageURL)
	return err
}
