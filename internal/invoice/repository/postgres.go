package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"invoicing-dashboard/internal/invoice/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an invoice repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the invoice for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, customer_id, amount, status, date FROM invoices WHERE id = $1`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return inv, nil
}

// List returns all invoices joined with their customer's name and email,
// newest date first.
func (r *PostgresRepository) List(ctx context.Context) ([]*domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT i.id, i.customer_id, i.amount, i.status, i.date, c.name, c.email
		 FROM invoices i
		 JOIN customers c ON c.id = i.customer_id
		 ORDER BY i.date DESC, i.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		var date time.Time
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.AmountCents, &inv.Status,
			&date, &inv.CustomerName, &inv.CustomerEmail); err != nil {
			return nil, err
		}
		inv.Date = date.Format(domain.DateLayout)
		invoices = append(invoices, &inv)
	}
	return invoices, rows.Err()
}

// Create persists the invoice. The invoice must have ID and Date set; they are
// not assigned by this method.
func (r *PostgresRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invoices (id, customer_id, amount, status, date)
		 VALUES ($1, $2, $3, $4, $5)`,
		inv.ID, inv.CustomerID, inv.AmountCents, string(inv.Status), inv.Date)
	return err
}

// Update sets customer/amount/status for the row matching the invoice ID.
// A missing row updates nothing and returns nil.
func (r *PostgresRepository) Update(ctx context.Context, inv *domain.Invoice) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET customer_id = $1, amount = $2, status = $3 WHERE id = $4`,
		inv.CustomerID, inv.AmountCents, string(inv.Status), inv.ID)
	return err
}

// Delete removes the row matching id. A missing row deletes nothing and returns nil.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	return err
}

func scanInvoice(row *sql.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	var date time.Time
	if err := row.Scan(&inv.ID, &inv.CustomerID, &inv.AmountCents, &inv.Status, &date); err != nil {
		return nil, err
	}
	inv.Date = date.Format(domain.DateLayout)
	return &inv, nil
}
