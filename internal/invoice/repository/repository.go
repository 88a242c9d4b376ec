package repository

import (
	"context"

	"invoicing-dashboard/internal/invoice/domain"
)

// Repository defines persistence for invoices. Every mutation issues a single
// statement; atomicity is the database's per-statement guarantee.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	// List returns invoices joined with customer name/email, newest first.
	List(ctx context.Context) ([]*domain.Invoice, error)
	Create(ctx context.Context, inv *domain.Invoice) error
	// Update sets customer/amount/status for the row matching the invoice ID.
	// Updating a missing id is a no-op, not an error.
	Update(ctx context.Context, inv *domain.Invoice) error
	// Delete removes the row matching id. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id string) error
}
