package repository

import (
	"context"

	"invoicing-dashboard/internal/customer/domain"
)

// Repository defines persistence for customers.
type Repository interface {
	// List returns all customers ordered by name, for the invoice form dropdown.
	List(ctx context.Context) ([]*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
}
