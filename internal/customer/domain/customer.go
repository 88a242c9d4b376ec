package domain

import "errors"

// Customer is a billable customer referenced by invoices.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// Validate validates the customer for persistence. Returns an error describing the first validation failure.
func (c *Customer) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	return nil
}
