package domain

import (
	"errors"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used for invoice dates.
const DateLayout = "2006-01-02"

// Invoice is the core invoice entity. Amount is stored in integer minor units
// (cents) to avoid fractional rounding. ID and Date are assigned at creation
// and never accepted from client input.
type Invoice struct {
	ID            string
	CustomerID    string
	AmountCents   int64
	Status        Status
	Date          string // ISO-8601 date (yyyy-mm-dd)
	CustomerName  string // joined for listing views; empty elsewhere
	CustomerEmail string
}

// Status is the invoice payment status.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// ValidStatus reports whether s is one of the two accepted statuses.
func ValidStatus(s string) bool {
	return s == string(StatusPending) || s == string(StatusPaid)
}

// Validate validates the invoice for persistence. Returns an error describing
// the first validation failure. Date is empty on update, which leaves the
// stored date untouched.
func (i *Invoice) Validate() error {
	if i.CustomerID == "" {
		return errors.New("customer_id is required")
	}
	if i.AmountCents <= 0 {
		return errors.New("amount must be positive")
	}
	if !ValidStatus(string(i.Status)) {
		return errors.New("status must be pending or paid")
	}
	if i.Date != "" {
		if _, err := time.Parse(DateLayout, i.Date); err != nil {
			return errors.New("date must be an ISO-8601 calendar date")
		}
	}
	return nil
}
