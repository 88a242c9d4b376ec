// Package form validates raw invoice form input and produces typed records
// or a field-keyed error map. It has no persistence dependencies.
package form

import (
	"math"
	"strconv"
	"strings"

	"invoicing-dashboard/internal/invoice/domain"
)

// Values holds raw field name → raw string value pairs from a submitted form.
type Values map[string]string

// Get returns the raw value for name, or "" when the field is absent.
func (v Values) Get(name string) string {
	return v[name]
}

// FieldErrors maps a form field name to its ordered violation messages.
type FieldErrors map[string][]string

// Add appends a message to the given field's error list.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Record is a validated invoice form submission. AmountCents is the amount
// converted to minor units; the conversion happens only after validation.
type Record struct {
	CustomerID  string
	AmountCents int64
	Status      domain.Status
}

// Schema validates invoice form values. It is an immutable value; construct
// once with NewSchema and share by reference.
type Schema struct {
	customerIDMessage string
	amountMessage     string
	statusMessage     string
}

// NewSchema returns the invoice form schema with its user-facing messages.
func NewSchema() *Schema {
	return &Schema{
		customerIDMessage: "Please select a customer.",
		amountMessage:     "Please enter an amount greater than $0.",
		statusMessage:     "Please select an invoice status.",
	}
}

// ValidateCreate checks all fields of a create submission and returns either a
// fully-typed record or the errors for every failing field. It never returns
// both, and it never stops at the first failure.
func (s *Schema) ValidateCreate(v Values) (*Record, FieldErrors) {
	return s.validate(v)
}

// ValidateUpdate applies the same rules as ValidateCreate; the target invoice
// id is not part of the form body and is supplied to the executor separately.
func (s *Schema) ValidateUpdate(v Values) (*Record, FieldErrors) {
	return s.validate(v)
}

func (s *Schema) validate(v Values) (*Record, FieldErrors) {
	customerID := strings.TrimSpace(v.Get("customerId"))
	rawAmount := strings.TrimSpace(v.Get("amount"))
	rawStatus := v.Get("status")

	// Phase 1: check every field on its raw representation. A missing field
	// fails its own constraint; there is no separate "required" message.
	errs := FieldErrors{}
	if customerID == "" {
		errs.Add("customerId", s.customerIDMessage)
	}
	amount, ok := parseAmount(rawAmount)
	if !ok {
		errs.Add("amount", s.amountMessage)
	}
	if !domain.ValidStatus(rawStatus) {
		errs.Add("status", s.statusMessage)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	// Phase 2: transform values that passed. Major units become minor units
	// here, after the gt-zero check ran against the user-facing unit.
	return &Record{
		CustomerID:  customerID,
		AmountCents: toCents(amount),
		Status:      domain.Status(rawStatus),
	}, nil
}

// maxAmount bounds the major-unit amount so the cent conversion stays inside
// int64. The constant rounds up when converted to float64, so the comparison
// below must be inclusive.
const maxAmount = math.MaxInt64 / 100

// parseAmount coerces the raw amount string to a number and checks it is
// strictly greater than zero and small enough to store in cents. Coercion
// failure and bound failure are one constraint sharing one message.
func parseAmount(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	// strconv accepts Go literal forms (digit underscores, hex floats) that a
	// form amount never is; reject them before parsing.
	if strings.ContainsAny(raw, "_xX") {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	if f <= 0 || f >= maxAmount {
		return 0, false
	}
	return f, true
}

// toCents converts a major-unit amount to minor units. Rounding keeps inputs
// with at most two decimal places exact.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
