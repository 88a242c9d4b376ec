// Package service executes validated invoice mutations and classifies
// persistence failures into user-facing messages.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"invoicing-dashboard/internal/invoice/domain"
	"invoicing-dashboard/internal/invoice/form"
)

// ListingPath is the logical path of the invoice listing view. Successful
// create/update mutations invalidate and redirect to it.
const ListingPath = "/dashboard/invoices"

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// failureMessages is the single mapping from persistence failure to the fixed
// user-facing message per operation. Raw database detail never crosses the
// service boundary.
var failureMessages = map[string]string{
	opCreate: "Database Error: Failed to create invoice.",
	opUpdate: "Database Error: Failed to update invoice.",
	opDelete: "Database Error: Failed to delete invoice.",
}

const deletedMessage = "Invoice deleted successfully."

// InvoiceRepo is the minimal invoice repository needed by the mutation executor.
type InvoiceRepo interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	Update(ctx context.Context, inv *domain.Invoice) error
	Delete(ctx context.Context, id string) error
}

// Invalidator marks cached renderings of a logical view path stale.
type Invalidator interface {
	Invalidate(path string)
}

// FormState carries a failed mutation back to the form: a summary message and,
// for validation failures, the per-field error map.
type FormState struct {
	Message string
	Errors  form.FieldErrors
}

// Result is the outcome of a create or update. Exactly one branch is set:
// Redirect names the view to transfer control to after success; Form carries
// the failure for the caller to re-render. The caller owns the actual
// navigation, keeping the executor side-effect-free past the gateway call.
type Result struct {
	Redirect string
	Form     *FormState
}

// DeleteResult is the user-facing outcome of a delete. Delete never redirects;
// navigation stays with the caller.
type DeleteResult struct {
	Message string
	OK      bool
}

// Service validates raw form input and performs exactly one persistence
// operation per call. No retries; a failed gateway call aborts the operation.
type Service struct {
	repo        InvoiceRepo
	invalidator Invalidator
	schema      *form.Schema
	zaplog      *zap.Logger
}

// NewService returns a Service with the given dependencies. schema must be the
// process-wide invoice form schema.
func NewService(repo InvoiceRepo, invalidator Invalidator, schema *form.Schema, zaplog *zap.Logger) *Service {
	return &Service{
		repo:        repo,
		invalidator: invalidator,
		schema:      schema,
		zaplog:      zaplog,
	}
}

// Create validates the submission, inserts one invoice row with a generated id
// and today's date, and on success invalidates the listing view and redirects
// to it. Validation failure returns the field error map without touching the
// gateway; persistence failure returns the fixed create message.
func (s *Service) Create(ctx context.Context, values form.Values) *Result {
	record, errs := s.schema.ValidateCreate(values)
	if errs != nil {
		return &Result{Form: &FormState{
			Message: "Missing Fields. Failed to Create Invoice.",
			Errors:  errs,
		}}
	}

	inv := &domain.Invoice{
		ID:          uuid.New().String(),
		CustomerID:  record.CustomerID,
		AmountCents: record.AmountCents,
		Status:      record.Status,
		Date:        time.Now().UTC().Format(domain.DateLayout),
	}
	if err := inv.Validate(); err != nil {
		return &Result{Form: &FormState{Message: s.classify(opCreate, err)}}
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return &Result{Form: &FormState{Message: s.classify(opCreate, err)}}
	}

	s.invalidator.Invalidate(ListingPath)
	return &Result{Redirect: ListingPath}
}

// Update validates the submission and updates customer/amount/status for the
// row matching id. Updating a missing id is a silent no-op success; only
// persistence failures map to the fixed update message.
func (s *Service) Update(ctx context.Context, id string, values form.Values) *Result {
	record, errs := s.schema.ValidateUpdate(values)
	if errs != nil || id == "" {
		if errs == nil {
			errs = form.FieldErrors{}
		}
		return &Result{Form: &FormState{
			Message: "Missing Fields. Failed to Update Invoice.",
			Errors:  errs,
		}}
	}

	inv := &domain.Invoice{
		ID:          id,
		CustomerID:  record.CustomerID,
		AmountCents: record.AmountCents,
		Status:      record.Status,
	}
	if err := inv.Validate(); err != nil {
		return &Result{Form: &FormState{Message: s.classify(opUpdate, err)}}
	}
	if err := s.repo.Update(ctx, inv); err != nil {
		return &Result{Form: &FormState{Message: s.classify(opUpdate, err)}}
	}

	s.invalidator.Invalidate(ListingPath)
	return &Result{Redirect: ListingPath}
}

// Delete removes the row matching id and invalidates the listing view.
// Deleting a missing id is success (idempotent).
func (s *Service) Delete(ctx context.Context, id string) DeleteResult {
	if err := s.repo.Delete(ctx, id); err != nil {
		return DeleteResult{Message: s.classify(opDelete, err)}
	}
	s.invalidator.Invalidate(ListingPath)
	return DeleteResult{Message: deletedMessage, OK: true}
}

// classify logs the gateway failure server-side and returns the fixed message
// for op. This is the sole translation point for persistence errors.
func (s *Service) classify(op string, err error) string {
	s.zaplog.Error("invoice mutation failed",
		zap.String("op", op),
		zap.Error(err),
	)
	return failureMessages[op]
}
