package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"invoicing-dashboard/internal/invoice/domain"
	"invoicing-dashboard/internal/invoice/form"
)

type memInvoiceRepo struct {
	mu      sync.Mutex
	m       map[string]*domain.Invoice
	creates int
	updates int
	deletes int
	failAll bool
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{m: map[string]*domain.Invoice{}}
}

var errGateway = errors.New("pq: connection reset")

func (r *memInvoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.failAll {
		return errGateway
	}
	inv2 := *inv
	r.m[inv.ID] = &inv2
	return nil
}

func (r *memInvoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	if r.failAll {
		return errGateway
	}
	if existing, ok := r.m[inv.ID]; ok {
		existing.CustomerID = inv.CustomerID
		existing.AmountCents = inv.AmountCents
		existing.Status = inv.Status
	}
	// Missing id: zero rows affected, no error.
	return nil
}

func (r *memInvoiceRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	if r.failAll {
		return errGateway
	}
	delete(r.m, id)
	return nil
}

type spyInvalidator struct {
	mu    sync.Mutex
	paths []string
}

func (s *spyInvalidator) Invalidate(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths = append(s.paths, path)
}

func newTestService() (*Service, *memInvoiceRepo, *spyInvalidator) {
	repo := newMemInvoiceRepo()
	inv := &spyInvalidator{}
	svc := NewService(repo, inv, form.NewSchema(), zap.NewNop())
	return svc, repo, inv
}

func TestCreate_Success(t *testing.T) {
	svc, repo, inv := newTestService()

	res := svc.Create(context.Background(), form.Values{
		"customerId": "c1",
		"amount":     "50",
		"status":     "pending",
	})
	if res.Redirect != ListingPath {
		t.Fatalf("Redirect = %q, want %q", res.Redirect, ListingPath)
	}
	if res.Form != nil {
		t.Error("success should not carry form state")
	}
	if repo.creates != 1 {
		t.Errorf("creates = %d, want 1", repo.creates)
	}
	if len(inv.paths) != 1 || inv.paths[0] != ListingPath {
		t.Errorf("invalidations = %v, want one for %q", inv.paths, ListingPath)
	}

	today := time.Now().UTC().Format(domain.DateLayout)
	for _, stored := range repo.m {
		if stored.ID == "" {
			t.Error("stored invoice should have a generated id")
		}
		if stored.CustomerID != "c1" || stored.AmountCents != 5000 || stored.Status != domain.StatusPending {
			t.Errorf("stored invoice = %+v, want c1/5000/pending", stored)
		}
		if stored.Date != today {
			t.Errorf("Date = %q, want today %q", stored.Date, today)
		}
	}
}

func TestCreate_ValidationFailureSkipsGateway(t *testing.T) {
	svc, repo, inv := newTestService()

	for _, amount := range []string{"", "0", "-1", "abc"} {
		res := svc.Create(context.Background(), form.Values{
			"customerId": "c1",
			"amount":     amount,
			"status":     "pending",
		})
		if res.Form == nil {
			t.Fatalf("amount %q: expected form state", amount)
		}
		if res.Form.Message != "Missing Fields. Failed to Create Invoice." {
			t.Errorf("amount %q: Message = %q", amount, res.Form.Message)
		}
		if len(res.Form.Errors["amount"]) == 0 {
			t.Errorf("amount %q: expected amount field error", amount)
		}
	}
	if repo.creates != 0 {
		t.Errorf("gateway called %d times on validation failure", repo.creates)
	}
	if len(inv.paths) != 0 {
		t.Errorf("invalidated %v on validation failure", inv.paths)
	}
}

func TestCreate_GatewayFailure(t *testing.T) {
	svc, repo, inv := newTestService()
	repo.failAll = true

	res := svc.Create(context.Background(), form.Values{
		"customerId": "c1",
		"amount":     "50",
		"status":     "paid",
	})
	if res.Form == nil {
		t.Fatal("expected form state")
	}
	if res.Form.Message != "Database Error: Failed to create invoice." {
		t.Errorf("Message = %q", res.Form.Message)
	}
	if res.Form.Errors != nil {
		t.Error("gateway failure should not carry field errors")
	}
	if len(inv.paths) != 0 {
		t.Errorf("invalidated %v on gateway failure", inv.paths)
	}
}

func TestUpdate_Success(t *testing.T) {
	svc, repo, inv := newTestService()
	repo.m["inv-1"] = &domain.Invoice{ID: "inv-1", CustomerID: "c1", AmountCents: 100, Status: domain.StatusPending}

	res := svc.Update(context.Background(), "inv-1", form.Values{
		"customerId": "c2",
		"amount":     "12.34",
		"status":     "paid",
	})
	if res.Redirect != ListingPath {
		t.Fatalf("Redirect = %q, want %q", res.Redirect, ListingPath)
	}
	got := repo.m["inv-1"]
	if got.CustomerID != "c2" || got.AmountCents != 1234 || got.Status != domain.StatusPaid {
		t.Errorf("updated invoice = %+v", got)
	}
	if len(inv.paths) != 1 {
		t.Errorf("invalidations = %v, want one", inv.paths)
	}
}

func TestUpdate_MissingIDIsNoOpSuccess(t *testing.T) {
	svc, repo, _ := newTestService()

	res := svc.Update(context.Background(), "no-such-id", form.Values{
		"customerId": "c1",
		"amount":     "10",
		"status":     "paid",
	})
	if res.Redirect != ListingPath {
		t.Fatalf("missing id should be silent success, got %+v", res)
	}
	if repo.updates != 1 {
		t.Errorf("updates = %d, want 1", repo.updates)
	}
}

func TestUpdate_ValidationFailure(t *testing.T) {
	svc, repo, _ := newTestService()

	res := svc.Update(context.Background(), "inv-1", form.Values{"status": "nope"})
	if res.Form == nil {
		t.Fatal("expected form state")
	}
	if res.Form.Message != "Missing Fields. Failed to Update Invoice." {
		t.Errorf("Message = %q", res.Form.Message)
	}
	if repo.updates != 0 {
		t.Error("gateway should not be called on validation failure")
	}
}

func TestUpdate_GatewayFailure(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.failAll = true

	res := svc.Update(context.Background(), "inv-1", form.Values{
		"customerId": "c1",
		"amount":     "10",
		"status":     "paid",
	})
	if res.Form == nil || res.Form.Message != "Database Error: Failed to update invoice." {
		t.Fatalf("result = %+v, want update failure message", res)
	}
}

func TestDelete_Success(t *testing.T) {
	svc, repo, inv := newTestService()
	repo.m["inv-1"] = &domain.Invoice{ID: "inv-1"}

	res := svc.Delete(context.Background(), "inv-1")
	if !res.OK {
		t.Fatalf("Delete failed: %+v", res)
	}
	if res.Message != "Invoice deleted successfully." {
		t.Errorf("Message = %q", res.Message)
	}
	if _, ok := repo.m["inv-1"]; ok {
		t.Error("invoice should be gone")
	}
	if len(inv.paths) != 1 || inv.paths[0] != ListingPath {
		t.Errorf("invalidations = %v", inv.paths)
	}
}

func TestDelete_MissingIDIsSuccess(t *testing.T) {
	svc, _, _ := newTestService()

	res := svc.Delete(context.Background(), "never-existed")
	if !res.OK || res.Message != "Invoice deleted successfully." {
		t.Fatalf("delete of missing id should be idempotent success, got %+v", res)
	}
}

func TestDelete_GatewayFailure(t *testing.T) {
	svc, repo, inv := newTestService()
	repo.failAll = true

	res := svc.Delete(context.Background(), "inv-1")
	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Message != "Database Error: Failed to delete invoice." {
		t.Errorf("Message = %q", res.Message)
	}
	if len(inv.paths) != 0 {
		t.Errorf("invalidated %v on gateway failure", inv.paths)
	}
}
