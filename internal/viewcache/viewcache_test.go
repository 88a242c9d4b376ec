package viewcache

import (
	"sync"
	"testing"
)

func TestMemory_InvalidateAndReset(t *testing.T) {
	m := NewMemory()

	if m.Stale("/dashboard/invoices") {
		t.Fatal("fresh cache should not be stale")
	}

	m.Invalidate("/dashboard/invoices")
	if !m.Stale("/dashboard/invoices") {
		t.Fatal("path should be stale after Invalidate")
	}
	if m.Stale("/dashboard/customers") {
		t.Error("other paths should be unaffected")
	}

	m.Reset("/dashboard/invoices")
	if m.Stale("/dashboard/invoices") {
		t.Error("path should be fresh after Reset")
	}
}

func TestMemory_ConcurrentInvalidate(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Invalidate("/dashboard/invoices")
			_ = m.Stale("/dashboard/invoices")
		}()
	}
	wg.Wait()
	if !m.Stale("/dashboard/invoices") {
		t.Error("path should be stale")
	}
}
