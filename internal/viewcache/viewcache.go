// Package viewcache tracks staleness of cached view renderings by logical path.
package viewcache

import "sync"

// Invalidator marks cached renderings of a logical view path stale.
type Invalidator interface {
	Invalidate(path string)
}

// Memory is an in-process Invalidator that records stale paths until a
// renderer resets them. Safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	stale map[string]bool
}

// NewMemory returns an empty in-memory view cache tracker.
func NewMemory() *Memory {
	return &Memory{stale: map[string]bool{}}
}

// Invalidate marks every cached rendering of path stale.
func (m *Memory) Invalidate(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stale[path] = true
}

// Stale reports whether path has been invalidated since its last Reset.
func (m *Memory) Stale(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stale[path]
}

// Reset clears the stale mark for path, typically after re-rendering it.
func (m *Memory) Reset(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stale, path)
}
