package store

import (
	"sync"
)

// Status is the request-status tag carried by every cache slot.
type Status string

const (
	// StatusIdle means no fetch has been issued yet
	StatusIdle Status = "idle"
	// StatusLoading means a fetch is in flight
	StatusLoading Status = "loading"
	// StatusSucceeded means the slot holds the last server response
	StatusSucceeded Status = "succeeded"
	// StatusFailed means the last fetch failed; items are kept
	StatusFailed Status = "failed"
)

// Collection caches the last-known server list for one entity type
// together with its request status and last error. Setters are the
// only way to mutate it; each is a single state transition under the
// lock.
type Collection[T any] struct {
	mu     sync.Mutex
	items  []T
	status Status
	err    string
	idOf   func(T) int64
}

// NewCollection creates an empty collection in the idle state. idOf
// extracts the server-assigned id used by ReplaceByID and RemoveByID.
func NewCollection[T any](idOf func(T) int64) *Collection[T] {
	return &Collection[T]{
		status: StatusIdle,
		idOf:   idOf,
	}
}

// Get returns a snapshot of the cached items with the slot's status and
// last error. The returned slice is a copy; callers may not mutate
// cache contents through it.
func (c *Collection[T]) Get() ([]T, Status, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items, c.status, c.err
}

// SetLoading marks a fetch in flight. Previously cached items are kept
// so consumers can keep rendering stale data during a refetch.
func (c *Collection[T]) SetLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = StatusLoading
	c.err = ""
}

// SetSucceeded replaces the cached items wholesale with the server
// response. An empty response is a valid success and clears stale
// items.
func (c *Collection[T]) SetSucceeded(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	c.status = StatusSucceeded
	c.err = ""
}

// SetFailed records a fetch failure. Previously cached items are kept;
// a failed refresh must not blank the screen.
func (c *Collection[T]) SetFailed(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = StatusFailed
	c.err = msg
}

// Append adds a freshly created entity to the end of the cached list.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// ReplaceByID swaps the cached entry with the given id for the new
// value, in place. A missing id is a no-op, not an error: this cache
// may simply not hold the entity.
func (c *Collection[T]) ReplaceByID(id int64, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			return true
		}
	}
	return false
}

// UpdateByID applies fn to the cached entry with the given id, in
// place. A missing id is a no-op.
func (c *Collection[T]) UpdateByID(id int64, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			fn(&c.items[i])
			return true
		}
	}
	return false
}

// RemoveByID deletes the cached entry with the given id, preserving
// the order of the remaining entries. A missing id is a no-op.
func (c *Collection[T]) RemoveByID(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Reset returns the collection to its initial empty idle state.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.status = StatusIdle
	c.err = ""
}

// Single caches at most one entity, replaced wholesale on every fetch.
type Single[T any] struct {
	mu     sync.Mutex
	value  *T
	status Status
	err    string
}

// NewSingle creates an empty single-entity slot in the idle state.
func NewSingle[T any]() *Single[T] {
	return &Single[T]{status: StatusIdle}
}

// Get returns a copy of the cached value (nil when empty) with the
// slot's status and last error.
func (s *Single[T]) Get() (*T, Status, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value == nil {
		return nil, s.status, s.err
	}
	v := *s.value
	return &v, s.status, s.err
}

// SetLoading marks a fetch in flight, keeping the previous value.
func (s *Single[T]) SetLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusLoading
	s.err = ""
}

// Set replaces the cached value wholesale. A nil value empties the
// slot while still counting as a success.
func (s *Single[T]) Set(value *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == nil {
		s.value = nil
	} else {
		v := *value
		s.value = &v
	}
	s.status = StatusSucceeded
	s.err = ""
}

// SetFailed records a fetch failure, keeping the previous value.
func (s *Single[T]) SetFailed(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusFailed
	s.err = msg
}

// Clear returns the slot to its initial empty idle state.
func (s *Single[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = nil
	s.status = StatusIdle
	s.err = ""
}
