package client

import "sync"

// slice is the shared cache machinery behind every collection slice. It
// holds the cached items plus the loading/saving/error state the views bind
// to. All mutation goes through the reconcile helpers below, which enforce
// one rule: the cache only ever reflects confirmed server responses. There
// are no optimistic inserts, and a failed call leaves the items untouched.
type slice[T any] struct {
	mu      sync.RWMutex
	items   []T
	loading bool
	saving  bool
	lastErr string

	id func(T) int
}

// Items returns a copy of the cached collection.
func (s *slice[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Loading reports whether a full fetch is in flight.
func (s *slice[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Saving reports whether a mutation is in flight.
func (s *slice[T]) Saving() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saving
}

// Err returns the display message of the last failed operation, empty after
// a success.
func (s *slice[T]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Get returns the cached item with the given id, if present.
func (s *slice[T]) Get(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if s.id(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// fetchAll replaces the entire cache with the server's list. Concurrent
// fetches are allowed; the cache ends up reflecting whichever response was
// applied last.
func (s *slice[T]) fetchAll(fn func() ([]T, error)) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	items, err := fn()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.items = items
	return nil
}

// fetchOne refreshes a single cached item in place. An item the cache does
// not already hold is returned but not inserted; the list endpoint owns
// membership.
func (s *slice[T]) fetchOne(id int, fn func() (T, error)) (T, error) {
	item, err := fn()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err.Error()
		var zero T
		return zero, err
	}
	s.lastErr = ""
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = item
			break
		}
	}
	return item, nil
}

// create appends the server-confirmed record, which carries the assigned id.
func (s *slice[T]) create(fn func() (T, error)) (T, error) {
	s.mu.Lock()
	s.saving = true
	s.lastErr = ""
	s.mu.Unlock()

	item, err := fn()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if err != nil {
		s.lastErr = err.Error()
		var zero T
		return zero, err
	}
	s.items = append(s.items, item)
	return item, nil
}

// update replaces the cached item with the server's merged record.
func (s *slice[T]) update(id int, fn func() (T, error)) (T, error) {
	s.mu.Lock()
	s.saving = true
	s.lastErr = ""
	s.mu.Unlock()

	item, err := fn()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if err != nil {
		s.lastErr = err.Error()
		var zero T
		return zero, err
	}
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = item
			break
		}
	}
	return item, nil
}

// remove drops the item from the cache once the server confirms the delete.
func (s *slice[T]) remove(id int, fn func() error) error {
	s.mu.Lock()
	s.saving = true
	s.lastErr = ""
	s.mu.Unlock()

	err := fn()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}

// replaceAll swaps the whole cache for a server-confirmed collection. Used
// by operations whose response is the full list, such as saving drawn
// shapes.
func (s *slice[T]) replaceAll(fn func() ([]T, error)) ([]T, error) {
	s.mu.Lock()
	s.saving = true
	s.lastErr = ""
	s.mu.Unlock()

	items, err := fn()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if err != nil {
		s.lastErr = err.Error()
		return nil, err
	}
	s.items = items
	return items, nil
}
