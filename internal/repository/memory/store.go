// Package memory implements the repository interfaces with process-memory
// collections. This is the authoritative store of the mock backend: data lives
// exactly as long as the process, ids restart from the seed values on every
// boot, and there are no transactional guarantees across records.
package memory

// Store aggregates all in-memory collections. Construct one per process (or
// per test) and inject it; there is no package-level state.
type Store struct {
	Users    *UserStore
	Accounts *AccountStore
	Files    *FileStore
	Presets  *PresetStore
	Shapes   *ShapeStore
}

// New returns a Store with every collection empty.
func New() *Store {
	return &Store{
		Users:    &UserStore{},
		Accounts: &AccountStore{},
		Files:    &FileStore{},
		Presets:  &PresetStore{},
		Shapes:   &ShapeStore{},
	}
}

// NewSeeded returns a Store populated with the demo fixtures: the credential
// table, ten directory users, three files, and twelve preset locations. The
// shapes collection starts empty.
func NewSeeded() *Store {
	s := New()
	seed(s)
	return s
}

// nextID returns max existing id + 1, or 1 for an empty collection.
func nextID[T any](items []T, id func(T) int) int {
	next := 1
	for _, it := range items {
		if id(it) >= next {
			next = id(it) + 1
		}
	}
	return next
}
