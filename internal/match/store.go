package match

import (
	"sync/atomic"
)

// Store holds the current index snapshot for long-lived readers. Rebuilds
// construct a whole new Index and swap it in atomically, so a reader never
// observes a half-built table set.
type Store struct {
	current atomic.Pointer[Index]
}

// NewStore returns a store seeded with an empty index, so lookups before
// the first swap miss rather than panic.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(Build(nil))
	return s
}

// Swap publishes a freshly built index.
func (s *Store) Swap(idx *Index) {
	s.current.Store(idx)
}

// Resolve runs the query against the current snapshot.
func (s *Store) Resolve(q Query) (string, bool) {
	return s.current.Load().Resolve(q)
}

// Index returns the current snapshot.
func (s *Store) Index() *Index {
	return s.current.Load()
}
