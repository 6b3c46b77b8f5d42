package content

import (
	"sync/atomic"

	"github.com/nfrund/portfolio/internal/domain"
)

// Store holds the current profile snapshot. Snapshots are replaced whole and
// never modified in place, so readers need no locking.
type Store struct {
	current atomic.Pointer[domain.Profile]
}

// NewStore creates a store seeded with profile.
func NewStore(profile *domain.Profile) *Store {
	s := &Store{}
	s.current.Store(profile)
	return s
}

// Current returns the active snapshot.
func (s *Store) Current() *domain.Profile {
	return s.current.Load()
}

// Swap installs next and returns the snapshot it replaced.
func (s *Store) Swap(next *domain.Profile) *domain.Profile {
	return s.current.Swap(next)
}
