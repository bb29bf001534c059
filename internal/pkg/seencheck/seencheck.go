// Package seencheck deduplicates URLs across a run so the same link
// is only checked once, no matter how many documents carry it.
package seencheck

import (
	"sync"

	"github.com/zeebo/xxh3"
)

// Seencheck remembers the hash of every URL it has been shown.
type Seencheck struct {
	mu    sync.Mutex
	seen  map[uint64]struct{}
	count int64
}

func New() *Seencheck {
	return &Seencheck{seen: make(map[uint64]struct{})}
}

// SeencheckURL marks the URL as seen and reports whether it was new.
func (s *Seencheck) SeencheckURL(url string) (isNew bool) {
	hash := xxh3.HashString(url)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.seen[hash]; found {
		return false
	}

	s.seen[hash] = struct{}{}
	s.count++
	return true
}

// Count returns how many distinct URLs have been seen.
func (s *Seencheck) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
