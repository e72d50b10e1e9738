// Package random builds math/rand generators that several goroutines can
// share. Event handlers run on their own goroutines, so any generator held
// by a long-lived component goes through here.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// lockedSource serializes access to an underlying source, the same way the
// top-level math/rand functions guard theirs.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	n := s.src.Int63()
	s.mu.Unlock()
	return n
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	n := s.src.Uint64()
	s.mu.Unlock()
	return n
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	s.src.Seed(seed)
	s.mu.Unlock()
}

// New returns a seeded generator backed by a locked source. Rand.Read is
// not covered by the source lock; callers stick to the numeric methods.
func New(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed).(rand.Source64)})
}

// NewTime is New seeded from the wall clock.
func NewTime() *rand.Rand {
	return New(time.Now().UnixNano())
}
