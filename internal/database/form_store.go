package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"aistudio-backend/internal/models"
)

var ErrUpdateConflict = errors.New("form state changed concurrently, giving up")

// UpdateFunc receives the stored state (nil when absent) and returns the state
// to write back. Returning nil leaves the stored state untouched.
type UpdateFunc func(current *models.FormState) (*models.FormState, error)

// FormStore keeps per-form view state and the in-flight guard of each form
// instance. Entries expire after the store's TTL.
type FormStore interface {
	Load(ctx context.Context, key string) (*models.FormState, error)
	Update(ctx context.Context, key string, fn UpdateFunc) (*models.FormState, error)
	// Acquire marks key as having a call in flight. It reports false when a
	// call is already outstanding.
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// maxSweepInterval bounds how long expired entries of abandoned sessions
// stay in memory.
const maxSweepInterval = time.Minute

type memoryEntry struct {
	state     *models.FormState
	expiresAt time.Time
}

// MemoryFormStore is a FormStore local to the process.
type MemoryFormStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	states map[string]memoryEntry
	locks  map[string]time.Time
	now    func() time.Time

	nextSweep time.Time
}

func NewMemoryFormStore(ttl time.Duration) *MemoryFormStore {
	return &MemoryFormStore{
		ttl:    ttl,
		states: make(map[string]memoryEntry),
		locks:  make(map[string]time.Time),
		now:    time.Now,
	}
}

func (s *MemoryFormStore) Load(_ context.Context, key string) (*models.FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(key), nil
}

func (s *MemoryFormStore) Update(_ context.Context, key string, fn UpdateFunc) (*models.FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	current := s.loadLocked(key)
	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return current, nil
	}
	s.states[key] = memoryEntry{state: clone(next), expiresAt: s.expiry()}
	return clone(next), nil
}

func (s *MemoryFormStore) Acquire(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	if exp, ok := s.locks[key]; ok && !s.expired(exp) {
		return false, nil
	}
	s.locks[key] = s.expiry()
	return true, nil
}

func (s *MemoryFormStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.locks, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryFormStore) loadLocked(key string) *models.FormState {
	entry, ok := s.states[key]
	if !ok {
		return nil
	}
	if s.expired(entry.expiresAt) {
		delete(s.states, key)
		return nil
	}
	return clone(entry.state)
}

// sweepLocked drops every expired state and guard, at most once per sweep
// interval. Writes trigger it so keys that are never read again are freed.
func (s *MemoryFormStore) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	now := s.now()
	if now.Before(s.nextSweep) {
		return
	}
	for key, entry := range s.states {
		if s.expired(entry.expiresAt) {
			delete(s.states, key)
		}
	}
	for key, exp := range s.locks {
		if s.expired(exp) {
			delete(s.locks, key)
		}
	}
	s.nextSweep = now.Add(min(s.ttl, maxSweepInterval))
}

// Len reports how many form states are held, expired or not.
func (s *MemoryFormStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

func (s *MemoryFormStore) expiry() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(s.ttl)
}

func (s *MemoryFormStore) expired(at time.Time) bool {
	return !at.IsZero() && !s.now().Before(at)
}

func clone(state *models.FormState) *models.FormState {
	if state == nil {
		return nil
	}
	out := *state
	if state.Notice != nil {
		notice := *state.Notice
		out.Notice = &notice
	}
	return &out
}
