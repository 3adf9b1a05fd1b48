package status

import (
	"context"
	"errors"
	"sync"
	"time"
)

// MaxList caps how many status checks a listing returns.
const MaxList = 1000

var ErrClientNameRequired = errors.New("client_name is required")

// Check records that a client pinged the API.
type Check struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// Store persists status checks.
type Store interface {
	SaveStatusCheck(ctx context.Context, c Check) error
	ListStatusChecks(ctx context.Context, limit int) ([]Check, error)
}

// MemoryStore implements Store in memory, in insertion order.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Check
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveStatusCheck(_ context.Context, c Check) error {
	s.mu.Lock()
	s.items = append(s.items, c)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ListStatusChecks(_ context.Context, limit int) ([]Check, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]Check(nil), s.items...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
