package contact

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// StatusNew marks an inquiry nobody has answered yet.
const StatusNew = "new"

var ErrNotFound = errors.New("contact not found")

// Contact is a stored inquiry.
type Contact struct {
	ID string `json:"id"`
	Submission
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists inquiries for the backend API.
type Store interface {
	SaveContact(ctx context.Context, c Contact) error
	ListContacts(ctx context.Context, limit int) ([]Contact, error)
	GetContact(ctx context.Context, id string) (Contact, error)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Contact
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveContact(_ context.Context, c Contact) error {
	s.mu.Lock()
	s.items = append(s.items, c)
	s.mu.Unlock()
	return nil
}

// ListContacts returns up to limit inquiries, newest first. limit <= 0 means all.
func (s *MemoryStore) ListContacts(_ context.Context, limit int) ([]Contact, error) {
	s.mu.RLock()
	out := append([]Contact(nil), s.items...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) GetContact(_ context.Context, id string) (Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Contact{}, ErrNotFound
}
