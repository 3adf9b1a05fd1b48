package store

import (
	"context"
	"fmt"

	"github.com/venturechess/portfolio/backend/internal/config"
	"github.com/venturechess/portfolio/backend/internal/model/contact"
	"github.com/venturechess/portfolio/backend/internal/model/status"
	"github.com/venturechess/portfolio/backend/internal/store/sqlite"
)

// Store is everything the backend API persists.
type Store interface {
	contact.Store
	status.Store
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the Store selected by configuration.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemory(), nil
	case config.DriverSQLite:
		repo, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
}

// Memory keeps everything in process memory; used by tests and STORE_DRIVER=memory.
type Memory struct {
	contacts *contact.MemoryStore
	checks   *status.MemoryStore
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{
		contacts: contact.NewMemoryStore(),
		checks:   status.NewMemoryStore(),
	}
}

func (m *Memory) SaveContact(ctx context.Context, c contact.Contact) error {
	return m.contacts.SaveContact(ctx, c)
}

func (m *Memory) ListContacts(ctx context.Context, limit int) ([]contact.Contact, error) {
	return m.contacts.ListContacts(ctx, limit)
}

func (m *Memory) GetContact(ctx context.Context, id string) (contact.Contact, error) {
	return m.contacts.GetContact(ctx, id)
}

func (m *Memory) SaveStatusCheck(ctx context.Context, c status.Check) error {
	return m.checks.SaveStatusCheck(ctx, c)
}

func (m *Memory) ListStatusChecks(ctx context.Context, limit int) ([]status.Check, error) {
	return m.checks.ListStatusChecks(ctx, limit)
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() error { return nil }
