package status

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/venturechess/portfolio/backend/internal/model/status"
)

// Service records legacy client status checks.
type Service struct {
	store status.Store
	now   func() time.Time
}

func NewService(store status.Store) *Service {
	return &Service{store: store, now: func() time.Time { return time.Now().UTC() }}
}

// Create stores a check for clientName.
func (s *Service) Create(ctx context.Context, clientName string) (status.Check, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return status.Check{}, status.ErrClientNameRequired
	}

	check := status.Check{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.now(),
	}
	if err := s.store.SaveStatusCheck(ctx, check); err != nil {
		return status.Check{}, err
	}
	return check, nil
}

// List returns up to status.MaxList checks.
func (s *Service) List(ctx context.Context) ([]status.Check, error) {
	items, err := s.store.ListStatusChecks(ctx, status.MaxList)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []status.Check{}
	}
	return items, nil
}
