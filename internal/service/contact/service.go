package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/venturechess/portfolio/backend/internal/model/contact"
)

// SuccessMessage is returned to visitors whose inquiry was stored.
const SuccessMessage = "Thank you for your message! I'll get back to you within 24 hours."

// Service accepts, stores and announces contact inquiries.
type Service struct {
	store  contact.Store
	feed   *Feed
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires the inquiry store and optional feed.
func NewService(store contact.Store, feed *Feed, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		feed:   feed,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create validates and stores a submission. Validation failures are returned
// as *contact.ValidationError (possibly joined) and nothing is stored.
func (s *Service) Create(ctx context.Context, sub contact.Submission) (contact.Contact, error) {
	sub = sub.Normalize()
	if err := sub.Validate(); err != nil {
		s.logger.Debug("contact rejected", zap.Error(err))
		return contact.Contact{}, err
	}

	c := contact.Contact{
		ID:         uuid.NewString(),
		Submission: sub,
		Status:     contact.StatusNew,
		CreatedAt:  s.now(),
	}
	if err := s.store.SaveContact(ctx, c); err != nil {
		return contact.Contact{}, err
	}

	s.logger.Info("contact stored",
		zap.String("id", c.ID),
		zap.String("experience", string(c.Experience)),
		zap.String("sessionType", string(c.SessionType)))

	if s.feed != nil {
		s.feed.Publish(c)
	}
	return c, nil
}

// List returns stored inquiries, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]contact.Contact, error) {
	items, err := s.store.ListContacts(ctx, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []contact.Contact{}
	}
	return items, nil
}

// Get loads a single inquiry.
func (s *Service) Get(ctx context.Context, id string) (contact.Contact, error) {
	return s.store.GetContact(ctx, id)
}
