package contact

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/venturechess/portfolio/backend/internal/model/contact"
)

var ErrFeedClosed = errors.New("contact feed closed")

type subscriber struct {
	events chan contact.Contact
}

// Feed fans newly stored inquiries out to subscribers. All bookkeeping happens
// on the goroutine running Run; slow subscribers miss events instead of blocking.
type Feed struct {
	register   chan *subscriber
	unregister chan *subscriber
	broadcast  chan contact.Contact
	done       chan struct{}
	buffer     int
	logger     *zap.Logger
}

// NewFeed creates a Feed whose subscribers buffer up to buffer events.
func NewFeed(buffer int, logger *zap.Logger) *Feed {
	if buffer < 1 {
		buffer = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feed{
		register:   make(chan *subscriber),
		unregister: make(chan *subscriber),
		broadcast:  make(chan contact.Contact, 64),
		done:       make(chan struct{}),
		buffer:     buffer,
		logger:     logger,
	}
}

// Run owns the subscriber set until ctx is cancelled, then closes every
// subscriber channel.
func (f *Feed) Run(ctx context.Context) error {
	subs := make(map[*subscriber]struct{})
	defer func() {
		close(f.done)
		for sub := range subs {
			close(sub.events)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case sub := <-f.register:
			subs[sub] = struct{}{}
			f.logger.Debug("feed subscriber joined", zap.Int("total", len(subs)))
		case sub := <-f.unregister:
			if _, ok := subs[sub]; ok {
				delete(subs, sub)
				close(sub.events)
			}
			f.logger.Debug("feed subscriber left", zap.Int("total", len(subs)))
		case c := <-f.broadcast:
			for sub := range subs {
				select {
				case sub.events <- c:
				default:
					f.logger.Warn("feed subscriber is slow, dropping event", zap.String("contact", c.ID))
				}
			}
		}
	}
}

// Subscribe registers a listener. The returned cancel func must be called once
// the caller stops reading; the channel is closed afterwards or when the feed stops.
func (f *Feed) Subscribe(ctx context.Context) (<-chan contact.Contact, func(), error) {
	sub := &subscriber{events: make(chan contact.Contact, f.buffer)}

	select {
	case f.register <- sub:
	case <-f.done:
		return nil, nil, ErrFeedClosed
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}

	cancel := func() {
		select {
		case f.unregister <- sub:
		case <-f.done:
		}
	}
	return sub.events, cancel, nil
}

// Publish queues c for delivery without blocking the caller.
func (f *Feed) Publish(c contact.Contact) {
	select {
	case <-f.done:
		return
	default:
	}

	select {
	case f.broadcast <- c:
	default:
		f.logger.Warn("feed broadcast queue full, dropping event", zap.String("contact", c.ID))
	}
}
