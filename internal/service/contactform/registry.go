package contactform

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type entry struct {
	form     *Form
	lastSeen time.Time
}

// Registry keeps one Form per visitor id.
type Registry struct {
	submitter Submitter
	logger    *zap.Logger
	now       func() time.Time

	mu    sync.RWMutex
	forms map[string]*entry
}

// NewRegistry creates an empty registry whose forms submit through submitter.
func NewRegistry(submitter Submitter, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		submitter: submitter,
		logger:    logger,
		now:       time.Now,
		forms:     make(map[string]*entry),
	}
}

// Form returns the visitor's form, creating it on first use.
func (r *Registry) Form(visitorID string) *Form {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.forms[visitorID]; ok {
		e.lastSeen = now
		return e.form
	}
	e := &entry{form: NewForm(r.submitter, r.logger.With(zap.String("visitor", visitorID))), lastSeen: now}
	r.forms[visitorID] = e
	return e.form
}

// Peek returns the visitor's form without creating one.
func (r *Registry) Peek(visitorID string) (*Form, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.forms[visitorID]
	if !ok {
		return nil, false
	}
	return e.form, true
}

// Len returns the number of tracked visitors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.forms)
}

// Sweep drops forms idle for longer than maxIdle, except those in flight.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, e := range r.forms {
		if e.lastSeen.Before(cutoff) && !e.form.Submitting() {
			delete(r.forms, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle forms every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval, maxIdle time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Sweep(maxIdle); n > 0 {
				r.logger.Debug("swept idle contact forms", zap.Int("removed", n), zap.Int("remaining", r.Len()))
			}
		}
	}
}
