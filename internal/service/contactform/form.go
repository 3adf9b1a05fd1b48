package contactform

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/venturechess/portfolio/backend/internal/client/backend"
	"github.com/venturechess/portfolio/backend/internal/model/contact"
)

var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Submitter sends one submission to the backend collaborator.
type Submitter interface {
	CreateContact(ctx context.Context, sub contact.Submission) (backend.CreateResult, error)
}

// Form holds one visitor's contact form: the field values, the in-flight
// flag gating the submit control, and the last unread notification.
type Form struct {
	submitter Submitter
	logger    *zap.Logger

	mu     sync.Mutex
	values contact.Submission
	flash  *Notification

	submitting atomic.Bool
}

// NewForm returns an empty form bound to submitter.
func NewForm(submitter Submitter, logger *zap.Logger) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Form{submitter: submitter, logger: logger}
}

// Set updates one named field.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Set(field, value)
}

// Values returns a copy of the current field values.
func (f *Form) Values() contact.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	return f.submitting.Load()
}

// Submit sends the current values once. While a previous call is still in
// flight it returns ErrSubmitInFlight and does nothing else.
//
// On success the fields are reset; on any failure they are kept so the
// visitor can resubmit. The outcome is also kept as an unread notification.
func (f *Form) Submit(ctx context.Context) (Notification, error) {
	if !f.submitting.CompareAndSwap(false, true) {
		return Notification{}, ErrSubmitInFlight
	}
	defer f.submitting.Store(false)

	return f.send(ctx, f.Values())
}

// SubmitValues replaces every field with values and submits them, under the
// same gate as Submit: while a submission is in flight the form is left
// untouched and ErrSubmitInFlight is returned.
func (f *Form) SubmitValues(ctx context.Context, values contact.Submission) (Notification, error) {
	if !f.submitting.CompareAndSwap(false, true) {
		return Notification{}, ErrSubmitInFlight
	}
	defer f.submitting.Store(false)

	f.mu.Lock()
	f.values = values
	f.mu.Unlock()
	return f.send(ctx, values)
}

func (f *Form) send(ctx context.Context, sub contact.Submission) (Notification, error) {
	res, err := f.submitter.CreateContact(ctx, sub)

	var note Notification
	var (
		apiErr       *backend.APIError
		transportErr *backend.TransportError
	)
	switch {
	case err == nil:
		note = successNotification(res.Message)
		f.mu.Lock()
		f.values = contact.Submission{}
		f.mu.Unlock()
	case errors.As(err, &transportErr):
		f.logger.Warn("contact submission could not reach backend", zap.Error(err))
		note = connectionNotification()
	case errors.As(err, &apiErr):
		f.logger.Info("contact submission rejected",
			zap.Int("status", apiErr.StatusCode),
			zap.String("detail", apiErr.Detail))
		note = errorNotification(apiErr.UserMessage(GenericErrorMessage))
	default:
		f.logger.Error("contact submission failed", zap.Error(err))
		note = errorNotification(GenericErrorMessage)
	}

	f.mu.Lock()
	f.flash = &note
	f.mu.Unlock()
	return note, nil
}

// TakeNotification returns and clears the unread notification.
func (f *Form) TakeNotification() (Notification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.flash == nil {
		return Notification{}, false
	}
	note := *f.flash
	f.flash = nil
	return note, true
}
