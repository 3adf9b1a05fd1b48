package contactform

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/venturechess/portfolio/backend/internal/client/backend"
	"github.com/venturechess/portfolio/backend/internal/model/contact"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fillArjun(t *testing.T, f *Form) {
	t.Helper()
	require.NoError(t, f.Set(contact.FieldName, "Arjun"))
	require.NoError(t, f.Set(contact.FieldEmail, "arjun@example.com"))
	require.NoError(t, f.Set(contact.FieldExperience, "intermediate"))
	require.NoError(t, f.Set(contact.FieldMessage, "Want lessons"))
}

func backendReplying(t *testing.T, status int, body string, gotBody *string) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotBody != nil {
			raw, _ := io.ReadAll(r.Body)
			*gotBody = string(raw)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return backend.New(srv.URL, backend.WithHTTPClient(srv.Client()))
}

func TestSubmitSuccessResetsFields(t *testing.T) {
	var body string
	f := NewForm(backendReplying(t, http.StatusOK, `{"success":true,"message":"Thanks!"}`, &body), nil)
	fillArjun(t, f)

	note, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"Arjun","email":"arjun@example.com","phone":"","experience":"intermediate","message":"Want lessons"}`, body)
	assert.Equal(t, KindSuccess, note.Kind)
	assert.Equal(t, "Thanks!", note.Message)
	assert.True(t, f.Values().IsZero())
	for _, field := range contact.Fields {
		v, err := f.Values().Get(field)
		require.NoError(t, err)
		assert.Equal(t, "", v, field)
	}
	assert.False(t, f.Submitting())
}

func TestSubmitServerRejectionKeepsFields(t *testing.T) {
	f := NewForm(backendReplying(t, http.StatusUnprocessableEntity, `{"detail":"Invalid email"}`, nil), nil)
	fillArjun(t, f)
	before := f.Values()

	note, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, KindError, note.Kind)
	assert.Equal(t, "Invalid email", note.Message)
	assert.Equal(t, before, f.Values())
	assert.False(t, f.Submitting())
}

func TestSubmitFailureMessagePrecedence(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"detail", http.StatusBadRequest, `{"detail":"Name too long","message":"Rejected"}`, "Name too long"},
		{"message", http.StatusInternalServerError, `{"message":"Database unavailable"}`, "Database unavailable"},
		{"generic", http.StatusServiceUnavailable, `oops`, GenericErrorMessage},
		{"success flag false", http.StatusOK, `{"success":false,"message":"Inbox full"}`, "Inbox full"},
		{"success flag false with detail", http.StatusOK, `{"success":false,"detail":"Email already registered","message":"Rejected"}`, "Email already registered"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewForm(backendReplying(t, tc.status, tc.body, nil), nil)
			fillArjun(t, f)

			note, err := f.Submit(context.Background())
			require.NoError(t, err)
			assert.Equal(t, KindError, note.Kind)
			assert.Equal(t, tc.want, note.Message)
			assert.Equal(t, "Arjun", f.Values().Name)
		})
	}
}

func TestSubmitWithoutConnectivityReportsConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f := NewForm(backend.New(url), nil)
	fillArjun(t, f)

	note, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, KindConnectionError, note.Kind)
	assert.Equal(t, ConnectionErrorMessage, note.Message)
	assert.NotEqual(t, GenericErrorMessage, note.Message)
	assert.Equal(t, "Arjun", f.Values().Name)
	assert.False(t, f.Submitting())
}

type blockingSubmitter struct {
	started chan struct{}
	release chan struct{}
	calls   int
	err     error
}

func (b *blockingSubmitter) CreateContact(ctx context.Context, _ contact.Submission) (backend.CreateResult, error) {
	b.calls++
	close(b.started)
	<-b.release
	if b.err != nil {
		return backend.CreateResult{}, b.err
	}
	return backend.CreateResult{Success: true, Message: "ok"}, nil
}

func TestSubmitWhileInFlightHasNoEffect(t *testing.T) {
	sub := &blockingSubmitter{started: make(chan struct{}), release: make(chan struct{})}
	f := NewForm(sub, nil)
	fillArjun(t, f)

	done := make(chan Notification, 1)
	go func() {
		note, _ := f.Submit(context.Background())
		done <- note
	}()

	<-sub.started
	assert.True(t, f.Submitting())

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(sub.release)
	select {
	case note := <-done:
		assert.Equal(t, KindSuccess, note.Kind)
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never completed")
	}

	assert.Equal(t, 1, sub.calls)
	assert.False(t, f.Submitting())
}

func TestSubmitValuesWhileInFlightLeavesFieldsUntouched(t *testing.T) {
	sub := &blockingSubmitter{
		started: make(chan struct{}),
		release: make(chan struct{}),
		err:     &backend.APIError{StatusCode: http.StatusUnprocessableEntity, Detail: "Invalid email"},
	}
	f := NewForm(sub, nil)
	arjun := contact.Submission{Name: "Arjun", Email: "arjun@example.com", Message: "Want lessons"}

	done := make(chan Notification, 1)
	go func() {
		note, _ := f.SubmitValues(context.Background(), arjun)
		done <- note
	}()

	<-sub.started
	assert.Equal(t, arjun, f.Values())

	_, err := f.SubmitValues(context.Background(), contact.Submission{})
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Equal(t, arjun, f.Values())

	close(sub.release)
	select {
	case note := <-done:
		assert.Equal(t, KindError, note.Kind)
		assert.Equal(t, "Invalid email", note.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never completed")
	}

	assert.Equal(t, arjun, f.Values())
	assert.Equal(t, 1, sub.calls)
}

type failingSubmitter struct{}

func (failingSubmitter) CreateContact(context.Context, contact.Submission) (backend.CreateResult, error) {
	return backend.CreateResult{}, errors.New("boom")
}

func TestSubmitUnexpectedErrorUsesGenericMessage(t *testing.T) {
	f := NewForm(failingSubmitter{}, nil)
	fillArjun(t, f)

	note, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, GenericErrorMessage, note.Message)
	assert.True(t, note.IsError())
}

func TestTakeNotificationIsOneShot(t *testing.T) {
	f := NewForm(backendReplying(t, http.StatusOK, `{"success":true,"message":""}`, nil), nil)

	_, ok := f.TakeNotification()
	assert.False(t, ok)

	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	note, ok := f.TakeNotification()
	require.True(t, ok)
	assert.Equal(t, DefaultSuccessMessage, note.Message)

	_, ok = f.TakeNotification()
	assert.False(t, ok)
}

func TestSetRejectsUnknownField(t *testing.T) {
	f := NewForm(failingSubmitter{}, nil)
	assert.ErrorIs(t, f.Set("rating", "1665"), contact.ErrUnknownField)
}
