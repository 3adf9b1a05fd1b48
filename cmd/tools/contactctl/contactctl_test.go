package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeBackend(t *testing.T, createStatus int, createBody string, gotBody *map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/contacts", func(w http.ResponseWriter, r *http.Request) {
		if gotBody != nil {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, gotBody)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(createStatus)
		_, _ = io.WriteString(w, createBody)
	})
	mux.HandleFunc("GET /api/contacts", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"c-1","name":"Arjun","email":"arjun@example.com","phone":"","experience":"intermediate","message":"","status":"new","createdAt":"2024-05-01T10:00:00Z"}]`)
	})
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":"healthy","message":"API is running successfully","database":"connected"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSubmitPrintsSuccess(t *testing.T) {
	var body map[string]string
	srv := fakeBackend(t, http.StatusCreated, `{"success":true,"message":"Thanks!"}`, &body)

	out, err := execute(t, "--backend", srv.URL, "submit",
		"--name", "Arjun", "--email", "arjun@example.com",
		"--experience", "intermediate", "--session-type", "online", "--message", "Want lessons")
	require.NoError(t, err)

	assert.Contains(t, out, "Message Sent Successfully!")
	assert.Contains(t, out, "Thanks!")
	assert.Equal(t, "Arjun", body["name"])
	assert.Equal(t, "online", body["sessionType"])
}

func TestSubmitReportsRejection(t *testing.T) {
	srv := fakeBackend(t, http.StatusUnprocessableEntity, `{"detail":"Invalid email"}`, nil)

	out, err := execute(t, "--backend", srv.URL, "submit", "--name", "Arjun", "--email", "arjun@")
	assert.ErrorIs(t, err, errSubmitFailed)
	assert.Contains(t, out, "Failed to Send Message")
	assert.Contains(t, out, "Invalid email")
}

func TestSubmitRequiresNameAndEmail(t *testing.T) {
	srv := fakeBackend(t, http.StatusCreated, `{"success":true}`, nil)

	_, err := execute(t, "--backend", srv.URL, "submit", "--name", "Arjun")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	srv := fakeBackend(t, http.StatusCreated, `{"success":true}`, nil)

	out, err := execute(t, "--backend", srv.URL, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "CREATED")
	assert.Contains(t, out, "arjun@example.com")
	assert.Contains(t, out, "intermediate")
	assert.Contains(t, out, "c-1")
}

func TestHealth(t *testing.T) {
	srv := fakeBackend(t, http.StatusCreated, `{"success":true}`, nil)

	out, err := execute(t, "--backend", srv.URL, "health")
	require.NoError(t, err)
	assert.Contains(t, out, "status: healthy")
	assert.Contains(t, out, "database: connected")
}
