// Package backend talks to the contact backend over HTTP. The site and the
// contactctl tool both treat the backend as an opaque collaborator reachable
// only through its base URL.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/venturechess/portfolio/backend/internal/model/contact"
)

// ContactsPath is appended to the base URL for submissions.
const ContactsPath = "/api/contacts"

const maxErrorBody = 64 << 10

// Client is a thin JSON client for the contact backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New returns a Client for baseURL (scheme://host[:port][/prefix]).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateResult is the happy-path body of POST /api/contacts.
type CreateResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    contact.Contact `json:"data"`
}

// CreateContact posts one submission. A 2xx answer with success=false or any
// non-2xx answer yields *APIError; a request that never completes yields
// *TransportError.
func (c *Client) CreateContact(ctx context.Context, sub contact.Submission) (CreateResult, error) {
	payload, err := json.Marshal(sub)
	if err != nil {
		return CreateResult{}, fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ContactsPath, bytes.NewReader(payload))
	if err != nil {
		return CreateResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var body struct {
		CreateResult
		Detail json.RawMessage `json:"detail"`
	}
	status, err := c.do(req, &body)
	if err != nil {
		return CreateResult{}, err
	}
	if !body.Success {
		return body.CreateResult, &APIError{
			StatusCode: status,
			Detail:     parseDetail(body.Detail),
			Message:    body.Message,
		}
	}
	return body.CreateResult, nil
}

// ListContacts fetches stored inquiries.
func (c *Client) ListContacts(ctx context.Context) ([]contact.Contact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ContactsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var items []contact.Contact
	if _, err := c.do(req, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Health is the body of GET /api/health.
type Health struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

// Health queries the backend health endpoint.
func (c *Client) Health(ctx context.Context) (Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return Health{}, fmt.Errorf("build request: %w", err)
	}

	var h Health
	if _, err := c.do(req, &h); err != nil {
		return Health{}, err
	}
	return h, nil
}

func (c *Client) do(req *http.Request, out any) (int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &TransportError{Op: req.Method + " " + req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, newAPIError(resp.StatusCode, raw)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, &APIError{StatusCode: resp.StatusCode, Err: err}
	}
	return resp.StatusCode, nil
}
