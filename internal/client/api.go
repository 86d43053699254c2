// Package client implements the dashboard's data synchronization layer: an
// HTTP API client plus one data slice per backend collection. Each slice
// keeps a local cache with loading/saving/error flags and reconciles it
// against the server after every operation. Failures never mutate the cache;
// they are recorded as a display string and the operation can simply be
// re-issued.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"adminapi/internal/model"
	"adminapi/internal/service"
)

var (
	// ErrUnauthorized means the bearer token is missing, expired or invalid.
	// The presentation layer redirects to login on this error.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the operation referenced an id the server does not
	// have.
	ErrNotFound = errors.New("not found")
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Unwrap maps the well-known statuses onto sentinel errors so callers can
// use errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// API is the HTTP transport shared by all slices. It holds the bearer token
// obtained at login; no token means every guarded call fails with
// ErrUnauthorized at the server boundary.
type API struct {
	base string
	http *http.Client

	mu    sync.RWMutex
	token string
}

// NewAPI returns an API rooted at base, e.g. "http://localhost:8080".
func NewAPI(base string) *API {
	return NewAPIWithClient(base, &http.Client{})
}

// NewAPIWithClient is NewAPI with a caller-supplied http.Client.
func NewAPIWithClient(base string, hc *http.Client) *API {
	return &API{base: base, http: hc}
}

// Login authenticates and stores the returned bearer token for all
// subsequent calls. It returns the authenticated user's profile view.
func (a *API) Login(ctx context.Context, email, password string) (model.User, error) {
	var res service.LoginResult
	err := a.do(ctx, http.MethodPost, "/auth/login",
		map[string]string{"email": email, "password": password}, &res)
	if err != nil {
		return model.User{}, err
	}

	a.mu.Lock()
	a.token = res.AccessToken
	a.mu.Unlock()

	return res.User, nil
}

// Token returns the stored bearer token, empty when not logged in.
func (a *API) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// SetToken replaces the stored bearer token, e.g. one restored from disk.
func (a *API) SetToken(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
}

// errorBody mirrors the server's standardized error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *API) get(ctx context.Context, path string, out any) error {
	return a.do(ctx, http.MethodGet, path, nil, out)
}

func (a *API) post(ctx context.Context, path string, in, out any) error {
	return a.do(ctx, http.MethodPost, path, in, out)
}

func (a *API) put(ctx context.Context, path string, in, out any) error {
	return a.do(ctx, http.MethodPut, path, in, out)
}

func (a *API) delete(ctx context.Context, path string) error {
	return a.do(ctx, http.MethodDelete, path, nil, nil)
}

func (a *API) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.base+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := a.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var eb errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil {
			apiErr.Code = eb.Error.Code
			apiErr.Message = eb.Error.Message
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
