// Package api implements the client for the remote record service: a JSON
// REST endpoint exposing list/create/update/delete for user records.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/siddharthpandey07/UserManage/internal/apperror"
	"github.com/siddharthpandey07/UserManage/internal/logging"
	"github.com/siddharthpandey07/UserManage/internal/models"
)

// Client is the remote record service as seen by the rest of the client.
// Every mutation returns the server's authoritative representation.
type Client interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	UpdateUser(ctx context.Context, id int64, u models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// errorPayload is the JSON error shape produced by the record service.
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HTTPClient talks JSON over HTTP. No per-call timeout is set: in-flight
// calls resolve whenever the server answers, and only notification
// visibility is timed.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     log,
	}
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/users", u, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, u models.User) (models.User, error) {
	var updated models.User
	path := fmt.Sprintf("/users/%d", id)
	if err := c.do(ctx, http.MethodPut, path, u, &updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}

// do issues one request and decodes the response into out (when non-nil).
// Transport failures wrap apperror.ErrUnavailable; non-success statuses are
// mapped to the matching apperror sentinel with the server's message when
// one was sent.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return apperror.Unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(ctx, method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) statusError(ctx context.Context, method, path string, resp *http.Response) error {
	message := fmt.Sprintf("%s %s: unexpected status %s", method, path, resp.Status)

	var payload errorPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		message = payload.Message
	}

	c.log.Warn(ctx, "request rejected",
		"method", method, "path", path, "status", resp.StatusCode, "message", message)

	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = apperror.ErrValidation
	case http.StatusNotFound:
		sentinel = apperror.ErrNotFound
	default:
		sentinel = apperror.ErrInternal
	}
	return &apperror.AppError{Err: sentinel, Message: message}
}
