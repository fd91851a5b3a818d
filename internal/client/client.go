// Package client is the frontend-side HTTP client for the items API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/celery8911/nest-aws/internal/app/domain/github"
	"github.com/celery8911/nest-aws/internal/app/domain/item"
	"github.com/celery8911/nest-aws/internal/app/services/health"
)

// APIError is a non-2xx response decoded from the API's error envelope.
type APIError struct {
	StatusCode int
	Message    string
	Hint       string
}

func (e *APIError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Hint)
	}
	return e.Message
}

// Client calls one backend base URL. The base URL may be swapped at runtime
// to redirect calls between deployments.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a client for the given base URL.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// SetBaseURL redirects subsequent calls to a different backend.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// BaseURL returns the backend currently in use.
func (c *Client) BaseURL() string { return c.baseURL }

// ListItems fetches all items, newest first.
func (c *Client) ListItems(ctx context.Context) ([]item.Item, error) {
	var items []item.Item
	if err := c.do(ctx, http.MethodGet, "/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem stores a new item and returns it with server-assigned fields.
func (c *Client) CreateItem(ctx context.Context, title, content string) (item.Item, error) {
	var created item.Item
	err := c.do(ctx, http.MethodPost, "/items", item.CreateInput{Title: title, Content: content}, &created)
	return created, err
}

// DeleteItem removes the item with the given id and returns it.
func (c *Client) DeleteItem(ctx context.Context, id int64) (item.Item, error) {
	var removed item.Item
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/items/%d", id), nil, &removed)
	return removed, err
}

// Profile fetches the server's GitHub profile.
func (c *Client) Profile(ctx context.Context) (github.Profile, error) {
	var profile github.Profile
	err := c.do(ctx, http.MethodGet, "/github/me", nil, &profile)
	return profile, err
}

// Health probes the backend's health endpoint.
func (c *Client) Health(ctx context.Context) (health.Status, error) {
	var status health.Status
	err := c.do(ctx, http.MethodGet, "/", nil, &status)
	return status, err
}

func (c *Client) do(ctx context.Context, method, path string, body, target interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.StatusCode, raw)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Hint    string `json:"hint"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		apiErr.Message = envelope.Error
		if apiErr.Message == "" {
			apiErr.Message = envelope.Message
		}
		apiErr.Hint = envelope.Hint
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("request failed with status %d", status)
	}
	return apiErr
}
