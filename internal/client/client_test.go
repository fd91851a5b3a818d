package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/celery8911/nest-aws/internal/app"
	"github.com/celery8911/nest-aws/internal/app/httpapi"
	"github.com/celery8911/nest-aws/internal/app/storage/memory"
	"github.com/celery8911/nest-aws/internal/config"
	"github.com/celery8911/nest-aws/pkg/logger"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	application, err := app.New(app.Options{
		Config: &config.Config{
			GitHubBaseURL:      "http://127.0.0.1:0",
			CORSAllowedOrigins: "*",
			LogLevel:           "error",
			RateLimitRPS:       100,
			RateLimitBurst:     100,
		},
		Stores: app.Stores{Items: memory.New()},
		Log:    logger.New(logger.LoggingConfig{Level: "error"}),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(httpapi.NewHandler(application, application.Log()))
	t.Cleanup(srv.Close)
	return srv
}

func TestItemRoundTrip(t *testing.T) {
	srv := newBackend(t)
	c := New(srv.URL, srv.Client())
	ctx := context.Background()

	created, err := c.CreateItem(ctx, "hello", "world")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "hello", created.Title)

	items, err := c.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)

	removed, err := c.DeleteItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	items, err = c.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHealth(t *testing.T) {
	srv := newBackend(t)
	c := New(srv.URL, srv.Client())

	status, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Status)
	assert.NotEmpty(t, status.Timestamp)
}

func TestAPIErrorDecoding(t *testing.T) {
	srv := newBackend(t)
	c := New(srv.URL, srv.Client())
	ctx := context.Background()

	// Validation failure carries the server's message.
	_, err := c.CreateItem(ctx, "", "")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)

	// The profile proxy is unavailable without a configured token; the hint
	// from the error envelope surfaces in the client error.
	_, err = c.Profile(ctx)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Hint)
	assert.Contains(t, apiErr.Error(), apiErr.Hint)

	_, err = c.DeleteItem(ctx, 12345)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestDecodeAPIErrorFallbacks(t *testing.T) {
	apiErr := decodeAPIError(http.StatusBadGateway, []byte("plain text failure"))
	assert.Equal(t, "plain text failure", apiErr.Message)

	apiErr = decodeAPIError(http.StatusBadGateway, nil)
	assert.Equal(t, "request failed with status 502", apiErr.Message)

	apiErr = decodeAPIError(http.StatusUnauthorized, []byte(`{"message":"Bad credentials"}`))
	assert.Equal(t, "Bad credentials", apiErr.Message)
}

func TestSetBaseURL(t *testing.T) {
	c := New("http://a.example.test/", nil)
	assert.Equal(t, "http://a.example.test", c.BaseURL())

	c.SetBaseURL("http://b.example.test/")
	assert.Equal(t, "http://b.example.test", c.BaseURL())
}
