// Package github proxies the GitHub user-info endpoint with a server-held
// credential.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/celery8911/nest-aws/internal/apperr"
	domain "github.com/celery8911/nest-aws/internal/app/domain/github"
	"github.com/celery8911/nest-aws/pkg/logger"
)

const (
	// DefaultBaseURL is the GitHub API root.
	DefaultBaseURL = "https://api.github.com"

	// userAgent is required by the GitHub API on every request.
	userAgent = "nest-aws-items-api"

	requestTimeout = 10 * time.Second

	// maxErrorBody caps how much of an upstream error payload is retained
	// for diagnostic passthrough.
	maxErrorBody = 64 << 10
)

// Service fetches the authenticated caller's GitHub profile. Each call is
// independent: no retries, no caching.
type Service struct {
	client  *http.Client
	baseURL string
	token   string
	log     *logger.Logger
}

// New constructs a proxy service. An empty token is permitted; calls will
// fail with a dependency-unavailable condition until one is configured.
func New(client *http.Client, baseURL, token string, log *logger.Logger) *Service {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = logger.NewDefault("github")
	}
	return &Service{
		client:  client,
		baseURL: baseURL,
		token:   token,
		log:     log,
	}
}

// GetProfile returns the login, name and avatar URL of the token's user. The
// rest of the upstream payload is discarded.
func (s *Service) GetProfile(ctx context.Context) (domain.Profile, error) {
	if s.token == "" {
		s.log.Warn("GITHUB_TOKEN not configured")
		return domain.Profile{}, apperr.DependencyUnavailable(
			"GitHub token not configured",
			"set GITHUB_TOKEN in the environment",
			nil,
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/user", nil)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("build github request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.WithError(err).Warn("github request failed")
		return domain.Profile{}, apperr.DependencyUnavailable(
			"cannot reach GitHub API",
			"check outbound network access from the runtime",
			err,
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("read github response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Warnf("github returned status %d", resp.StatusCode)
		return domain.Profile{}, apperr.Upstream(resp.StatusCode, body)
	}

	profile := domain.Profile{
		Login:     gjson.GetBytes(body, "login").String(),
		Name:      gjson.GetBytes(body, "name").String(),
		AvatarURL: gjson.GetBytes(body, "avatar_url").String(),
	}
	s.log.Infof("fetched GitHub profile for %s", profile.Login)
	return profile, nil
}
