// Package config loads application configuration from the environment.
package config

import (
	"strings"

	"github.com/joeshaw/envdecode"
)

// Config captures every environment knob the application reads. A missing
// GITHUB_TOKEN or DATABASE_URL is a degraded mode, not a startup failure:
// the health check keeps working and only the dependent operations fail.
type Config struct {
	Port int `env:"PORT,default=3000"`

	// DatabaseURL is the postgres connection string. When empty the
	// application falls back to the transient in-memory store.
	DatabaseURL string `env:"DATABASE_URL"`

	GitHubToken   string `env:"GITHUB_TOKEN"`
	GitHubBaseURL string `env:"GITHUB_API_URL,default=https://api.github.com"`

	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS,default=*"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`

	RateLimitRPS   int `env:"RATE_LIMIT_RPS,default=50"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST,default=100"`
}

// Load decodes the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CORSOrigins returns the configured allowed origins as a slice.
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
