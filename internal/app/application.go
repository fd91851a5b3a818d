// Package app wires the domain services together.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/celery8911/nest-aws/internal/app/services/github"
	"github.com/celery8911/nest-aws/internal/app/services/health"
	"github.com/celery8911/nest-aws/internal/app/services/items"
	"github.com/celery8911/nest-aws/internal/app/storage"
	"github.com/celery8911/nest-aws/internal/app/storage/memory"
	"github.com/celery8911/nest-aws/internal/app/storage/postgres"
	"github.com/celery8911/nest-aws/internal/config"
	"github.com/celery8911/nest-aws/internal/platform/migrations"
	"github.com/celery8911/nest-aws/pkg/logger"
)

// Stores encapsulates persistence dependencies. A nil store defaults to the
// database when one is configured, otherwise to the in-memory implementation.
type Stores struct {
	Items storage.ItemStore
}

// Application ties the domain services together.
type Application struct {
	Items  *items.Service
	GitHub *github.Service
	Health *health.Service

	cfg *config.Config
	log *logger.Logger
	db  *sqlx.DB
}

// Config returns the configuration the application was built with.
func (a *Application) Config() *config.Config { return a.cfg }

// Log returns the application logger.
func (a *Application) Log() *logger.Logger { return a.log }

// Options configures application construction. Zero values get defaults.
type Options struct {
	Config     *config.Config
	Stores     Stores
	HTTPClient *http.Client
	Log        *logger.Logger
}

// New builds a fully initialised application. Database connectivity is
// established lazily: an unreachable store is logged and only store-dependent
// operations fail until it recovers, so the health check always serves.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	log := opts.Log
	if log == nil {
		log = logger.New(logger.LoggingConfig{Level: cfg.LogLevel, Format: cfg.LogFormat})
	}

	a := &Application{cfg: cfg, log: log}

	itemStore := opts.Stores.Items
	if itemStore == nil {
		itemStore = a.buildItemStore(cfg, log)
	}

	a.Items = items.New(itemStore, log.WithField("component", "items"))
	a.GitHub = github.New(opts.HTTPClient, cfg.GitHubBaseURL, cfg.GitHubToken,
		log.WithField("component", "github"))
	a.Health = health.NewService("")

	return a, nil
}

func (a *Application) buildItemStore(cfg *config.Config, log *logger.Logger) storage.ItemStore {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set; using transient in-memory store")
		return memory.New()
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Warn("invalid DATABASE_URL; using transient in-memory store")
		return memory.New()
	}
	a.db = db

	// Best effort: the schema is applied when the database is reachable.
	// Failure here must not stop the process; the health check still serves
	// and item operations fail until connectivity is restored.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := migrations.Apply(ctx, db.DB); err != nil {
		log.WithError(err).Warn("database not reachable at startup; item operations will fail until it recovers")
	} else {
		log.Info("database schema ready")
	}

	return postgres.New(db)
}

// Close releases the database handle. It is called only from the
// process-termination signal path in persistent mode; per-invocation mode
// keeps the connection open across invocations on purpose.
func (a *Application) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
