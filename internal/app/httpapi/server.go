package httpapi

import (
	"net/http"

	app "github.com/celery8911/nest-aws/internal/app"
	"github.com/celery8911/nest-aws/internal/app/metrics"
	"github.com/celery8911/nest-aws/internal/config"
	"github.com/celery8911/nest-aws/internal/middleware"
	"github.com/celery8911/nest-aws/pkg/logger"
)

// NewServerHandler assembles the full middleware chain around the REST
// router: tracing, CORS, rate limiting, then metrics. Both deployment modes
// serve exactly this handler.
func NewServerHandler(application *app.Application, cfg *config.Config, log *logger.Logger) http.Handler {
	if log == nil {
		log = logger.NewDefault("httpapi")
	}

	handler := NewHandler(application, log)
	handler = metrics.InstrumentHandler(handler)
	handler = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, log).Handler(handler)
	handler = middleware.NewCORSMiddleware(cfg.CORSOrigins()).Handler(handler)
	handler = middleware.NewTracingMiddleware(log).Handler(handler)
	return handler
}
