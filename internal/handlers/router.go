package handlers

import (
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/bill_tracker/internal/core/ports/services"
	"github.com/SscSPs/bill_tracker/internal/middleware"
	"github.com/SscSPs/bill_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the global middleware and all routes.
func NewRouter(cfg *config.Config, logger *slog.Logger, services *portssvc.ServiceContainer) (*gin.Engine, error) {
	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	if cfg.RateLimit != "" {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			return nil, err
		}
		r.Use(middleware.RateLimit(limiter))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	RegisterRoutes(r, cfg, services)
	return r, nil
}
