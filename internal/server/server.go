// Package server builds the shared HTTP surface of the bookstore
// services: common middleware, the unauthenticated health endpoints, and
// graceful lifecycle handling. Each service registers its own routes on
// the guarded group the builder returns.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/galaxybooks/bookstore-backend/internal/api"
	"github.com/galaxybooks/bookstore-backend/pkg/config"
	"github.com/galaxybooks/bookstore-backend/pkg/middleware"
)

// Options configures the router for one deployment.
type Options struct {
	// Auth parameterizes the authentication gate for this deployment
	Auth middleware.AuthConfig

	// RateLimit optionally throttles clients before authentication
	RateLimit *middleware.RateLimiter
}

// NewRouter creates the service router. The returned group carries the
// authentication middleware; /status and /health sit outside it and
// always answer 200.
func NewRouter(cfg *config.Config, logger *zap.Logger, opts Options) (*gin.Engine, *gin.RouterGroup) {
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	// The edge accepts browsers and apps from anywhere; nothing here is
	// cookie-authenticated.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Client-Type", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/status", api.Status)
	router.GET("/health", api.Status)

	guarded := router.Group("/")
	if opts.RateLimit != nil {
		guarded.Use(opts.RateLimit.Middleware())
	}
	guarded.Use(middleware.Auth(opts.Auth, logger))

	return router, guarded
}

// Run serves the router and blocks until SIGINT or SIGTERM, then shuts
// down gracefully.
func Run(cfg *config.Config, router *gin.Engine, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
