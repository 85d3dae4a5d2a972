// Package main runs the web gateway. Responses pass through to web
// clients unmodified.
package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/galaxybooks/bookstore-backend/internal/gateway"
	"github.com/galaxybooks/bookstore-backend/internal/server"
	"github.com/galaxybooks/bookstore-backend/pkg/config"
	"github.com/galaxybooks/bookstore-backend/pkg/logging"
	"github.com/galaxybooks/bookstore-backend/pkg/middleware"
)

var configFile = flag.String("config", "configs/web-bff.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting web BFF",
		zap.String("address", cfg.Server.Address()),
		zap.String("book_upstream", cfg.Upstream.BookServiceURL),
		zap.String("customer_upstream", cfg.Upstream.CustomerServiceURL),
	)

	gw, err := gateway.New(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize gateway", zap.Error(err))
	}

	router, guarded := server.NewRouter(cfg, logger, server.Options{
		Auth: middleware.AuthConfig{
			AllowedClientTypes: []string{middleware.ClientWeb},
		},
		RateLimit: middleware.NewRateLimiter(cfg.RateLimit, logger),
	})
	gw.RegisterRoutes(guarded, gateway.Transforms{})

	if err := server.Run(cfg, router, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
