// Package main runs the book backend service.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/galaxybooks/bookstore-backend/internal/api"
	"github.com/galaxybooks/bookstore-backend/internal/backend"
	"github.com/galaxybooks/bookstore-backend/internal/server"
	"github.com/galaxybooks/bookstore-backend/internal/service"
	"github.com/galaxybooks/bookstore-backend/pkg/config"
	"github.com/galaxybooks/bookstore-backend/pkg/logging"
	"github.com/galaxybooks/bookstore-backend/pkg/middleware"
)

var configFile = flag.String("config", "configs/book-service.yaml", "Path to configuration file")

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

	logger.Info("Starting book service", zap.String("address", cfg.Server.Address()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := backend.New(ctx, cfg)
	cancel()
	if err != nil {
		logger.Fatal("Failed to initialize storage backend", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	services := service.NewServices(store, logger)
	handlers := api.NewHandlers(services, logger)

	router, guarded := server.NewRouter(cfg, logger, server.Options{
		Auth: middleware.AuthConfig{
			AllowedClientTypes: []string{
				middleware.ClientWeb,
				middleware.ClientIOS,
				middleware.ClientAndroid,
			},
			TrustInternal: true,
		},
	})
	handlers.RegisterBookRoutes(guarded)

	if err := server.Run(cfg, router, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
