// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/your-org/storefront/internal/app"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/infrastructure/cache/redis"
	"github.com/your-org/storefront/internal/infrastructure/fakestore"
	"github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/pkg/logging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg)
	logger.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// The remote catalog is the only external dependency
	var source catalog.Source = fakestore.NewClient(cfg, logger)

	// Connect to Redis when enabled; the catalog source is then wrapped
	// with a read-through payload cache.
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		conn, err := redis.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer conn.Close()

		if err := conn.Health(); err != nil {
			log.Fatalf("Redis health check failed: %v", err)
		}

		redisClient = conn.GetClient()
		source = redis.NewCachingSource(conn, source, cfg.Catalog.CacheTTL, logger)
	}

	// Wire the storefront engine
	application := app.New(cfg, logger, source)

	// Load the catalog up front so the first page view has products
	if cfg.Catalog.LoadOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalog.FetchTimeout)
		if err := application.Catalog.Load(ctx); err != nil {
			logger.WithError(err).Warn("Initial catalog load failed, continuing with empty catalog")
		}
		cancel()
	}

	// Create and start HTTP server
	server := http.NewServer(cfg, application, redisClient)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	logger.Info("Server shutdown completed")
}
