package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/respicy/backend/config"
	"github.com/respicy/backend/internal/database"
	"github.com/respicy/backend/internal/logger"
	"github.com/respicy/backend/internal/server"
	"github.com/respicy/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Log.Fatalw("failed to connect to database", "error", err)
	}

	// Redis is optional: without it rate limiting and the favorites cache
	// are disabled, everything else works.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Log.Warnw("redis unavailable, continuing without cache", "error", err)
		redisClient = nil
	}

	var avatars service.AvatarStore
	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		logger.Log.Warnw("s3 unavailable, avatar uploads disabled", "error", err)
	} else {
		avatars = service.NewS3AvatarStore(s3Config)
	}

	srv := server.New(cfg, db, redisClient, avatars)

	errChan := make(chan error, 1)
	go func() {
		logger.Log.Infow("starting server", "host", cfg.ServerHost, "port", cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Log.Fatalw("server error", "error", err)
		}
	case sig := <-quit:
		logger.Log.Infow("received signal", "signal", sig.String())
	}

	logger.Log.Infow("shutting down server")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Log.Fatalw("server shutdown error", "error", err)
	}
	logger.Log.Infow("server stopped")
}
