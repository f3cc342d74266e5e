package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/peacematcher/assistant-api/assistant"
	"github.com/peacematcher/assistant-api/catalog"
	"github.com/peacematcher/assistant-api/chat"
	"github.com/peacematcher/assistant-api/config"
	"github.com/peacematcher/assistant-api/data"
	"github.com/peacematcher/assistant-api/logging"
	"github.com/peacematcher/assistant-api/scheduler"
	"github.com/peacematcher/assistant-api/server"
)

func main() {
	// .env is optional, real deployments use environment variables
	if err := godotenv.Load(); err != nil {
		logging.Debug("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogDir)

	store := data.NewContainer()
	store.SetServerStartTime(time.Now())

	catalogScheduler := scheduler.NewScheduler(store, catalog.Load, cfg.CatalogFreshness)
	if err := catalogScheduler.Start(); err != nil {
		logging.Error("Failed to load medicine catalog", "error", err)
		os.Exit(1)
	}
	defer catalogScheduler.Stop()

	aiConfig := assistant.DefaultConfig()
	aiConfig.APIKey = cfg.AIAPIKey
	if cfg.AIBaseURL != "" {
		aiConfig.BaseURL = cfg.AIBaseURL
	}
	if cfg.AIModel != "" {
		aiConfig.Model = cfg.AIModel
	}

	gateway, err := assistant.NewGateway(aiConfig, store)
	if err != nil {
		logging.Error("Failed to initialize AI gateway", "error", err)
		os.Exit(1)
	}

	chatService := chat.NewService(store, gateway)

	srv := server.NewServer(cfg, store, chatService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
}
