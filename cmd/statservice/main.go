package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"gigwork_backend/internal/client"
	"gigwork_backend/internal/config"
	"gigwork_backend/internal/logger"
	"gigwork_backend/internal/middleware"
	"gigwork_backend/internal/stats"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	apiURL := cfg.Stats.APIURL
	if apiURL == "" {
		apiURL = fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	}

	apiClient, err := client.New(apiURL, cfg.Stats.Token)
	if err != nil {
		logger.Fatal("Invalid stats API address", "error", err, "api_url", apiURL)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	poller := stats.NewPoller(apiClient, cfg.PollInterval())
	go poller.Run(ctx)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	stats.NewHandler(poller).RegisterRoutes(router)

	address := fmt.Sprintf("%s:%d", cfg.Stats.ListenHost, cfg.Stats.ListenPort)
	logger.Info("Stat service starting", "address", address, "api_url", apiURL)
	if err := router.Run(address); err != nil {
		logger.Fatal("Stat service startup error", "error", err)
	}
}
