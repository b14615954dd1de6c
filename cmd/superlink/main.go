package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fedlink/fedlink/internal/shared/config"
	"github.com/fedlink/fedlink/internal/shared/logging"
	grpcapi "github.com/fedlink/fedlink/internal/superlink/api/grpc"
	"github.com/fedlink/fedlink/internal/superlink/api/rest"
	"github.com/fedlink/fedlink/internal/superlink/state"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.LoadSuperLink(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)
	linkState := state.NewInMemoryState()

	grpcServer := grpcapi.NewServer(cfg.GRPC, linkState, logger)
	go func() {
		if err := grpcServer.Start(); err != nil {
			logger.Fatal("gRPC server error", "error", err)
		}
	}()

	mux := http.NewServeMux()
	rest.NewAPI(linkState, logger).RegisterRoutes(mux)

	restServer := &http.Server{
		Addr:         cfg.REST.Addr,
		Handler:      rest.LoggingMiddleware(logger, mux),
		ReadTimeout:  cfg.REST.ReadTimeout,
		WriteTimeout: cfg.REST.WriteTimeout,
		IdleTimeout:  cfg.REST.IdleTimeout,
	}
	go func() {
		logger.Info("Status API server listening", "addr", cfg.REST.Addr)
		if err := restServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Status API server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down superlink")

	// Give the status API 30 seconds to finish serving ongoing requests.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := restServer.Shutdown(ctx); err != nil {
		logger.Error("Status API forced to shutdown", "error", err)
	}
	grpcServer.Stop()

	logger.Info("Superlink stopped")
}
