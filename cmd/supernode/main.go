package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fedlink/fedlink/internal/clientapp"
	grpcclient "github.com/fedlink/fedlink/internal/clientapp/api/grpc"
	"github.com/fedlink/fedlink/internal/shared/config"
	"github.com/fedlink/fedlink/internal/shared/logging"

	_ "github.com/fedlink/fedlink/examples/echo"
	_ "github.com/fedlink/fedlink/examples/vectorsum"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	runID := flag.Int64("run-id", 0, "run to join")
	flag.Parse()

	cfg, err := config.LoadSuperNode(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)

	if *runID == 0 {
		logger.Fatal("The -run-id flag is required")
	}

	registry := clientapp.Default()
	manifests, err := registry.LoadBundles(cfg.Apps.Dir)
	if err != nil {
		logger.Fatal("Failed to scan app bundles", "dir", cfg.Apps.Dir, "error", err)
	}
	for _, m := range manifests {
		logger.Debug("Found app bundle", "app_id", m.AppID, "app_version", m.AppVersion, "path", m.Path)
	}

	client, err := grpcclient.NewSuperLinkClient(cfg.SuperLink.Addr, cfg.SuperLink.GRPC)
	if err != nil {
		logger.Fatal("Failed to create superlink client", "error", err)
	}

	regCtx, regCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer regCancel()

	nodeID, token, err := client.RegisterNode(regCtx, *runID)
	if err != nil {
		_ = client.Close()
		logger.Fatal("Failed to register node", "run_id", *runID, "error", err)
	}

	logger = logger.With("run_id", *runID, "node_id", nodeID)
	logger.Info("Node registered")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session := clientapp.NewSession(client, token, registry, logger)
	if err := session.Run(ctx); err != nil {
		logger.Fatal("Exchange failed", "error", err)
	}

	logger.Info("Exchange complete")
}
