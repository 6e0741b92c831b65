package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vkorchagin/matchref/internal/analysis"
	"github.com/vkorchagin/matchref/internal/api"
	"github.com/vkorchagin/matchref/internal/pkg/config"
	"github.com/vkorchagin/matchref/internal/pkg/logging"
	"github.com/vkorchagin/matchref/internal/pkg/storage"
	"github.com/vkorchagin/matchref/internal/source"
)

const defaultConfigPath = "configs/production.yaml"

func main() {
	if err := run(); err != nil {
		slog.Error("Resolver service failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", defaultConfigPath, "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.SetupLogger(&cfg.Logging, "resolver-service")
	slog.Info("Config loaded", "path", *configPath)

	src, err := source.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to build page source: %w", err)
	}
	analyzer := analysis.NewAnalyzer(src, cfg)

	var facts *storage.PostgresFactStorage
	if cfg.Postgres.DSN != "" {
		facts, err = storage.NewPostgresFactStorage(&cfg.Postgres)
		if err != nil {
			return fmt.Errorf("failed to init fact storage: %w", err)
		}
		defer facts.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := api.NewServer(analyzer, facts)
	return api.Run(ctx, &cfg.Service, srv.Router())
}
