// Command impactd serves the impact analysis API over an inventory store.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/api"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/config"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/logging"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/metrics"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/server"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/storage"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/validation"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (defaults apply when empty)")
	listenAddr := flag.String("listen", "", "Listen address, overrides config")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logging.NewDefaultLogger().Error("failed to load config", logging.Error(err), logging.Path(*configPath))
			os.Exit(1)
		}
		cfg = loaded
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if err := cfg.Validate(); err != nil {
		logging.NewDefaultLogger().Error("invalid configuration", logging.Error(err))
		os.Exit(1)
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	logger.Info("impactd starting",
		logging.String("listen", cfg.ListenAddr),
		logging.String("backend", cfg.Storage.Backend))

	ctx := context.Background()
	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open store", logging.Error(err))
		os.Exit(1)
	}
	defer store.Close()

	registry := metrics.NewRegistry()
	if snap, err := store.Snapshot(ctx); err == nil {
		registry.RecordSnapshot("startup", snap)
		logger.Info("inventory loaded",
			logging.Int("components", len(snap.Components)),
			logging.Int("dependencies", len(snap.Dependencies)),
			logging.Int("workflows", len(snap.Workflows)))
	}

	apiServer, err := api.NewServer(store, logger, registry)
	if err != nil {
		logger.Error("failed to build API server", logging.Error(err))
		os.Exit(1)
	}

	gs := server.NewGracefulServer(cfg.ListenAddr, apiServer.Handler(), logger)
	gs.SetReloadFunc(func() error {
		if *configPath == "" {
			return nil
		}
		reloaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		logger.SetLevel(logging.ParseLevel(reloaded.LogLevel))
		logger.Info("log level reloaded", logging.String("level", reloaded.LogLevel))
		return nil
	})

	if err := gs.Start(); err != nil {
		logger.Error("server failed", logging.Error(err))
		os.Exit(1)
	}
}

// openStore builds the configured backend. The memory backend optionally
// seeds itself from a snapshot file; the snapshot is validated before use.
func openStore(ctx context.Context, cfg config.Config, logger logging.Logger) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		return storage.NewPGStore(ctx, cfg.Storage.DatabaseURL)

	default:
		if cfg.Storage.SnapshotPath == "" {
			return storage.NewMemoryStore(), nil
		}
		snap, err := storage.ReadSnapshotFile(cfg.Storage.SnapshotPath)
		if err != nil {
			return nil, err
		}
		if err := validation.ValidateSnapshot(snap); err != nil {
			return nil, err
		}
		logger.Info("seeding memory store from snapshot", logging.Path(cfg.Storage.SnapshotPath))
		return storage.NewMemoryStoreFromSnapshot(ctx, snap)
	}
}
