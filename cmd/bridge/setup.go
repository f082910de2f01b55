package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
	"github.com/vovakirdan/tui-bridge/internal/config"
	"github.com/vovakirdan/tui-bridge/internal/random"
	"github.com/vovakirdan/tui-bridge/internal/storage"
)

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger creates the stderr logger at the configured level.
func newLogger(cfg config.Config, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// newMaker creates a bridge maker from the configured seed.
func newMaker(cfg config.Config, logger *log.Logger) (*bridge.Maker, error) {
	gen, err := random.NewGeneratorFromConfig(cfg.Game.Seed)
	if err != nil {
		return nil, err
	}
	logger.Debug("random source ready", "seed", gen.Seed())
	return bridge.NewMaker(gen), nil
}

// openStore opens the results database. A failure is logged and the game
// continues without recording results.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}
