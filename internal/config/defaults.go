package config

import (
	_ "embed"
)

//go:embed defaults/bridge.yaml
var defaultBridgeYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			DefaultSize: 0,
			Seed:        0,
		},
		Display: DisplayConfig{
			SuccessMark: "O",
			FailureMark: "X",
			UpColor:     "6",
			DownColor:   "5",
			FailColor:   "9",
		},
		Storage: StorageConfig{
			DBPath: "~/.bridge/results.db",
		},
		Server: ServerConfig{
			Address:            ":23235",
			HostKeyPath:        "",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
