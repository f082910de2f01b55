// Package config provides YAML-based configuration loading for the bridge
// game: default bridge size and seed, display marks and colors, storage,
// SSH server and logging settings.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
)

// Config contains all configuration for the bridge game.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines how new games are set up.
type GameConfig struct {
	DefaultSize int   `yaml:"default_size"` // 0 = ask the player
	Seed        int64 `yaml:"seed"`         // 0 = random
}

// DisplayConfig defines how the bridge map is drawn.
type DisplayConfig struct {
	SuccessMark string `yaml:"success_mark"`
	FailureMark string `yaml:"failure_mark"`
	UpColor     string `yaml:"up_color"`
	DownColor   string `yaml:"down_color"`
	FailColor   string `yaml:"fail_color"`
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	if c.Game.DefaultSize != 0 {
		if err := bridge.ValidateSize(c.Game.DefaultSize); err != nil {
			return fmt.Errorf("config: game.default_size: %w", err)
		}
	}
	if err := validateMark("display.success_mark", c.Display.SuccessMark); err != nil {
		return err
	}
	if err := validateMark("display.failure_mark", c.Display.FailureMark); err != nil {
		return err
	}
	if c.Display.SuccessMark == c.Display.FailureMark {
		return fmt.Errorf("config: display marks must differ, both are %q", c.Display.SuccessMark)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: server.idle_timeout_minutes must not be negative, got %d", c.Server.IdleTimeoutMinutes)
	}
	return nil
}

// validateMark checks that a map mark is a single character so columns line up.
func validateMark(field, mark string) error {
	if utf8.RuneCountInString(mark) != 1 {
		return fmt.Errorf("config: %s must be a single character, got %q", field, mark)
	}
	return nil
}
