// Package config provides YAML-based configuration loading with
// environment overrides for the tui2048 commands.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TUI2048_"

// Config contains all application settings.
type Config struct {
	DBPath   string `yaml:"db_path" env:"DB_PATH"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	Player   string `yaml:"player" env:"PLAYER"`   // Name stored with local scores
	Variant  string `yaml:"variant" env:"VARIANT"` // Preset started by `play` without arguments

	SSH   SSHConfig   `yaml:"ssh" envPrefix:"SSH_"`
	Share ShareConfig `yaml:"share" envPrefix:"SHARE_"`

	// Source is the file the settings were read from, or "embedded".
	Source string `yaml:"-"`
}

// SSHConfig configures the `serve` command.
type SSHConfig struct {
	Address     string        `yaml:"address" env:"ADDRESS"`
	HostKeyPath string        `yaml:"host_key_path" env:"HOST_KEY_PATH"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`
}

// ShareConfig configures the game over share message.
type ShareConfig struct {
	URL      string `yaml:"url" env:"URL"`
	Template string `yaml:"template" env:"TEMPLATE"`
	Locale   string `yaml:"locale" env:"LOCALE"`
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}
