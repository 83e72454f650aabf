package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// SourceEmbedded marks a Config that was built from the embedded defaults only.
const SourceEmbedded = "embedded"

// localConfigPath is checked relative to the working directory.
var localConfigPath = filepath.Join("configs", "config.yaml")

// dotEnvFile is read from the working directory when present.
const dotEnvFile = ".env"

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	cfg.Source = SourceEmbedded
	return cfg
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}

// Load reads the configuration file and applies environment overrides.
// Search order: customPath -> ~/.tui2048/config.yaml -> ./configs/config.yaml -> embedded default.
// Environment variables, including those from ./.env, are applied last.
// A file only needs the keys it changes; the rest keep their default values.
// A customPath that cannot be read or parsed is an error; the other
// locations are skipped when missing.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		if err := mergeFile(&cfg, customPath); err != nil {
			return cfg, err
		}
	} else {
		for _, path := range []string{userConfigPath("config.yaml"), localConfigPath} {
			if path == "" {
				continue
			}
			err := mergeFile(&cfg, path)
			if err == nil {
				break
			}
			if !errors.Is(err, os.ErrNotExist) {
				return cfg, err
			}
		}
	}

	// Variables already set in the environment win over .env entries.
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("config: read %s: %w", dotEnvFile, err)
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any TUI2048_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// mergeFile unmarshals path on top of cfg.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(ExpandHome(path))
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Source = path
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui2048", filename)
}
