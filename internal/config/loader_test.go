package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs so the
// developer's own config files do not leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Source != SourceEmbedded {
		t.Errorf("Source = %q, want %q", cfg.Source, SourceEmbedded)
	}
	if cfg.DBPath != "~/.tui2048/scores.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Variant != "classic" || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SSH.Address != ":23234" || cfg.SSH.IdleTimeout != 30*time.Minute {
		t.Errorf("unexpected SSH defaults: %+v", cfg.SSH)
	}
	if cfg.Share.Template == "" || cfg.Share.Locale != "en" {
		t.Errorf("unexpected share defaults: %+v", cfg.Share)
	}
}

func TestLoadEmbeddedWhenNoFiles(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() without files = %+v, want defaults", cfg)
	}
}

func TestLoadCustomPathMergesDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "player: ada\nssh:\n  idle_timeout: 5m\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player != "ada" {
		t.Errorf("Player = %q, want ada", cfg.Player)
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", cfg.SSH.IdleTimeout)
	}
	if cfg.SSH.Address != ":23234" {
		t.Errorf("unset keys should keep defaults, Address = %q", cfg.SSH.Address)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "ssh: [not, a, map]\n")
	if _, err := Load(bad); err == nil {
		t.Error("invalid YAML should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, localConfigPath, "player: local\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player != "local" {
		t.Errorf("local config not used, Player = %q", cfg.Player)
	}

	writeFile(t, filepath.Join(home, ".tui2048", "config.yaml"), "player: home\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player != "home" {
		t.Errorf("user config should win over local, Player = %q", cfg.Player)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "player: file\nlog_level: warn\n")

	t.Setenv("TUI2048_PLAYER", "env")
	t.Setenv("TUI2048_SSH_IDLE_TIMEOUT", "90s")
	t.Setenv("TUI2048_SHARE_URL", "https://example.test/2048")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player != "env" {
		t.Errorf("Player = %q, want env", cfg.Player)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, file value should survive", cfg.LogLevel)
	}
	if cfg.SSH.IdleTimeout != 90*time.Second {
		t.Errorf("IdleTimeout = %v, want 90s", cfg.SSH.IdleTimeout)
	}
	if cfg.Share.URL != "https://example.test/2048" {
		t.Errorf("Share.URL = %q", cfg.Share.URL)
	}
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	writeFile(t, ".env", "TUI2048_PLAYER=dotenv\nTUI2048_VARIANT=hard\n")

	// Registered so cleanup unsets whatever .env sets.
	t.Setenv("TUI2048_PLAYER", "")
	os.Unsetenv("TUI2048_PLAYER")
	t.Setenv("TUI2048_VARIANT", "easy")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player != "dotenv" {
		t.Errorf("Player = %q, want value from .env", cfg.Player)
	}
	if cfg.Variant != "easy" {
		t.Errorf("Variant = %q, real environment should win over .env", cfg.Variant)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	cfg := Default()
	t.Setenv("TUI2048_SSH_IDLE_TIMEOUT", "soon")

	if err := ApplyEnv(&cfg); err == nil {
		t.Error("invalid duration should fail")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := map[string]string{
		"~":                  home,
		"~/.tui2048/db":      filepath.Join(home, ".tui2048", "db"),
		"/var/lib/scores":    "/var/lib/scores",
		"relative/path":      "relative/path",
		"~someone/elsewhere": "~someone/elsewhere",
	}
	for in, want := range tests {
		if got := ExpandHome(in); got != want {
			t.Errorf("ExpandHome(%q) = %q, want %q", in, got, want)
		}
	}
}
