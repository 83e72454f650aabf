package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/share"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// sessionLogName is the interactive log file, kept next to the database.
const sessionLogName = "tui2048.log"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a game of 2048.

Variants:
  classic - 10% of new tiles are 4s
  easy    - 5% of new tiles are 4s
  hard    - 25% of new tiles are 4s

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - New game (after game over)
  C                - Copy share message (after game over)
  Ctrl+S           - Save a text screenshot
  B/Esc            - Back
  Q/Ctrl+C         - Quit

Examples:
  tui2048 play
  tui2048 play hard
  tui2048 play easy --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	name := appConfig.Variant
	if len(args) > 0 {
		name = args[0]
	}

	preset, err := t2048.PresetByName(name)
	if err != nil {
		return fmt.Errorf("%w (run 'tui2048 list' to see variants)", err)
	}

	store, closeStore := openStore()
	defer closeStore()

	opts, closeLog, err := sessionOptions(store)
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := tui.Run(t2048.NewWithPreset(preset), runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
}

// openStore opens the score database. A failure is logged and the game
// runs without persistence; the returned ScoreStore is then a nil interface.
func openStore() (tui.ScoreStore, func()) {
	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", appConfig.DBPath, "error", err)
		return nil, func() {}
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "error", err)
		}
	}
}

// sessionOptions builds the collaborators shared by local play and the menu.
// The returned func closes the session log.
func sessionOptions(store tui.ScoreStore) (tui.Options, func(), error) {
	sharer, err := share.New(appConfig.Share)
	if err != nil {
		return tui.Options{}, func() {}, err
	}

	player := appConfig.Player
	if player == "" {
		player = os.Getenv("USER")
	}

	dataDir := filepath.Dir(config.ExpandHome(appConfig.DBPath))
	sessionLog, closeLog := openSessionLog(dataDir)

	return tui.Options{
		Store:         store,
		Sharer:        sharer,
		Player:        player,
		Clipboard:     true,
		Environ:       os.Environ(),
		ScreenshotDir: filepath.Join(dataDir, "screenshots"),
		Logger:        sessionLog,
	}, closeLog, nil
}

// openSessionLog returns the logger for interactive models. Stderr is the
// terminal the game draws on, so it writes to tui2048.log in dir instead,
// or nowhere when that file cannot be opened.
func openSessionLog(dir string) (*log.Logger, func()) {
	path := filepath.Join(dir, sessionLogName)
	f, err := openAppend(path)
	if err != nil {
		logger.Warn("could not open session log", "path", path, "error", err)
		return log.New(io.Discard), func() {}
	}

	l := log.NewWithOptions(f, log.Options{
		Level:           logger.GetLevel(),
		ReportTimestamp: true,
		Prefix:          "tui2048",
	})
	return l, func() {
		if err := f.Close(); err != nil {
			logger.Warn("could not close session log", "error", err)
		}
	}
}

func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
