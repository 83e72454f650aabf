// Package tui provides the Bubble Tea integration for tui2048.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/share"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// ScoreStore is the part of *storage.Store the UI needs.
type ScoreStore interface {
	SaveScore(rec storage.ScoreRecord) (int64, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	HighScore(gameID string) (int, error)
}

// shareTarget is implemented by games that show the share message themselves.
type shareTarget interface {
	SetShareText(text string)
}

// Options carries the optional collaborators of a game Model.
type Options struct {
	Store  ScoreStore    // Nil disables score saving
	Sharer *share.Sharer // Nil disables the share message
	Player string

	// Clipboard enables copying the share text with OSC 52. Environ is
	// used to detect terminal multiplexers.
	Clipboard bool
	Environ   []string

	// ScreenshotDir enables ctrl+s screenshots when non-empty.
	ScreenshotDir string

	Logger *log.Logger
}

// clipboardHold is how long a copy sequence stays in the view. It must
// outlast at least one renderer flush.
const clipboardHold = 250 * time.Millisecond

// clipboardSentMsg removes the copy sequence from the view.
type clipboardSentMsg struct{}

// Model is the Bubble Tea model for playing one game variant.
// Every key press is applied to completion before the next message.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	opts      Options
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	runID       string
	shareText   string
	pendingCopy string // OSC 52 sequence emitted with the next frames
	status     string // One-line notice drawn on the bottom row
	scoreSaved bool   // Whether score has been saved for current game over

	quitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		runID:     uuid.NewString(),
	}
}

// Init starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case clipboardSentMsg:
		m.pendingCopy = ""
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	state := m.game.State()

	switch action {
	case core.ActionBack:
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil

	case core.ActionRestart:
		if state.GameOver {
			m.restart()
		}
		return m, nil

	case core.ActionShare:
		if state.GameOver && m.shareText != "" && m.opts.Clipboard {
			return m, m.copy(m.shareText)
		}
		return m, nil
	}

	if !action.IsDirectional() {
		return m, nil
	}

	result := m.game.Step(core.FrameOf(action))
	if result.Moved {
		m.status = ""
	}
	if result.State.GameOver && !m.scoreSaved {
		m.finish(result.State)
	}

	return m, nil
}

// finish records the final score once and prepares the share message.
func (m *Model) finish(state core.GameState) {
	m.scoreSaved = true

	if m.opts.Sharer != nil {
		m.shareText = m.opts.Sharer.Message(state.Score, state.MaxTile)
		if t, ok := m.game.(shareTarget); ok {
			t.SetShareText(m.shareText)
		}
	}

	if m.opts.Store == nil || state.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveScore(storage.ScoreRecord{
		GameID:  m.game.ID(),
		RunID:   m.runID,
		Player:  m.opts.Player,
		Score:   state.Score,
		MaxTile: state.MaxTile,
		Won:     state.Won,
		Moves:   state.Moves,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.opts.Logger.Info("score saved", "game", m.game.ID(), "score", state.Score, "run", m.runID)
}

// restart starts a fresh game with a new seed and run ID.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.runID = uuid.NewString()
	m.shareText = ""
	m.pendingCopy = ""
	m.status = ""
	m.scoreSaved = false
}

// copy queues the clipboard sequence. View prepends it to the frame, so it
// reaches the terminal in the renderer's own write and never splits a frame.
func (m *Model) copy(text string) tea.Cmd {
	m.pendingCopy = share.Sequence(text, m.opts.Environ)
	m.status = "Copied to clipboard"
	return tea.Tick(clipboardHold, func(time.Time) tea.Msg {
		return clipboardSentMsg{}
	})
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.game.State().GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.status = "Saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && m.screen.Height() > 0 {
		m.screen.DrawTextColored(0, m.screen.Height()-1, m.status, core.ColorGray)
	}

	return m.pendingCopy + RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// ShareText returns the share message of the finished game, if any.
func (m Model) ShareText() string {
	return m.shareText
}

// Run starts a Bubble Tea program for the game and blocks until it exits.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
