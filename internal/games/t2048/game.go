package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Game adapts the board state machine to the platform's registry.Game.
type Game struct {
	preset Preset
	engine *Engine
	state  GameState
	last   MoveResult
	seed   int64

	shareText string

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a classic 2048 game.
func New() *Game {
	return NewWithPreset(Presets[0])
}

// NewWithPreset creates a game using the given rule preset.
func NewWithPreset(p Preset) *Game {
	return &Game{preset: p}
}

func init() {
	for _, p := range Presets {
		registry.Register(p.ID, func() registry.Game {
			return NewWithPreset(p)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.preset.Title
}

// Preset returns the rule preset this game was created with.
func (g *Game) Preset() Preset {
	return g.preset
}

// Reset starts a new game. The board is seeded from cfg.Seed, so equal
// seeds produce equal games.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.engine = NewEngine(g.preset.Rules(), NewRandomSource(cfg.Seed))
	g.state = g.engine.Initialize()
	g.last = MoveResult{}
	g.shareText = ""
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// SetShareText sets the message shown in the game over overlay.
func (g *Game) SetShareText(text string) {
	g.shareText = text
}

// Step applies at most one move per input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFromInput(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	g.state, g.last = g.engine.ApplyMove(g.state, dir)
	return core.StepResult{State: g.State(), Moved: g.last.Moved}
}

// directionFromInput picks the first directional action present in the frame.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// GameState returns the board state machine's current value.
func (g *Game) GameState() GameState {
	return g.state
}

// LastMove returns the result of the most recent move attempt.
func (g *Game) LastMove() MoveResult {
	return g.last
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		MaxTile:  MaxTile(g.state.Board),
		Moves:    g.state.Moves,
		Won:      g.state.Won,
		GameOver: g.state.Over,
	}
}
