package t2048

// GameStateType represents the current game state as seen by the platform.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	ID      string // Preset ID
	Seed    int64
	Moves   int
	Score   int
	Board   Board
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.state.Over:
		state = StateGameOver
	case g.state.Won:
		state = StateWon
	}

	return Snapshot{
		ID:      g.preset.ID,
		Seed:    g.seed,
		Moves:   g.state.Moves,
		Score:   g.state.Score,
		Board:   g.state.Board,
		MaxTile: MaxTile(g.state.Board),
		State:   state,
	}
}
