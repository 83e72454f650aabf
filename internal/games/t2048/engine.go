package t2048

// Rules holds the tunable constants of a 2048 game.
type Rules struct {
	WinTile      int     // Merge result that sets Won
	Spawn4Prob   float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
	InitialTiles int     // Tiles placed by Initialize
}

// DefaultRules returns the classic rules: win at 2048, 10% fours, two starting tiles.
func DefaultRules() Rules {
	return Rules{
		WinTile:      2048,
		Spawn4Prob:   0.10,
		InitialTiles: 2,
	}
}

// Status is the coarse game status derived from the flags.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusOver    Status = "over"
)

// GameState is the complete state of one game. It is a plain value:
// ApplyMove returns a new GameState and never mutates its argument.
type GameState struct {
	Board Board
	Score int
	Won   bool // Sticky once a merge produces the win tile
	Over  bool // Sticky once no move remains
	Moves int  // Successful moves applied
}

// Status returns StatusOver, StatusWon or StatusPlaying, in that priority.
func (s GameState) Status() Status {
	switch {
	case s.Over:
		return StatusOver
	case s.Won:
		return StatusWon
	default:
		return StatusPlaying
	}
}

// MoveResult describes the effect of one ApplyMove call.
type MoveResult struct {
	Moved      bool
	ScoreDelta int
	Spawned    *Tile // nil when nothing was spawned
}

// Engine applies moves and spawns tiles using its rules and random source.
type Engine struct {
	rules Rules
	rng   RandomSource
}

// NewEngine creates an engine. A non-positive WinTile or InitialTiles and a
// Spawn4Prob outside [0, 1] fall back to DefaultRules. Spawn4Prob 0 is kept:
// only 2s spawn.
func NewEngine(rules Rules, rng RandomSource) *Engine {
	def := DefaultRules()
	if rules.WinTile <= 0 {
		rules.WinTile = def.WinTile
	}
	if rules.Spawn4Prob < 0 || rules.Spawn4Prob > 1 {
		rules.Spawn4Prob = def.Spawn4Prob
	}
	if rules.InitialTiles <= 0 {
		rules.InitialTiles = def.InitialTiles
	}
	return &Engine{rules: rules, rng: rng}
}

// Rules returns the rules in effect.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Initialize returns a fresh game with the starting tiles spawned.
func (e *Engine) Initialize() GameState {
	var s GameState
	for range e.rules.InitialTiles {
		e.SpawnTile(&s.Board)
	}
	return s
}

// SpawnTile places a 2 or a 4 in a uniformly chosen empty cell.
// On a full board it does nothing and returns false.
func (e *Engine) SpawnTile(board *Board) (Tile, bool) {
	empty := EmptyCells(*board)
	if len(empty) == 0 {
		return Tile{}, false
	}

	pos := empty[e.rng.IntN(len(empty))]

	value := 2
	if e.rng.Float64() < e.rules.Spawn4Prob {
		value = 4
	}

	board[pos.Row][pos.Col] = value
	return Tile{Pos: pos, Value: value}, true
}

// ApplyMove slides the board in dir. When anything moved it adds the merge
// score, spawns one tile and re-evaluates the terminal condition. A game that
// is already over, an invalid direction, or a slide that changes nothing
// returns the state unchanged.
func (e *Engine) ApplyMove(s GameState, dir Direction) (GameState, MoveResult) {
	var res MoveResult
	if s.Over || !dir.Valid() {
		return s, res
	}

	board, slide := Slide(s.Board, dir)
	if !slide.Moved {
		return s, res
	}

	s.Board = board
	s.Score += slide.Score
	s.Moves++
	for _, v := range slide.Merges {
		if v == e.rules.WinTile {
			s.Won = true
		}
	}

	res.Moved = true
	res.ScoreDelta = slide.Score
	if tile, ok := e.SpawnTile(&s.Board); ok {
		res.Spawned = &tile
	}

	if !CanMove(s.Board) {
		s.Over = true
	}

	return s, res
}
