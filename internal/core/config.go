package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	MaxTile  int  // Highest tile on the board
	Moves    int  // Successful moves so far
	Won      bool // Whether the win tile has been reached
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State GameState
	Moved bool // Whether the input changed the game
}
