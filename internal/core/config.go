package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size the play-field and to seed its random source.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for reproducible spawns
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult contains the outcome of a single simulation step.
type StepResult struct {
	State        GameState
	ScoreChanged bool  // Score differs from the previous step
	Cues         []Cue // Sounds triggered during the step, in order
}

// RunStats summarizes one play-through for persistence.
type RunStats struct {
	Score    int
	Stars    int           // Pickups collected
	Bounces  int           // Enemy wall bounces
	Duration time.Duration // Simulated time, pauses excluded
	Ticks    uint64
	Seed     int64 // Seed the run was started with
}
