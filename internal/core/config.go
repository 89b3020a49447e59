package core

// RuntimeConfig is handed to the game at Reset.
// Frontends fill it from the screen or window size and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells (terminal) or pixels (window)
	ScreenH  int   // Screen height in cells or pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 FPS.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status the game reports to its frontend after each tick.
type GameState struct {
	Score    int
	Level    int
	Lives    int
	Health   int
	GameOver bool // Loss condition reached, end screen showing
	Paused   bool
	Done     bool // Grace period over, the frontend should leave the game
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
