package core

// RuntimeConfig contains configuration passed to a session at initialization.
// Sessions use this to adapt to screen size and for deterministic camera shake.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for camera shake
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

// GameState represents the current state of a play session.
// Returned by Session.State() to communicate status to the platform.
type GameState struct {
	Beat       float64 // Current song beat
	HP         int     // Remaining hit points in the current attempt
	Deaths     int     // Number of restarts so far
	Checkpoint float64 // Beat the next restart resumes from
	Complete   bool    // Whether the song has finished
	Paused     bool    // Whether the session is paused
}

// StepResult is returned by Session.Step() after each frame.
type StepResult struct {
	State     GameState
	Died      bool // The player ran out of HP this frame and the level restarted
	ReachedCP bool // A new checkpoint was passed this frame
}
