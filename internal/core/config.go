package core

// RuntimeConfig contains per-run settings handed to the game by a frontend.
// Games use this for the fixed tick rate and for deterministic simulation.
type RuntimeConfig struct {
	Width  int   // Logical screen width in pixels
	Height int   // Logical screen height in pixels
	FPS    int   // Simulation ticks per second
	Seed   int64 // RNG seed; 0 means the frontend picks one from the clock
	Debug  bool  // Start with the hitbox overlay enabled
}

// TickSeconds returns the duration of one tick in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.FPS <= 0 {
		return 1.0 / 30.0
	}
	return 1.0 / float64(c.FPS)
}
