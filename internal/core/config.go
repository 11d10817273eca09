package core

// RuntimeConfig contains host-side parameters passed to the game session.
// The platform uses it to size the viewport and seed the simulation.
type RuntimeConfig struct {
	ScreenW  int    // Terminal width in characters
	ScreenH  int    // Terminal height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed for deterministic gameplay
	Profile  string // Record profile name (default "default")
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Profile:  "default",
	}
}
