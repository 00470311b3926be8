package core

// RuntimeConfig contains settings the frontends pass to the game at startup.
// They do not belong to the game rules (see internal/config for those).
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Frames per second requested from the frontend loop
	Seed     int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// MaxFrameDelta caps the time step fed into the simulation after a stall
// (window drag, SIGSTOP, slow terminal), in seconds.
const MaxFrameDelta = 0.1
