package core

import "time"

// RuntimeConfig contains configuration passed to the presentation layer at startup.
type RuntimeConfig struct {
	ScreenW       int           // Terminal width in characters
	ScreenH       int           // Terminal height in characters
	Seed          int64         // RNG seed for the die (0 = random)
	TeleportPause time.Duration // How long the landing square is shown before a teleport
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		Seed:          0,
		TeleportPause: time.Second,
	}
}
