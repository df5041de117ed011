package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-ladders/internal/engine"
)

//go:embed defaults/ladders.yaml
var defaultLaddersYAML []byte

// DefaultConfig returns the reference board configuration.
func DefaultConfig() Config {
	return Config{
		TeleportPauseMS: 1000,
		Players: []PlayerConfig{
			{Name: "Player 1", Color: "red"},
			{Name: "Player 2", Color: "blue"},
		},
		Teleports: engine.DefaultTeleports(),
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultLaddersYAML
}

// applyDefaults fills fields a config file left out.
// An explicit empty teleports block is kept as an empty board.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Players == nil {
		cfg.Players = def.Players
	}
	if cfg.Teleports == nil {
		cfg.Teleports = def.Teleports
	}
}
