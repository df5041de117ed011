// Package config provides YAML-based board configuration loading.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/engine"
)

// MaxTeleportPauseMS caps the landing pause so a bad config cannot stall the UI.
const MaxTeleportPauseMS = 5000

// MaxNameLen keeps every status message within the board width.
const MaxNameLen = 16

// ErrInvalidConfig is returned when a config file fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all configuration for a game of snakes and ladders.
type Config struct {
	TeleportPauseMS int            `yaml:"teleport_pause_ms"`
	Players         []PlayerConfig `yaml:"players"`
	Teleports       map[int]int    `yaml:"teleports"`
}

// PlayerConfig defines how a player is displayed.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Validate checks the config against the board invariants.
func (c Config) Validate() error {
	if c.TeleportPauseMS < 0 || c.TeleportPauseMS > MaxTeleportPauseMS {
		return fmt.Errorf("%w: teleport_pause_ms %d must be between 0 and %d", ErrInvalidConfig, c.TeleportPauseMS, MaxTeleportPauseMS)
	}
	if len(c.Players) != engine.PlayerCount {
		return fmt.Errorf("%w: need exactly %d players, got %d", ErrInvalidConfig, engine.PlayerCount, len(c.Players))
	}
	for i, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("%w: player %d has no name", ErrInvalidConfig, i+1)
		}
		if n := utf8.RuneCountInString(p.Name); n > MaxNameLen {
			return fmt.Errorf("%w: player %d name is %d characters, max %d", ErrInvalidConfig, i+1, n, MaxNameLen)
		}
		if _, ok := core.ParseColor(p.Color); !ok {
			return fmt.Errorf("%w: player %d has unknown color %q", ErrInvalidConfig, i+1, p.Color)
		}
	}
	if err := engine.ValidateTeleports(c.TeleportMap()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// TeleportMap returns the configured teleports as an engine map.
func (c Config) TeleportMap() engine.TeleportMap {
	return engine.TeleportMap(c.Teleports).Clone()
}

// TeleportPause returns the landing pause as a duration.
func (c Config) TeleportPause() time.Duration {
	return time.Duration(c.TeleportPauseMS) * time.Millisecond
}

// Names returns the player display names.
func (c Config) Names() board.Names {
	names := board.DefaultNames()
	for i := 0; i < len(c.Players) && i < engine.PlayerCount; i++ {
		names[i] = c.Players[i].Name
	}
	return names
}

// Markers returns the player tokens in their configured colors.
func (c Config) Markers() [engine.PlayerCount]board.Marker {
	markers := board.DefaultMarkers()
	for i := 0; i < len(c.Players) && i < engine.PlayerCount; i++ {
		if color, ok := core.ParseColor(c.Players[i].Color); ok && color != core.ColorDefault {
			markers[i].Color = color
		}
	}
	return markers
}
