// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// PacmanConfig contains all configuration for the Pac-Man game.
type PacmanConfig struct {
	Timing PacmanTiming `yaml:"timing"`
	Audio  AudioConfig  `yaml:"audio"`
}

// PacmanTiming defines the two game clocks and the power mode length.
type PacmanTiming struct {
	PlayerTickMS int `yaml:"player_tick_ms"`
	GhostTickMS  int `yaml:"ghost_tick_ms"`
	PowerModeMS  int `yaml:"power_mode_ms"`
}

// AudioConfig defines sound output settings.
type AudioConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Muted    bool    `yaml:"muted"`
	VolumeDB float64 `yaml:"volume_db"` // Master volume in dB, 0 = unchanged
}

// ErrInvalidTiming is returned by Validate for non-positive intervals.
var ErrInvalidTiming = errors.New("config: timing values must be positive")

// PlayerTick returns the player clock interval.
func (t PacmanTiming) PlayerTick() time.Duration {
	return time.Duration(t.PlayerTickMS) * time.Millisecond
}

// GhostTick returns the ghost clock interval.
func (t PacmanTiming) GhostTick() time.Duration {
	return time.Duration(t.GhostTickMS) * time.Millisecond
}

// PowerMode returns the power mode duration.
func (t PacmanTiming) PowerMode() time.Duration {
	return time.Duration(t.PowerModeMS) * time.Millisecond
}

// Validate checks that the configuration is usable.
func (c PacmanConfig) Validate() error {
	t := c.Timing
	if t.PlayerTickMS <= 0 || t.GhostTickMS <= 0 || t.PowerModeMS <= 0 {
		return fmt.Errorf("%w (player=%d ghost=%d power=%d)",
			ErrInvalidTiming, t.PlayerTickMS, t.GhostTickMS, t.PowerModeMS)
	}
	return nil
}
