package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default Pac-Man configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Timing: PacmanTiming{
			PlayerTickMS: 150,
			GhostTickMS:  200,
			PowerModeMS:  10000,
		},
		Audio: AudioConfig{
			Enabled:  true,
			Muted:    false,
			VolumeDB: -2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman":
		return defaultPacmanYAML
	default:
		return nil
	}
}
