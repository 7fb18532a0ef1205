package pacman

import "time"

// Default timing, matching the classic browser version of the game.
const (
	DefaultPlayerTick    = 150 * time.Millisecond
	DefaultGhostTick     = 200 * time.Millisecond
	DefaultPowerDuration = 10 * time.Second
)

// Scoring bonuses on top of PelletPoints.
const (
	PowerPelletPoints = 50
	GhostPoints       = 200
)

// Rules holds the timing of a game. Scoring is fixed.
type Rules struct {
	// PlayerTick is the player clock interval. Power mode also drains by
	// exactly this amount on every tick.
	PlayerTick time.Duration
	// GhostTick is the ghost clock interval.
	GhostTick time.Duration
	// PowerDuration is the power mode length set on every activation.
	PowerDuration time.Duration
}

// DefaultRules returns the standard timing.
func DefaultRules() Rules {
	return Rules{
		PlayerTick:    DefaultPlayerTick,
		GhostTick:     DefaultGhostTick,
		PowerDuration: DefaultPowerDuration,
	}
}

// withDefaults fills non-positive fields from DefaultRules.
func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.PlayerTick <= 0 {
		r.PlayerTick = d.PlayerTick
	}
	if r.GhostTick <= 0 {
		r.GhostTick = d.GhostTick
	}
	if r.PowerDuration <= 0 {
		r.PowerDuration = d.PowerDuration
	}
	return r
}
