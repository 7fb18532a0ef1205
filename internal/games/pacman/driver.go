package pacman

import (
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// clock fires every `every` of simulated time; next is its next due time.
type clock struct {
	every time.Duration
	next  time.Duration
}

// Driver runs a game on simulated time. Two independent clocks (player and
// ghost) both dispatch into Step; Advance fires every clock that became due,
// in time order, with the player clock first on ties.
//
// Driver is deterministic and is what fixed-rate front ends (the terminal UI)
// use. See Runner for wall-clock timers.
type Driver struct {
	state  State
	src    DirectionSource
	now    time.Duration
	player clock
	ghost  clock
	ticks  uint64
}

// NewDriver creates a driver starting from s.
func NewDriver(s State, src DirectionSource) *Driver {
	d := &Driver{src: src}
	d.Restart(s)
	return d
}

// Restart replaces the whole state and rewinds both clocks. Unset timing
// falls back to DefaultRules.
func (d *Driver) Restart(s State) {
	s.Rules = s.Rules.withDefaults()
	d.state = s
	d.now = 0
	d.ticks = 0
	d.player = clock{every: s.Rules.PlayerTick, next: s.Rules.PlayerTick}
	d.ghost = clock{every: s.Rules.GhostTick, next: s.Rules.GhostTick}
}

// State returns the current state.
func (d *Driver) State() State {
	return d.state
}

// Ticks returns how many transitions have run since the last restart.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// SetDirection applies directional input immediately.
func (d *Driver) SetDirection(dir Direction) {
	d.state = d.state.WithDirection(dir)
}

// Advance moves simulated time forward by dt and runs every due tick.
// Sound cues of all ticks are returned in order.
func (d *Driver) Advance(dt time.Duration) []core.Sound {
	d.now += dt

	var sounds []core.Sound
	for {
		c := d.dueClock()
		if c == nil {
			return sounds
		}
		c.next += c.every
		if d.state.GameOver {
			continue
		}

		var out []core.Sound
		d.state, out = Step(d.state, d.src)
		d.ticks++
		sounds = append(sounds, out...)
	}
}

// dueClock returns the earliest clock that is due, or nil.
func (d *Driver) dueClock() *clock {
	switch {
	case d.player.next <= d.now && d.player.next <= d.ghost.next:
		return &d.player
	case d.ghost.next <= d.now:
		return &d.ghost
	default:
		return nil
	}
}
