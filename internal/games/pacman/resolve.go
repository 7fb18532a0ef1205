package pacman

import "time"

// power is the power mode part of a State.
// Invariant: active == (left > 0).
type power struct {
	active bool
	left   time.Duration
}

// activatePower starts (or restarts) power mode. Re-activation resets the
// countdown to the full duration; it never stacks.
func activatePower(r Rules) power {
	return power{active: true, left: r.PowerDuration}
}

// decayPower drains one player tick from an active power mode, clamping at
// zero. Reaching zero ends power mode.
func decayPower(p power, r Rules) power {
	if !p.active {
		return power{}
	}
	p.left -= r.PlayerTick
	if p.left <= 0 {
		return power{}
	}
	return p
}

// collidingGhost returns the index of the first ghost standing on pos, or -1.
func collidingGhost(pos Position, ghosts [NumGhosts]Ghost) int {
	for i, g := range ghosts {
		if g.Pos == pos {
			return i
		}
	}
	return -1
}

// outcome is the result of resolving a player/ghost collision.
type outcome int

const (
	outcomeNone outcome = iota
	outcomeDeath
	outcomeGhostEaten
)

// resolveCollision applies the collision rules after movement. Without power
// mode any overlap kills the player. With power mode the first overlapping
// ghost (lowest index) is sent back to the respawn cell and scores
// GhostPoints; other overlapping ghosts are left alone for this tick.
func resolveCollision(pos Position, ghosts [NumGhosts]Ghost, powered bool) ([NumGhosts]Ghost, int, outcome) {
	idx := collidingGhost(pos, ghosts)
	switch {
	case idx < 0:
		return ghosts, 0, outcomeNone
	case !powered:
		return ghosts, 0, outcomeDeath
	default:
		ghosts[idx] = ghostRespawn
		return ghosts, GhostPoints, outcomeGhostEaten
	}
}
