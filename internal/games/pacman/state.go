package pacman

import (
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// pacmanStart is the player's spawn cell.
var pacmanStart = Position{X: 13, Y: 23}

// ghostStarts are the ghost spawn cells and facings, by ghost index.
var ghostStarts = [NumGhosts]Ghost{
	{Pos: Position{X: 11, Y: 13}, Dir: Left},
	{Pos: Position{X: 12, Y: 13}, Dir: Left},
	{Pos: Position{X: 15, Y: 13}, Dir: Right},
	{Pos: Position{X: 16, Y: 13}, Dir: Right},
}

// State is the complete world of one game. It is a value: Step returns a new
// State and never modifies the one it was given.
type State struct {
	Pacman    Position
	Direction Direction
	Ghosts    [NumGhosts]Ghost
	Score     int

	Pellets      PelletSet
	PowerPellets PelletSet
	Walls        WallSet

	GameOver bool
	// Won is set together with GameOver when the board is cleared.
	Won bool

	// PowerMode is true exactly when PowerLeft > 0.
	PowerMode bool
	PowerLeft time.Duration

	Rules Rules
}

// NewState builds a fresh game: new maze, full pellet sets, actors on their
// spawn cells and a zero score. Restarting a game means calling NewState
// again; states are never partially reset.
func NewState(r Rules) State {
	walls := DecodeMaze()
	pellets := DerivePellets(walls)
	power := DerivePowerPellets(walls, pellets)

	return State{
		Pacman:       pacmanStart,
		Direction:    Left,
		Ghosts:       ghostStarts,
		Pellets:      pellets,
		PowerPellets: power,
		Walls:        walls,
		Rules:        r.withDefaults(),
	}
}

// WithDirection returns s with the player's direction replaced. It takes
// effect on the next Step. Input is ignored once the game is over.
func (s State) WithDirection(d Direction) State {
	if s.GameOver {
		return s
	}
	s.Direction = d
	return s
}

// Step is the single tick transition, shared by the player and ghost clocks.
// It moves the player, eats whatever is under it, moves every ghost, updates
// power mode and resolves collisions. Sound cues produced by the tick are
// returned alongside the new state. A finished game is returned unchanged.
func Step(s State, src DirectionSource) (State, []core.Sound) {
	if s.GameOver {
		return s, nil
	}

	var sounds []core.Sound
	next := s

	next.Pacman = Move(s.Pacman, s.Direction, s.Walls)

	pellets, points := ConsumePellet(next.Pacman, s.Pellets)
	next.Pellets = pellets
	if points > 0 {
		sounds = append(sounds, core.SoundPellet)
	}

	powerPellets, activated := ConsumePowerPellet(next.Pacman, s.PowerPellets)
	next.PowerPellets = powerPellets
	if activated {
		sounds = append(sounds, core.SoundPowerPellet)
	}

	for i, g := range s.Ghosts {
		next.Ghosts[i] = StepGhost(g, s.Walls, src)
	}

	next.Score += points

	pw := power{active: s.PowerMode, left: s.PowerLeft}
	if activated {
		pw = activatePower(s.Rules)
		next.Score += PowerPelletPoints
	} else {
		pw = decayPower(pw, s.Rules)
	}
	next.PowerMode, next.PowerLeft = pw.active, pw.left

	ghosts, bonus, result := resolveCollision(next.Pacman, next.Ghosts, next.PowerMode)
	switch result {
	case outcomeDeath:
		next.GameOver = true
		sounds = append(sounds, core.SoundDeath)
		return next, sounds
	case outcomeGhostEaten:
		next.Ghosts = ghosts
		next.Score += bonus
	}

	if next.Pellets.Len() == 0 && next.PowerPellets.Len() == 0 {
		next.GameOver = true
		next.Won = true
	}

	return next, sounds
}
