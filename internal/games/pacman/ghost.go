package pacman

import "math/rand"

// NumGhosts is the number of ghosts on the board.
const NumGhosts = 4

// Ghost is a wandering enemy. Ghosts are identified by their index in
// State.Ghosts, which never changes during a game.
type Ghost struct {
	Pos Position
	Dir Direction
}

// ghostRespawn is where an eaten ghost reappears.
var ghostRespawn = Ghost{Pos: Position{X: 9, Y: 10}, Dir: Right}

// DirectionSource supplies the random directions ghosts pick when blocked.
type DirectionSource interface {
	RandomDirection() Direction
}

// RandSource is a DirectionSource backed by a seeded math/rand generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a deterministic direction source for the given seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// RandomDirection returns one of the four directions uniformly.
func (s *RandSource) RandomDirection() Direction {
	return Directions[s.rng.Intn(len(Directions))]
}

// StepGhost moves g one cell along its direction. A blocked ghost stays put
// and picks a new random direction, which may itself be blocked next tick.
func StepGhost(g Ghost, walls WallSet, src DirectionSource) Ghost {
	next := Move(g.Pos, g.Dir, walls)
	if next == g.Pos {
		g.Dir = src.RandomDirection()
		return g
	}
	g.Pos = next
	return g
}
