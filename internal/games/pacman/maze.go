// Package pacman implements a single-player Pac-Man game: a fixed maze of
// pellets, four wandering ghosts and a timed power mode that lets the player
// eat ghosts.
//
// The engine is a pure state transition (Step) plus the clocks that drive it.
// Game adapts it to the arcade registry.
package pacman

import (
	"github.com/zyedidia/generic/mapset"
)

// BoardSize is the width and height of the square board in cells.
const BoardSize = 28

// Position is a board cell. Both coordinates are in [0, BoardSize).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// mazePattern is the board layout. 'X' is a wall; '.', 'o' and ' ' are open.
var mazePattern = [BoardSize]string{
	"XXXXXXXXXXXXXXXXXXXXXXXXXXXX",
	"X............XX............X",
	"X.XXXX.XXXXX.XX.XXXXX.XXXX.X",
	"XoXXXX.XXXXX.XX.XXXXX.XXXXoX",
	"X.XXXX.XXXXX.XX.XXXXX.XXXX.X",
	"X..........................X",
	"X.XXXX.XX.XXXXXXXX.XX.XXXX.X",
	"X.XXXX.XX.XXXXXXXX.XX.XXXX.X",
	"X......XX....XX....XX......X",
	"XXXXXX.XXXXX XX XXXXX.XXXXXX",
	"XXXXXX.XXXXX XX XXXXX.XXXXXX",
	"XXXXXX.XX          XX.XXXXXX",
	"XXXXXX.XX XXXXXXXX XX.XXXXXX",
	"XXXXXX.XX X      X XX.XXXXXX",
	"      .   X      X   .      ",
	"XXXXXX.XX X      X XX.XXXXXX",
	"XXXXXX.XX XXXXXXXX XX.XXXXXX",
	"XXXXXX.XX          XX.XXXXXX",
	"XXXXXX.XX XXXXXXXX XX.XXXXXX",
	"XXXXXX.XX XXXXXXXX XX.XXXXXX",
	"X............XX............X",
	"X.XXXX.XXXXX.XX.XXXXX.XXXX.X",
	"X.XXXX.XXXXX.XX.XXXXX.XXXX.X",
	"Xo..XX.......  .......XX..oX",
	"XXX.XX.XX.XXXXXXXX.XX.XX.XXX",
	"XXX.XX.XX.XXXXXXXX.XX.XX.XXX",
	"X......XX....XX....XX......X",
	"X.XXXXXXXXXX.XX.XXXXXXXXXX.X",
}

// powerPelletCells are the candidate power pellet locations near the corners.
var powerPelletCells = [4]Position{
	{X: 1, Y: 3},
	{X: BoardSize - 2, Y: 3},
	{X: 1, Y: BoardSize - 5},
	{X: BoardSize - 2, Y: BoardSize - 5},
}

// WallSet is the fixed set of wall cells. It is never modified after
// DecodeMaze returns, so states can share it.
type WallSet struct {
	cells mapset.Set[Position]
}

// Has reports whether p is a wall.
func (w WallSet) Has(p Position) bool {
	return w.cells.Has(p)
}

// Len returns the number of wall cells.
func (w WallSet) Len() int {
	return w.cells.Size()
}

// NewWallSet builds a wall set from explicit cells. Used by tests and
// custom boards.
func NewWallSet(cells ...Position) WallSet {
	s := mapset.New[Position]()
	for _, c := range cells {
		s.Put(c)
	}
	return WallSet{cells: s}
}

// PelletSet is a set of pellet (or power pellet) cells.
//
// Sets shrink over a game. Consumption copies before removing, so a set
// held by an earlier State is never changed by a later tick.
type PelletSet struct {
	cells mapset.Set[Position]
}

// NewPelletSet builds a pellet set from explicit cells.
func NewPelletSet(cells ...Position) PelletSet {
	s := mapset.New[Position]()
	for _, c := range cells {
		s.Put(c)
	}
	return PelletSet{cells: s}
}

// Has reports whether a pellet lies on p.
func (p PelletSet) Has(pos Position) bool {
	return p.cells.Has(pos)
}

// Len returns the number of pellets left.
func (p PelletSet) Len() int {
	return p.cells.Size()
}

// Each calls fn for every pellet, in no particular order.
func (p PelletSet) Each(fn func(Position)) {
	p.cells.Each(fn)
}

// without returns a copy of the set with pos removed.
func (p PelletSet) without(pos Position) PelletSet {
	out := NewPelletSet()
	p.Each(func(c Position) {
		if c != pos {
			out.cells.Put(c)
		}
	})
	return out
}

// DecodeMaze parses the board pattern into its wall set.
func DecodeMaze() WallSet {
	walls := NewWallSet()
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if mazePattern[y][x] == 'X' {
				walls.cells.Put(Position{X: x, Y: y})
			}
		}
	}
	return walls
}

// DerivePellets returns a pellet on every open cell of the board.
func DerivePellets(walls WallSet) PelletSet {
	pellets := NewPelletSet()
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			p := Position{X: x, Y: y}
			if !walls.Has(p) {
				pellets.cells.Put(p)
			}
		}
	}
	return pellets
}

// DerivePowerPellets places power pellets on the open corner cells and
// removes the regular pellet underneath each one from pellets.
func DerivePowerPellets(walls WallSet, pellets PelletSet) PelletSet {
	power := NewPelletSet()
	for _, p := range powerPelletCells {
		if walls.Has(p) {
			continue
		}
		power.cells.Put(p)
		if pellets.Has(p) {
			pellets.cells.Remove(p)
		}
	}
	return power
}
