package pacman

// Direction is the facing of an actor. There is no stopped state.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all four directions in declaration order.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a direction name back to its value.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return Up, false
}

// Move steps p one cell in direction d on the toroidal board.
// A move onto a wall is rejected and p is returned unchanged.
func Move(p Position, d Direction, walls WallSet) Position {
	next := p
	switch d {
	case Up:
		next.Y = (next.Y - 1 + BoardSize) % BoardSize
	case Down:
		next.Y = (next.Y + 1) % BoardSize
	case Left:
		next.X = (next.X - 1 + BoardSize) % BoardSize
	case Right:
		next.X = (next.X + 1) % BoardSize
	}
	if walls.Has(next) {
		return p
	}
	return next
}
