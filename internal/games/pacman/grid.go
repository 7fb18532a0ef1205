package pacman

// CellKind classifies a board cell for rendering.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellPellet
	CellPowerPellet
	CellWall
	CellGhost
	CellPlayer
)

// Rune returns the ASCII glyph used for the kind in snapshots.
func (k CellKind) Rune() rune {
	switch k {
	case CellPlayer:
		return 'C'
	case CellGhost:
		return 'G'
	case CellWall:
		return '#'
	case CellPellet:
		return '.'
	case CellPowerPellet:
		return 'o'
	default:
		return ' '
	}
}

// Grid is a full board classification indexed [y][x].
type Grid [BoardSize][BoardSize]CellKind

// Grid classifies every cell of the board. When several things share a cell
// the player wins over ghosts, ghosts over walls, walls over pellets and
// pellets over power pellets.
func (s State) Grid() Grid {
	var g Grid
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			g[y][x] = s.cellAt(Position{X: x, Y: y})
		}
	}
	return g
}

func (s State) cellAt(p Position) CellKind {
	switch {
	case p == s.Pacman:
		return CellPlayer
	case collidingGhost(p, s.Ghosts) >= 0:
		return CellGhost
	case s.Walls.Has(p):
		return CellWall
	case s.Pellets.Has(p):
		return CellPellet
	case s.PowerPellets.Has(p):
		return CellPowerPellet
	default:
		return CellEmpty
	}
}

// Rows renders the grid as one string per board row.
func (g Grid) Rows() []string {
	rows := make([]string, BoardSize)
	for y := range g {
		line := make([]rune, BoardSize)
		for x, k := range g[y] {
			line[x] = k.Rune()
		}
		rows[y] = string(line)
	}
	return rows
}
