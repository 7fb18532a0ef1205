package pacman

import "testing"

func TestMove(t *testing.T) {
	open := NewWallSet()

	tests := []struct {
		name string
		from Position
		dir  Direction
		want Position
	}{
		{"up", Position{5, 5}, Up, Position{5, 4}},
		{"down", Position{5, 5}, Down, Position{5, 6}},
		{"left", Position{5, 5}, Left, Position{4, 5}},
		{"right", Position{5, 5}, Right, Position{6, 5}},
		{"wrap top", Position{3, 0}, Up, Position{3, BoardSize - 1}},
		{"wrap bottom", Position{3, BoardSize - 1}, Down, Position{3, 0}},
		{"wrap left", Position{0, 14}, Left, Position{BoardSize - 1, 14}},
		{"wrap right", Position{BoardSize - 1, 14}, Right, Position{0, 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Move(tt.from, tt.dir, open); got != tt.want {
				t.Errorf("Move(%v, %v) = %v, want %v", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

func TestMoveBlockedByWall(t *testing.T) {
	walls := NewWallSet(Position{4, 5}, Position{BoardSize - 1, 0})

	if got := Move(Position{5, 5}, Left, walls); got != (Position{5, 5}) {
		t.Errorf("Expected blocked move to stay at (5,5), got %v", got)
	}
	// Wrapping onto a wall is blocked too.
	if got := Move(Position{0, 0}, Left, walls); got != (Position{0, 0}) {
		t.Errorf("Expected blocked wrap to stay at (0,0), got %v", got)
	}
}

func TestMoveOnMaze(t *testing.T) {
	walls := DecodeMaze()

	// Row 14 is the tunnel.
	if got := Move(Position{0, 14}, Left, walls); got != (Position{27, 14}) {
		t.Errorf("Expected tunnel wrap to (27,14), got %v", got)
	}
	// Column 1 is open at the bottom but the top border is solid.
	if got := Move(Position{1, 27}, Down, walls); got != (Position{1, 27}) {
		t.Errorf("Expected move into border to be blocked, got %v", got)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("Expected unknown direction to be rejected")
	}
}
