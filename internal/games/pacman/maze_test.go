package pacman

import "testing"

func TestDecodeMaze(t *testing.T) {
	walls := DecodeMaze()

	if walls.Len() != 496 {
		t.Errorf("Expected 496 walls, got %d", walls.Len())
	}

	tests := []struct {
		pos  Position
		wall bool
	}{
		{Position{0, 0}, true},
		{Position{1, 1}, false},
		{Position{13, 23}, false},
		{Position{5, 23}, true},
		{Position{0, 14}, false},
		{Position{27, 14}, false},
		{Position{9, 10}, true},
		{Position{1, 27}, false},
	}
	for _, tt := range tests {
		if got := walls.Has(tt.pos); got != tt.wall {
			t.Errorf("walls.Has(%v) = %v, want %v", tt.pos, got, tt.wall)
		}
	}
}

func TestDerivePellets(t *testing.T) {
	walls := DecodeMaze()
	pellets := DerivePellets(walls)

	if pellets.Len() != BoardSize*BoardSize-walls.Len() {
		t.Fatalf("Expected a pellet on every open cell, got %d", pellets.Len())
	}
	pellets.Each(func(p Position) {
		if walls.Has(p) {
			t.Errorf("Pellet on wall cell %v", p)
		}
	})
}

func TestDerivePowerPellets(t *testing.T) {
	walls := DecodeMaze()
	pellets := DerivePellets(walls)
	power := DerivePowerPellets(walls, pellets)

	if power.Len() != 4 {
		t.Fatalf("Expected 4 power pellets, got %d", power.Len())
	}
	if pellets.Len() != 284 {
		t.Errorf("Expected 284 regular pellets, got %d", pellets.Len())
	}
	for _, p := range powerPelletCells {
		if !power.Has(p) {
			t.Errorf("Missing power pellet at %v", p)
		}
		if pellets.Has(p) {
			t.Errorf("Regular pellet left under power pellet at %v", p)
		}
	}
}

func TestDerivePowerPelletsSkipsWalls(t *testing.T) {
	walls := NewWallSet(Position{1, 3})
	pellets := DerivePellets(walls)
	power := DerivePowerPellets(walls, pellets)

	if power.Has(Position{1, 3}) {
		t.Error("Power pellet placed on a wall")
	}
	if power.Len() != 3 {
		t.Errorf("Expected 3 power pellets, got %d", power.Len())
	}
}
