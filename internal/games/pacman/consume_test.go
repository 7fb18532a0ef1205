package pacman

import "testing"

func TestConsumePellet(t *testing.T) {
	pellets := NewPelletSet(Position{1, 1}, Position{2, 1})

	left, points := ConsumePellet(Position{1, 1}, pellets)
	if points != PelletPoints {
		t.Errorf("Expected %d points, got %d", PelletPoints, points)
	}
	if left.Has(Position{1, 1}) || left.Len() != 1 {
		t.Errorf("Expected pellet removed, %d left", left.Len())
	}
	// The original set is untouched.
	if !pellets.Has(Position{1, 1}) || pellets.Len() != 2 {
		t.Error("ConsumePellet modified its input")
	}

	same, points := ConsumePellet(Position{9, 9}, pellets)
	if points != 0 || same.Len() != 2 {
		t.Errorf("Expected miss, got %d points and %d pellets", points, same.Len())
	}
}

func TestConsumePowerPellet(t *testing.T) {
	power := NewPelletSet(Position{1, 3})

	left, ok := ConsumePowerPellet(Position{1, 3}, power)
	if !ok || left.Len() != 0 {
		t.Errorf("Expected activation and empty set, got %v / %d", ok, left.Len())
	}
	if power.Len() != 1 {
		t.Error("ConsumePowerPellet modified its input")
	}

	if _, ok := ConsumePowerPellet(Position{2, 3}, power); ok {
		t.Error("Expected no activation off the power pellet")
	}
}
