package pacman

import (
	"testing"
	"time"
)

func TestDriverClocks(t *testing.T) {
	d := NewDriver(NewState(DefaultRules()), &fixedSource{dir: Up})

	// Player fires at 150, 300, 450, 600; ghosts at 200, 400, 600.
	d.Advance(600 * time.Millisecond)

	if d.Ticks() != 7 {
		t.Errorf("Expected 7 ticks, got %d", d.Ticks())
	}
	if d.State().Pacman != (Position{6, 23}) {
		t.Errorf("Expected pacman at (6,23), got %v", d.State().Pacman)
	}
}

func TestDriverSmallSteps(t *testing.T) {
	d := NewDriver(NewState(DefaultRules()), &fixedSource{dir: Up})

	for i := 0; i < 60; i++ {
		d.Advance(10 * time.Millisecond)
	}
	if d.Ticks() != 7 {
		t.Errorf("Expected 7 ticks after 60 frames of 10ms, got %d", d.Ticks())
	}

	// Nothing is due until 750ms.
	d.Advance(149 * time.Millisecond)
	if d.Ticks() != 7 {
		t.Errorf("Expected no tick before 750ms, got %d", d.Ticks())
	}
	d.Advance(time.Millisecond)
	if d.Ticks() != 8 {
		t.Errorf("Expected tick at 750ms, got %d", d.Ticks())
	}
}

func TestDriverSetDirection(t *testing.T) {
	d := NewDriver(NewState(DefaultRules()), &fixedSource{dir: Up})

	d.SetDirection(Right)
	d.Advance(DefaultPlayerTick)

	if d.State().Pacman != (Position{14, 23}) {
		t.Errorf("Expected pacman at (14,23), got %v", d.State().Pacman)
	}
}

func TestDriverStopsAfterGameOver(t *testing.T) {
	s := NewState(DefaultRules())
	s.Ghosts[0] = Ghost{Pos: Position{11, 23}, Dir: Right}
	d := NewDriver(s, &fixedSource{dir: Up})

	d.Advance(DefaultPlayerTick)
	if !d.State().GameOver {
		t.Fatal("Expected game over")
	}

	sounds := d.Advance(5 * time.Second)
	if d.Ticks() != 1 {
		t.Errorf("Expected no ticks after game over, got %d", d.Ticks())
	}
	if len(sounds) != 0 {
		t.Errorf("Expected no sounds after game over, got %v", sounds)
	}

	d.Restart(NewState(DefaultRules()))
	if d.State().GameOver || d.Ticks() != 0 {
		t.Error("Restart did not reset the driver")
	}
	d.Advance(DefaultPlayerTick)
	if d.Ticks() != 1 {
		t.Errorf("Expected clocks rewound on restart, got %d ticks", d.Ticks())
	}
}

func TestDriverZeroRules(t *testing.T) {
	s := NewState(DefaultRules())
	s.Rules = Rules{}
	d := NewDriver(s, &fixedSource{dir: Up})

	d.Advance(600 * time.Millisecond)

	if d.State().Rules != DefaultRules() {
		t.Errorf("Expected default rules, got %+v", d.State().Rules)
	}
	if d.Ticks() != 7 {
		t.Errorf("Expected 7 ticks with default clocks, got %d", d.Ticks())
	}
}
