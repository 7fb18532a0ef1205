package pacman

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func fastRules() Rules {
	return Rules{
		PlayerTick:    5 * time.Millisecond,
		GhostTick:     7 * time.Millisecond,
		PowerDuration: 50 * time.Millisecond,
	}
}

func TestRunnerPublishesUpdates(t *testing.T) {
	var snaps []Snapshot
	var sounds []core.Sound
	r := NewRunner(fastRules(), &fixedSource{dir: Up}, func(s Snapshot, out []core.Sound) {
		snaps = append(snaps, s)
		sounds = append(sounds, out...)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected deadline error, got %v", err)
	}

	if len(snaps) < 2 {
		t.Fatalf("Expected several updates, got %d", len(snaps))
	}
	if snaps[0].Pacman != pacmanStart || snaps[0].Score != 0 {
		t.Errorf("Expected initial snapshot first, got %+v", snaps[0].Pacman)
	}
	last := snaps[len(snaps)-1]
	if last.Pacman != (Position{6, 23}) {
		t.Errorf("Expected pacman at (6,23), got %v", last.Pacman)
	}
	if len(sounds) != 7 {
		t.Errorf("Expected 7 pellet sounds, got %d", len(sounds))
	}
}

func TestRunnerDirection(t *testing.T) {
	var last Snapshot
	r := NewRunner(fastRules(), &fixedSource{dir: Up}, func(s Snapshot, _ []core.Sound) {
		last = s
	})

	r.SetDirection(Up)
	r.SetDirection(Right) // replaces the pending request

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = r.Run(ctx)

	if last.Direction != "right" {
		t.Errorf("Expected direction right, got %q", last.Direction)
	}
	if last.Pacman != (Position{21, 23}) {
		t.Errorf("Expected pacman at (21,23), got %v", last.Pacman)
	}
}

// slowRules never tick during a test.
func slowRules() Rules {
	return Rules{PlayerTick: time.Hour, GhostTick: time.Hour, PowerDuration: time.Hour}
}

func TestRunnerRestart(t *testing.T) {
	var last Snapshot
	updates := 0
	r := NewRunner(slowRules(), &fixedSource{dir: Up}, func(s Snapshot, _ []core.Sound) {
		last = s
		updates++
	})
	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_ = r.Run(ctx)
	}

	// Mid-game restart requests are dropped.
	r.state.Score = 120
	r.Restart()
	run()
	if updates != 1 || last.Score != 120 {
		t.Errorf("Expected restart ignored while playing, got %d updates score=%d", updates, last.Score)
	}

	r.state = r.state.WithDirection(Right)
	r.state.GameOver = true
	r.Restart()
	run()

	// Initial publish plus the restarted game.
	if updates != 3 {
		t.Errorf("Expected 2 more updates after restart, got %d", updates-1)
	}
	if last.GameOver || last.Pacman != pacmanStart || last.Score != 0 || last.Direction != "left" {
		t.Errorf("Expected a fresh game after restart, got %v score=%d over=%v", last.Pacman, last.Score, last.GameOver)
	}
}

func TestNewRunnerNilCallback(t *testing.T) {
	r := NewRunner(fastRules(), &fixedSource{dir: Up}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected canceled error, got %v", err)
	}
}
