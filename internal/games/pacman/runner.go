package pacman

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// UpdateFunc receives a snapshot after every state change, together with
// the sound cues of that change. It runs on the Runner goroutine.
type UpdateFunc func(Snapshot, []core.Sound)

// Runner plays one game on wall-clock time. A single goroutine (Run) owns the
// state; player and ghost tickers, direction input and restart requests are
// all handled there one at a time, so no locking is needed.
type Runner struct {
	state    State
	src      DirectionSource
	dirs     chan Direction
	restart  chan struct{}
	onUpdate UpdateFunc
}

// NewRunner creates a runner for a fresh game with rules r.
func NewRunner(r Rules, src DirectionSource, onUpdate UpdateFunc) *Runner {
	if onUpdate == nil {
		onUpdate = func(Snapshot, []core.Sound) {}
	}
	return &Runner{
		state:    NewState(r),
		src:      src,
		dirs:     make(chan Direction, 1),
		restart:  make(chan struct{}, 1),
		onUpdate: onUpdate,
	}
}

// SetDirection requests a direction change. It never blocks; if an earlier
// request has not been applied yet it is replaced.
func (r *Runner) SetDirection(d Direction) {
	select {
	case <-r.dirs:
	default:
	}
	select {
	case r.dirs <- d:
	default:
	}
}

// Restart requests a brand new game. It never blocks. The request is
// ignored unless the game is over.
func (r *Runner) Restart() {
	select {
	case r.restart <- struct{}{}:
	default:
	}
}

// Run drives the game until ctx is done. Both tickers are stopped before Run
// returns. The initial state is published before the first tick.
func (r *Runner) Run(ctx context.Context) error {
	playerTicker := time.NewTicker(r.state.Rules.PlayerTick)
	defer playerTicker.Stop()
	ghostTicker := time.NewTicker(r.state.Rules.GhostTick)
	defer ghostTicker.Stop()

	r.onUpdate(r.state.Snapshot(), nil)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-playerTicker.C:
			r.tick()
		case <-ghostTicker.C:
			r.tick()
		case d := <-r.dirs:
			r.state = r.state.WithDirection(d)
		case <-r.restart:
			if !r.state.GameOver {
				continue
			}
			r.state = NewState(r.state.Rules)
			r.onUpdate(r.state.Snapshot(), nil)
		}
	}
}

func (r *Runner) tick() {
	if r.state.GameOver {
		return
	}
	var sounds []core.Sound
	r.state, sounds = Step(r.state, r.src)
	r.onUpdate(r.state.Snapshot(), sounds)
}
