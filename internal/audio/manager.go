// Package audio plays the game's sound cues. Cues are short synthesized tone
// sequences mixed into a single output stream; the output device is a
// pluggable Backend (PulseAudio on Linux, the beep speaker elsewhere).
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// SampleRate is the output rate of every cue and backend.
const SampleRate = beep.SampleRate(44100)

// ErrUnknownCue is returned by Play for a sound with no cue.
var ErrUnknownCue = errors.New("audio: unknown cue")

// Backend sends the mixed stream to an output device.
type Backend interface {
	// Start begins pulling samples from s until Close.
	Start(s beep.Streamer, sr beep.SampleRate) error
	Close() error
}

// Manager owns the mixer and the synthesized cue buffers.
type Manager struct {
	mu      sync.Mutex
	cues    map[core.Sound]*beep.Buffer
	playing map[core.Sound]*beep.Ctrl
	mix     *beep.Mixer
	vol     *effects.Volume // master volume
	siren   *beep.Ctrl      // background loop, paused when off or muted
	sirenOn bool
	muted   bool
	backend Backend
}

// NewManager builds the cues and starts the backend. volumeDB is the master
// volume in dB (0 leaves cues unchanged).
func NewManager(backend Backend, volumeDB float64) (*Manager, error) {
	mgr := &Manager{
		cues:    make(map[core.Sound]*beep.Buffer),
		playing: make(map[core.Sound]*beep.Ctrl),
		mix:     &beep.Mixer{},
		backend: backend,
	}
	mgr.vol = &effects.Volume{
		Streamer: mgr.mix,
		Base:     2,
		Volume:   volumeDB,
	}

	for sound, notes := range cueNotes {
		buf, err := synthesize(notes)
		if err != nil {
			return nil, fmt.Errorf("audio: cannot build %s cue: %w", sound, err)
		}
		mgr.cues[sound] = buf
	}

	sirenBuf, err := synthesize(sirenNotes)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot build siren: %w", err)
	}
	mgr.siren = &beep.Ctrl{
		Streamer: beep.Loop(-1, sirenBuf.Streamer(0, sirenBuf.Len())),
		Paused:   true,
	}
	mgr.mix.Add(mgr.siren)

	if err := backend.Start(&lockedStreamer{mgr: mgr}, SampleRate); err != nil {
		return nil, fmt.Errorf("audio: cannot start backend: %w", err)
	}
	return mgr, nil
}

// Play starts the cue for s from the beginning, interrupting a cue of the
// same sound that is still playing. Playing while muted is a no-op.
func (mgr *Manager) Play(s core.Sound) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	buf, ok := mgr.cues[s]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCue, s)
	}
	if mgr.muted {
		return nil
	}

	if ctrl, exists := mgr.playing[s]; exists {
		ctrl.Streamer = nil
	}

	ctrl := &beep.Ctrl{Streamer: buf.Streamer(0, buf.Len())}
	mgr.mix.Add(ctrl)
	mgr.playing[s] = ctrl
	return nil
}

// PlayAll plays every cue in sounds. Unknown cues are skipped.
func (mgr *Manager) PlayAll(sounds []core.Sound) {
	for _, s := range sounds {
		_ = mgr.Play(s)
	}
}

// SetMuted silences or restores the output. Muting also drops cues that are
// in flight.
func (mgr *Manager) SetMuted(muted bool) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	mgr.muted = muted
	mgr.vol.Silent = muted
	mgr.siren.Paused = muted || !mgr.sirenOn
	if muted {
		for s, ctrl := range mgr.playing {
			ctrl.Streamer = nil
			delete(mgr.playing, s)
		}
	}
}

// ToggleMute flips the mute state and returns the new value.
func (mgr *Manager) ToggleMute() bool {
	mgr.mu.Lock()
	muted := !mgr.muted
	mgr.mu.Unlock()

	mgr.SetMuted(muted)
	return muted
}

// SetSiren starts or stops the background loop. While muted the loop stays
// paused and resumes on unmute.
func (mgr *Manager) SetSiren(on bool) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	mgr.sirenOn = on
	mgr.siren.Paused = mgr.muted || !on
}

// Muted reports whether output is muted.
func (mgr *Manager) Muted() bool {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.muted
}

// Close stops the backend.
func (mgr *Manager) Close() error {
	return mgr.backend.Close()
}

// lockedStreamer guards the mixer against concurrent Play calls. It never
// drains: when nothing is playing it produces silence.
type lockedStreamer struct {
	mgr *Manager
}

func (l *lockedStreamer) Stream(samples [][2]float64) (int, bool) {
	l.mgr.mu.Lock()
	defer l.mgr.mu.Unlock()

	n, _ := l.mgr.vol.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (l *lockedStreamer) Err() error { return nil }

// bufferSize is the backend buffer length used for low latency cues.
func bufferSize() int {
	return SampleRate.N(time.Second / 20)
}
