package audio

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// note is one tone of a cue. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// cueNotes describes the tone sequence of every cue.
var cueNotes = map[core.Sound][]note{
	core.SoundPellet: {
		{freq: 523, dur: 35 * time.Millisecond},
		{freq: 392, dur: 35 * time.Millisecond},
	},
	core.SoundPowerPellet: {
		{freq: 392, dur: 70 * time.Millisecond},
		{freq: 523, dur: 70 * time.Millisecond},
		{freq: 659, dur: 70 * time.Millisecond},
		{freq: 784, dur: 120 * time.Millisecond},
	},
	core.SoundDeath: {
		{freq: 784, dur: 90 * time.Millisecond},
		{freq: 698, dur: 90 * time.Millisecond},
		{freq: 587, dur: 90 * time.Millisecond},
		{freq: 494, dur: 90 * time.Millisecond},
		{freq: 0, dur: 60 * time.Millisecond},
		{freq: 392, dur: 120 * time.Millisecond},
		{freq: 262, dur: 240 * time.Millisecond},
	},
}

// sirenNotes is the background loop played while a game is running.
var sirenNotes = []note{
	{freq: 220, dur: 180 * time.Millisecond},
	{freq: 262, dur: 180 * time.Millisecond},
}

// cueFormat is the format of the synthesized buffers.
var cueFormat = beep.Format{SampleRate: SampleRate, NumChannels: 1, Precision: 2}

// synthesize renders notes into a replayable buffer.
func synthesize(notes []note) (*beep.Buffer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := SampleRate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, &effects.Volume{
			Streamer: beep.Take(samples, tone),
			Base:     2,
			Volume:   -2,
		})
	}

	buf := beep.NewBuffer(cueFormat)
	buf.Append(beep.Seq(parts...))
	return buf, nil
}
