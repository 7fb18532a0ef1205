//go:build linux

package audio

import (
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/jfreymuth/pulse"
)

// PulseBackend plays through a PulseAudio (or PipeWire) server.
type PulseBackend struct {
	mu     sync.Mutex
	client *pulse.Client
	stream *pulse.PlaybackStream
}

// NewDeviceBackend returns the default output backend for this platform.
func NewDeviceBackend() Backend {
	return &PulseBackend{}
}

// Start connects to the server and starts a mono playback stream.
func (b *PulseBackend) Start(s beep.Streamer, sr beep.SampleRate) error {
	client, err := pulse.NewClient()
	if err != nil {
		return err
	}

	stream, err := client.NewPlayback(
		pulse.Float32Reader(float32Reader(s)),
		pulse.PlaybackSampleRate(int(sr)),
		pulse.PlaybackLatency(0.03),
	)
	if err != nil {
		client.Close()
		return err
	}
	stream.Start()

	b.mu.Lock()
	b.client, b.stream = client, stream
	b.mu.Unlock()
	return nil
}

// Close stops the stream and disconnects.
func (b *PulseBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stream != nil {
		b.stream.Close()
		b.stream = nil
	}
	if b.client != nil {
		b.client.Close()
		b.client = nil
	}
	return nil
}

// float32Reader adapts a beep.Streamer to the mono float32 callback the
// pulse client pulls from.
func float32Reader(s beep.Streamer) func([]float32) (int, error) {
	buf := make([][2]float64, bufferSize())
	return func(out []float32) (int, error) {
		frames := min(len(out), len(buf))
		n, ok := s.Stream(buf[:frames])
		if !ok {
			return 0, pulse.EndOfData
		}
		for i := 0; i < n; i++ {
			out[i] = float32(buf[i][0])
		}
		return n, nil
	}
}
