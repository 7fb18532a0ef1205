package audio

import "github.com/gopxl/beep/v2"

// NullBackend discards all output. It is used when audio is disabled or no
// device is available; Manager state (mute, cues) still behaves normally.
type NullBackend struct{}

// Start does nothing.
func (NullBackend) Start(beep.Streamer, beep.SampleRate) error { return nil }

// Close does nothing.
func (NullBackend) Close() error { return nil }
