//go:build !linux

package audio

import (
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// SpeakerBackend plays through the beep speaker package.
type SpeakerBackend struct{}

// NewDeviceBackend returns the default output backend for this platform.
func NewDeviceBackend() Backend {
	return SpeakerBackend{}
}

// Start initializes the speaker and plays s.
func (SpeakerBackend) Start(s beep.Streamer, sr beep.SampleRate) error {
	if err := speaker.Init(sr, bufferSize()); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

// Close shuts the speaker down.
func (SpeakerBackend) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}
