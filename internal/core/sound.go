package core

// Sound is a discrete audio cue emitted by a game.
// The platform forwards cues to an audio collaborator; games never play
// sounds themselves.
type Sound int

const (
	SoundNone Sound = iota
	SoundPellet
	SoundPowerPellet
	SoundDeath
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundPellet:
		return "pellet"
	case SoundPowerPellet:
		return "power_pellet"
	case SoundDeath:
		return "death"
	default:
		return "none"
	}
}
