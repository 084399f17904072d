package level

import (
	"errors"
	"fmt"
	"slices"
)

// Metadata describes the song a level is played to. It is carried along
// with the level for the player and audio layers.
type Metadata struct {
	ID   string
	Name string

	// Song holds encoded WAV data. Empty means the level plays silently
	// against a wall clock.
	Song []byte

	BPM float64
	// StartTime is the position in the song, in seconds, of beat zero.
	StartTime float64
	// Length is the number of beats after which the level is complete when
	// no song is attached.
	Length float64
	// Checkpoints are ascending beats a restart can resume from.
	Checkpoints []float64
}

// Validate checks the fields the beat clock depends on.
func (m Metadata) Validate() error {
	var errs []error
	if m.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if m.BPM <= 0 {
		errs = append(errs, fmt.Errorf("bpm must be positive, got %v", m.BPM))
	}
	if m.Length <= 0 && len(m.Song) == 0 {
		errs = append(errs, errors.New("length must be positive for a level without a song"))
	}
	if !slices.IsSorted(m.Checkpoints) {
		errs = append(errs, errors.New("checkpoints must be ascending"))
	}
	return errors.Join(errs...)
}

// SecondsToBeats converts a duration to beats at the level tempo.
func (m Metadata) SecondsToBeats(seconds float64) float64 {
	return seconds * m.BPM / 60
}

// BeatsToSeconds converts beats to a duration at the level tempo.
func (m Metadata) BeatsToSeconds(beats float64) float64 {
	return beats / m.BPM * 60
}

// InitialCheckpoint is the beat a fresh attempt starts from: the very start
// of the song, nudged slightly forward.
func (m Metadata) InitialCheckpoint() float64 {
	return -m.SecondsToBeats(m.StartTime - 0.01)
}
