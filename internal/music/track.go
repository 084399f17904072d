// Package music provides the beat sources that drive a level: a silent
// wall clock and a WAV player backed by the beep speaker.
package music

// Track is a source of song position measured in beats.
// Implementations are driven from a single goroutine.
type Track interface {
	// Play starts or resumes playback.
	Play() error
	// SeekBeat moves the playhead to the given beat.
	SeekBeat(beat float64) error
	// Beat returns the current position in beats.
	Beat() float64
	// Finished reports whether the song has played to the end.
	Finished() bool
	// SetPaused pauses or resumes playback.
	SetPaused(paused bool)
	// Close releases any audio resources.
	Close() error
}

// BeatAt converts a playback position in seconds to beats.
func BeatAt(seconds, startTime, bpm float64) float64 {
	return (seconds - startTime) * bpm / 60
}

// SecondsAt converts a beat to a playback position in seconds.
func SecondsAt(beat, startTime, bpm float64) float64 {
	return beat*60/bpm + startTime
}
