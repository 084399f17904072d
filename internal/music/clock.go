package music

import (
	"errors"
	"time"
)

// Clock is a silent Track that advances with wall time.
// Levels without a song (or runs with audio disabled) use it.
type Clock struct {
	BPM       float64
	StartTime float64
	Length    float64 // in beats; 0 means the clock never finishes

	now     func() time.Time
	started bool
	paused  bool
	anchor  time.Time // wall time at which position was recorded
	pos     float64   // seconds into the song at anchor
}

// NewClock creates a stopped clock positioned at the start of the song.
func NewClock(bpm, startTime, length float64) *Clock {
	return &Clock{
		BPM:       bpm,
		StartTime: startTime,
		Length:    length,
		now:       time.Now,
	}
}

// WithNow replaces the time source. Tests use it to step time manually.
func (c *Clock) WithNow(now func() time.Time) *Clock {
	c.now = now
	return c
}

// Play starts the clock. Calling Play on a running clock is a no-op.
func (c *Clock) Play() error {
	if c.BPM <= 0 {
		return errors.New("music: clock needs a positive bpm")
	}
	if c.started {
		return nil
	}
	c.started = true
	c.anchor = c.now()
	return nil
}

func (c *Clock) seconds() float64 {
	if !c.started || c.paused {
		return c.pos
	}
	return c.pos + c.now().Sub(c.anchor).Seconds()
}

// SeekBeat moves the clock to beat, keeping its running state.
func (c *Clock) SeekBeat(beat float64) error {
	c.pos = SecondsAt(beat, c.StartTime, c.BPM)
	c.anchor = c.now()
	return nil
}

// Beat returns the current position in beats.
func (c *Clock) Beat() float64 {
	return BeatAt(c.seconds(), c.StartTime, c.BPM)
}

// Finished reports whether Length beats have elapsed.
func (c *Clock) Finished() bool {
	return c.Length > 0 && c.Beat() >= c.Length
}

// SetPaused freezes or resumes the clock.
func (c *Clock) SetPaused(paused bool) {
	if paused == c.paused {
		return
	}
	c.pos = c.seconds()
	c.anchor = c.now()
	c.paused = paused
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool {
	return c.paused
}

// Close is a no-op.
func (c *Clock) Close() error {
	return nil
}
