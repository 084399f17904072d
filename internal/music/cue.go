package music

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue is a short synthesised sound effect layered over the song.
type Cue int

const (
	CueHit Cue = iota
	CueDeath
	CueCheckpoint
)

// Cuer is implemented by tracks that can play sound effects.
type Cuer interface {
	Cue(c Cue)
}

type cueTone struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var cueTones = map[Cue][]cueTone{
	CueHit:        {{freq: 220, duration: 60 * time.Millisecond, volume: 0.5}},
	CueDeath:      {{freq: 330, duration: 90 * time.Millisecond, volume: 0.5}, {freq: 165, duration: 180 * time.Millisecond, volume: 0.5}},
	CueCheckpoint: {{freq: 880, duration: 70 * time.Millisecond, volume: 0.35}, {freq: 1320, duration: 110 * time.Millisecond, volume: 0.35}},
}

// CueStreamer builds the streamer for c at the given sample rate.
// It returns nil for unknown cues.
func CueStreamer(sr beep.SampleRate, c Cue) beep.Streamer {
	tones, ok := cueTones[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sr, t.freq)
		if err != nil {
			continue
		}
		parts = append(parts, volume(beep.Take(sr.N(t.duration), sine), t.volume))
	}
	if len(parts) == 0 {
		return nil
	}
	return beep.Seq(parts...)
}

// volume scales a streamer linearly; math.Log2(0) is -Inf so 0 is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Cue plays a sound effect on the speaker alongside the song.
func (p *Player) Cue(c Cue) {
	if s := CueStreamer(SpeakerRate, c); s != nil {
		speaker.Play(s)
	}
}
