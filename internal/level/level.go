// Package level runs a set of obstacles against the song beat.
//
// A Level owns its obstacles, the camera shake and jerk they produce and the
// current foreground and background colour providers. It is driven by calling
// Update once per frame with the current beat, then Collide and Draw.
package level

import (
	"github.com/vovakirdan/beat-arcade/internal/core"
	"github.com/vovakirdan/beat-arcade/internal/obstacle"
	"github.com/vovakirdan/beat-arcade/internal/provider"
)

// DefaultDecayRate is the fraction of shake and jerk left after one beat.
const DefaultDecayRate = 0.1

// Default colours of a freshly built level.
var (
	DefaultForeground = core.Pink
	DefaultBackground = core.Black
)

// Target is anything with a circular hitbox.
type Target interface {
	Hitbox() (pos core.Vec2, radius float64)
}

// Factory builds a fresh level. Restarting after a death calls it again so
// no obstacle state survives between attempts.
type Factory func() *Level

// Level is a running obstacle timeline.
type Level struct {
	// Meta describes the song and checkpoints. The level itself never reads it.
	Meta Metadata
	// DecayRate controls how quickly shake and jerk fade.
	DecayRate float64

	obstacles  []*obstacle.Obstacle
	shake      float64
	jerk       core.Vec2
	foreground provider.Provider[core.Color]
	background provider.Provider[core.Color]
	lastBeat   float64
	spawned    int
}

// New creates a level from obstacles anchored at their global beats.
func New(meta Metadata, obstacles []*obstacle.Obstacle) *Level {
	return &Level{
		Meta:       meta,
		DecayRate:  DefaultDecayRate,
		obstacles:  obstacles,
		foreground: provider.Const(DefaultForeground),
		background: provider.Const(DefaultBackground),
	}
}

// Update advances the level to beat.
//
// Every obstacle is updated, finished obstacles are killed and removed, and
// only then are the collected effects applied: shake and jerk are added,
// colour overrides replace the current providers and spawned obstacles are
// anchored at beat and appended. Removal does not preserve order.
func (l *Level) Update(beat float64) {
	dt := beat - l.lastBeat
	l.shake = core.TimeIndependentLerp(l.shake, 0, l.DecayRate, dt)
	l.jerk = core.TimeIndependentVecLerp(l.jerk, core.Vec2{}, l.DecayRate, dt)

	shared := l.step(beat)

	l.shake += shared.Shake()
	l.jerk = l.jerk.Add(shared.Jerk())
	l.applyColors(shared)

	for _, o := range shared.Spawned() {
		o.Offset += beat
		l.obstacles = append(l.obstacles, o)
		l.spawned++
	}
	l.lastBeat = beat
}

// FastForward brings obstacle state up to beat after a seek. Obstacles are
// updated and culled once, but only colour overrides are kept: camera
// effects and spawns from the skipped span are dropped.
func (l *Level) FastForward(beat float64) {
	shared := l.step(beat)
	l.applyColors(shared)
	l.lastBeat = beat
}

// step runs the update and sweep phases into a fresh buffer.
func (l *Level) step(beat float64) *obstacle.Shared {
	shared := obstacle.NewShared()
	for _, o := range l.obstacles {
		o.Update(shared, beat)
	}

	for i := 0; i < len(l.obstacles); {
		o := l.obstacles[i]
		if !o.ShouldKill(beat) {
			i++
			continue
		}
		o.Kill(shared, beat)
		last := len(l.obstacles) - 1
		l.obstacles[i] = l.obstacles[last]
		l.obstacles[last] = nil
		l.obstacles = l.obstacles[:last]
	}
	return shared
}

func (l *Level) applyColors(shared *obstacle.Shared) {
	if bg := shared.Background(); bg != nil {
		l.background = bg
	}
	if fg := shared.Foreground(); fg != nil {
		l.foreground = fg
	}
}

// Collides reports whether any obstacle hits a circle at pos. It stops at
// the first hit.
func (l *Level) Collides(beat float64, pos core.Vec2, radius float64) bool {
	for _, o := range l.obstacles {
		if o.Collides(beat, pos, radius) {
			return true
		}
	}
	return false
}

// Collide reports whether any obstacle hits target.
func (l *Level) Collide(target Target, beat float64) bool {
	pos, radius := target.Hitbox()
	return l.Collides(beat, pos, radius)
}

// Draw renders every enabled obstacle. The foreground colour is sampled once
// per call.
func (l *Level) Draw(canvas obstacle.Canvas, beat float64) {
	main := l.foreground.Get(beat)
	for _, o := range l.obstacles {
		o.Draw(canvas, main, beat)
	}
}

// Foreground returns the foreground colour at beat.
func (l *Level) Foreground(beat float64) core.Color {
	return l.foreground.Get(beat)
}

// Background returns the background colour at beat.
func (l *Level) Background(beat float64) core.Color {
	return l.background.Get(beat)
}

// Shake returns the current camera shake magnitude.
func (l *Level) Shake() float64 { return l.shake }

// Jerk returns the current camera jerk offset.
func (l *Level) Jerk() core.Vec2 { return l.jerk }

// Len returns the number of live obstacles.
func (l *Level) Len() int { return len(l.obstacles) }

// Obstacles returns the live obstacles. The slice is owned by the level and
// is only valid until the next Update.
func (l *Level) Obstacles() []*obstacle.Obstacle { return l.obstacles }

// LastBeat returns the beat of the most recent Update or FastForward.
func (l *Level) LastBeat() float64 { return l.lastBeat }

// SimStats summarises a headless run.
type SimStats struct {
	Ticks    int
	Spawned  int
	Peak     int
	PeakBeat float64
	Left     int
}

// Simulate steps the level from from to to in increments of step without
// drawing. It is used to sanity-check authored levels.
func (l *Level) Simulate(from, to, step float64) SimStats {
	var stats SimStats
	if step <= 0 {
		return stats
	}
	before := l.spawned
	for beat := from; beat <= to; beat += step {
		l.Update(beat)
		stats.Ticks++
		if n := l.Len(); n > stats.Peak {
			stats.Peak = n
			stats.PeakBeat = beat
		}
	}
	stats.Spawned = l.spawned - before
	stats.Left = l.Len()
	return stats
}
