// Package obstacle implements the hazards that make up a level.
//
// Every obstacle is a function of a single beat value. An Obstacle pairs a
// Behaviour with the global beat it was spawned at and translates the global
// beat into the behaviour's local beat for every call. Behaviours never touch
// the level directly; they record their effects in a Shared buffer which the
// level applies once every obstacle has run.
package obstacle

import "github.com/vovakirdan/beat-arcade/internal/core"

// Behaviour is the per-variant logic of an obstacle. All beats passed in are
// local: zero is the moment the obstacle becomes dangerous, negative beats
// are its warning window.
type Behaviour interface {
	// Update advances internal state and records effects in shared.
	Update(shared *Shared, beat float64)
	// Draw renders the obstacle using main as the level's foreground colour.
	Draw(canvas Canvas, main core.Color, beat float64)
	// Collides reports whether a circle at pos with radius hits the obstacle.
	Collides(beat float64, pos core.Vec2, radius float64) bool
	// ShouldEnable reports whether Update, Draw and Collides run at beat.
	ShouldEnable(beat float64) bool
	// ShouldKill reports whether the obstacle is finished at beat.
	ShouldKill(beat float64) bool
	// Kill is called once, right before the obstacle is removed.
	Kill(shared *Shared, beat float64)
	// Clone returns an independent deep copy.
	Clone() Behaviour
}

// Base provides the default Behaviour methods. Embed it and implement Draw,
// ShouldKill and Clone.
type Base struct{}

// Update does nothing.
func (Base) Update(*Shared, float64) {}

// Collides never reports a hit.
func (Base) Collides(float64, core.Vec2, float64) bool { return false }

// ShouldEnable is true once the local beat is positive.
func (Base) ShouldEnable(beat float64) bool { return beat > 0 }

// Kill does nothing.
func (Base) Kill(*Shared, float64) {}

// Obstacle is a Behaviour anchored at a global beat.
type Obstacle struct {
	// Offset is the global beat at which the local beat is zero.
	Offset    float64
	Behaviour Behaviour
}

// New creates an obstacle whose local beat is zero at offset.
func New(offset float64, b Behaviour) *Obstacle {
	return &Obstacle{Offset: offset, Behaviour: b}
}

func (o *Obstacle) local(beat float64) float64 {
	return beat - o.Offset
}

// ShouldEnable reports whether the behaviour is active at global beat.
func (o *Obstacle) ShouldEnable(beat float64) bool {
	return o.Behaviour.ShouldEnable(o.local(beat))
}

// Update runs the behaviour's update if it is enabled.
func (o *Obstacle) Update(shared *Shared, beat float64) {
	if o.ShouldEnable(beat) {
		o.Behaviour.Update(shared, o.local(beat))
	}
}

// Draw renders the behaviour if it is enabled.
func (o *Obstacle) Draw(canvas Canvas, main core.Color, beat float64) {
	if o.ShouldEnable(beat) {
		o.Behaviour.Draw(canvas, main, o.local(beat))
	}
}

// Collides reports a hit only while the behaviour is enabled.
func (o *Obstacle) Collides(beat float64, pos core.Vec2, radius float64) bool {
	return o.ShouldEnable(beat) && o.Behaviour.Collides(o.local(beat), pos, radius)
}

// ShouldKill is not gated by ShouldEnable: an obstacle can expire before its
// window ever opens.
func (o *Obstacle) ShouldKill(beat float64) bool {
	return o.Behaviour.ShouldKill(o.local(beat))
}

// Kill forwards to the behaviour. Like ShouldKill it ignores ShouldEnable.
func (o *Obstacle) Kill(shared *Shared, beat float64) {
	o.Behaviour.Kill(shared, o.local(beat))
}

// Clone returns a copy with its own behaviour state.
func (o *Obstacle) Clone() *Obstacle {
	return &Obstacle{Offset: o.Offset, Behaviour: o.Behaviour.Clone()}
}
