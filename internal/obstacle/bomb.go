package obstacle

import (
	"math"

	"github.com/vovakirdan/beat-arcade/internal/collide"
	"github.com/vovakirdan/beat-arcade/internal/core"
)

// Bomb drifts from Start towards End while its radius grows, and bursts into
// a ring of pellets when its lifetime runs out.
type Bomb struct {
	Base

	Start, End    core.Vec2
	Lifetime      float64
	RadiusPerBeat float64

	ProjectileCount  int
	ProjectileRadius float64
	ProjectileSpeed  float64

	// Bounds is passed on to the pellets. Zero means the arena.
	Bounds core.Vec2
}

// Pos returns the bomb centre. It starts exactly at Start and approaches End
// as the beat grows.
func (b *Bomb) Pos(beat float64) core.Vec2 {
	return b.End.Lerp(b.Start, 1/(beat+1))
}

// Radius returns the bomb radius at beat.
func (b *Bomb) Radius(beat float64) float64 {
	return b.RadiusPerBeat * beat
}

// Draw blinks between the foreground and white, faster towards the end.
func (b *Bomb) Draw(canvas Canvas, main core.Color, beat float64) {
	color := core.White
	if math.Mod(beat*beat/b.Lifetime, 0.5) > 0.25 {
		color = main
	}
	canvas.Circle(b.Pos(beat), b.Radius(beat), color)
}

// Collides implements Behaviour.
func (b *Bomb) Collides(beat float64, pos core.Vec2, radius float64) bool {
	return collide.CircleCircle(pos, radius, b.Pos(beat), b.Radius(beat))
}

// ShouldEnable implements Behaviour.
func (b *Bomb) ShouldEnable(beat float64) bool {
	return beat > 0 && beat < b.Lifetime
}

// ShouldKill is true once the beat passes Lifetime.
func (b *Bomb) ShouldKill(beat float64) bool {
	return beat > b.Lifetime
}

// Kill spawns ProjectileCount pellets at evenly spaced angles.
func (b *Bomb) Kill(shared *Shared, beat float64) {
	pos := b.Pos(beat)
	for i := 0; i < b.ProjectileCount; i++ {
		angle := float64(i) / float64(b.ProjectileCount) * 2 * math.Pi
		velocity := core.V(math.Sin(angle), math.Cos(angle)).Scale(b.ProjectileSpeed)
		pellet := NewPellet(b.ProjectileRadius, pos, velocity)
		pellet.Bounds = b.Bounds
		shared.Spawn(New(0, pellet))
	}
}

// Clone implements Behaviour.
func (b *Bomb) Clone() Behaviour {
	c := *b
	return &c
}
