package obstacle

import (
	"github.com/vovakirdan/beat-arcade/internal/collide"
	"github.com/vovakirdan/beat-arcade/internal/core"
	"github.com/vovakirdan/beat-arcade/internal/provider"
)

// Circle is a round projectile following a position provider. Without a
// lifetime it lives until it leaves the arena.
type Circle struct {
	Position provider.Provider[core.Vec2]
	Radius   float64
	// Lifetime is when the circle dies. Zero means it dies off screen.
	Lifetime float64
	// Bounds is the area the circle must stay near. Zero means the arena.
	Bounds core.Vec2
}

// NewPellet creates an off-screen-culled circle moving in a straight line.
func NewPellet(radius float64, start, velocity core.Vec2) *Circle {
	return &Circle{
		Position: provider.Velocity{Start: start, Velocity: velocity},
		Radius:   radius,
	}
}

// Update does nothing.
func (c *Circle) Update(*Shared, float64) {}

// Draw implements Behaviour.
func (c *Circle) Draw(canvas Canvas, main core.Color, beat float64) {
	canvas.Circle(c.Position.Get(beat), c.Radius, main)
}

// Collides implements Behaviour.
func (c *Circle) Collides(beat float64, pos core.Vec2, radius float64) bool {
	return collide.CircleCircle(pos, radius, c.Position.Get(beat), c.Radius)
}

// ShouldEnable is always true; circles have no warning window.
func (c *Circle) ShouldEnable(float64) bool { return true }

// ShouldKill implements Behaviour.
func (c *Circle) ShouldKill(beat float64) bool {
	if c.Lifetime > 0 {
		return beat > c.Lifetime
	}

	bounds := c.Bounds
	if bounds.IsZero() {
		bounds = core.ArenaSize()
	}
	pos := c.Position.Get(beat)
	return pos.X < -c.Radius || pos.Y < -c.Radius ||
		pos.X > bounds.X+c.Radius || pos.Y > bounds.Y+c.Radius
}

// Kill does nothing.
func (c *Circle) Kill(*Shared, float64) {}

// Clone implements Behaviour.
func (c *Circle) Clone() Behaviour {
	cp := *c
	cp.Position = provider.Clone(c.Position)
	return &cp
}
