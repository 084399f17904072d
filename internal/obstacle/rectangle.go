package obstacle

import (
	"math"

	"github.com/vovakirdan/beat-arcade/internal/collide"
	"github.com/vovakirdan/beat-arcade/internal/core"
	"github.com/vovakirdan/beat-arcade/internal/provider"
)

// Rectangle is a rotated box. It blinks faded during Warn, pops in slightly
// oversized at beat zero and shrinks away over the last Leave beats.
type Rectangle struct {
	Center   provider.Provider[core.Vec2]
	Size     provider.Provider[core.Vec2]
	Rotation provider.Provider[float64]

	Lifetime float64
	Warn     float64
	Leave    float64
}

// SizeFactor scales Size for drawing. Collision caps it at 1.
func (r *Rectangle) SizeFactor(beat float64) float64 {
	switch {
	case 0 <= beat && beat < 0.5:
		return 1.25 - beat*0.5
	case -r.Leave <= beat-r.Lifetime && beat-r.Lifetime < 0:
		return (r.Lifetime - beat) / r.Leave
	default:
		return 1
	}
}

// ColorMixFactor is how far the foreground is mixed towards white.
func (r *Rectangle) ColorMixFactor(beat float64) float64 {
	switch {
	case 0 <= beat && beat < 0.5:
		return 1 - beat*2
	case beat < 0:
		return math.Sin(beat*2*math.Pi)*0.5 + 0.5
	default:
		return 0
	}
}

// Update does nothing.
func (r *Rectangle) Update(*Shared, float64) {}

// Draw implements Behaviour.
func (r *Rectangle) Draw(canvas Canvas, main core.Color, beat float64) {
	color := main.Mix(core.White, r.ColorMixFactor(beat))
	if beat < 0 {
		color = color.Faded()
		color.A *= (beat + r.Warn) / r.Warn * 1.5
	}
	canvas.RotatedRect(
		r.Center.Get(beat),
		r.Size.Get(beat).Scale(r.SizeFactor(beat)),
		r.Rotation.Get(beat),
		color,
	)
}

// Collides is false during the warning window.
func (r *Rectangle) Collides(beat float64, pos core.Vec2, radius float64) bool {
	return beat > 0 && collide.CircleRectangle(
		pos,
		radius,
		r.Center.Get(beat),
		r.Size.Get(beat).Scale(min(r.SizeFactor(beat), 1)),
		-r.Rotation.Get(beat),
	)
}

// ShouldEnable opens with the warning window.
func (r *Rectangle) ShouldEnable(beat float64) bool {
	return beat > -r.Warn
}

// ShouldKill is true after Lifetime.
func (r *Rectangle) ShouldKill(beat float64) bool {
	return beat > r.Lifetime
}

// Kill does nothing.
func (r *Rectangle) Kill(*Shared, float64) {}

// Clone implements Behaviour.
func (r *Rectangle) Clone() Behaviour {
	return &Rectangle{
		Center:   provider.Clone(r.Center),
		Size:     provider.Clone(r.Size),
		Rotation: provider.Clone(r.Rotation),
		Lifetime: r.Lifetime,
		Warn:     r.Warn,
		Leave:    r.Leave,
	}
}

// spawnedLeave is the retract time of generated rectangles.
const spawnedLeave = 0.25

// RectangleGenerator emits a Rectangle every Interval beats until Lifetime.
// Each child samples the Spawned* providers once, at the beat it is
// generated, and stays fixed afterwards.
type RectangleGenerator struct {
	Base

	Interval float64
	Lifetime float64

	SpawnedCenter   provider.Provider[core.Vec2]
	SpawnedSize     provider.Provider[core.Vec2]
	SpawnedRotation provider.Provider[float64]
	SpawnedLifetime float64
	SpawnedWarn     float64

	spawned int
}

// Spawned returns how many rectangles have been generated.
func (g *RectangleGenerator) Spawned() int {
	return g.spawned
}

// Update spawns every rectangle whose warning window has opened. Children
// are offset by SpawnedWarn so they turn dangerous on the interval grid.
func (g *RectangleGenerator) Update(shared *Shared, beat float64) {
	if g.Interval <= 0 {
		return
	}
	for beat+g.SpawnedWarn > float64(g.spawned)*g.Interval {
		if float64(g.spawned) >= g.Lifetime/g.Interval {
			break
		}
		shared.Spawn(New(g.SpawnedWarn, &Rectangle{
			Center:   provider.Const(g.SpawnedCenter.Get(beat)),
			Size:     provider.Const(g.SpawnedSize.Get(beat)),
			Rotation: provider.Const(g.SpawnedRotation.Get(beat)),
			Lifetime: g.SpawnedLifetime,
			Warn:     g.SpawnedWarn,
			Leave:    spawnedLeave,
		}))
		g.spawned++
	}
}

// Draw does nothing; only the children are visible.
func (g *RectangleGenerator) Draw(Canvas, core.Color, float64) {}

// ShouldEnable opens as soon as the first child's warning would.
func (g *RectangleGenerator) ShouldEnable(beat float64) bool {
	return beat > -g.SpawnedWarn
}

// ShouldKill is true after Lifetime.
func (g *RectangleGenerator) ShouldKill(beat float64) bool {
	return beat > g.Lifetime
}

// Clone implements Behaviour.
func (g *RectangleGenerator) Clone() Behaviour {
	c := *g
	c.SpawnedCenter = provider.Clone(g.SpawnedCenter)
	c.SpawnedSize = provider.Clone(g.SpawnedSize)
	c.SpawnedRotation = provider.Clone(g.SpawnedRotation)
	return &c
}
