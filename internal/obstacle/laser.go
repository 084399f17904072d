package obstacle

import (
	"math"

	"github.com/vovakirdan/beat-arcade/internal/collide"
	"github.com/vovakirdan/beat-arcade/internal/core"
)

// laserColors returns the warning backdrop and the live colour shared by
// both laser kinds.
func laserColors(main core.Color, beat, warn, flash float64) (back, front core.Color) {
	back = main.Mix(core.White, math.Sin(beat*math.Pi*2)*0.5+0.5)
	if beat > 0 {
		back.A = 0
	} else {
		back = back.Faded()
		back.A *= min(beat/warn+1, 1) * 1.5
	}

	factor := 0.0
	if 0 < beat && beat < flash {
		factor = 1 - beat/flash
	}
	return back, main.Mix(core.White, factor)
}

// SlamLaser sweeps from Start towards End. During the warning window it
// creeps a fifth of the way, at beat zero it slams to End and stays there
// until Lifetime, then retracts over Leave.
type SlamLaser struct {
	Base

	Start, End core.Vec2

	Warn      float64
	Lifetime  float64
	Leave     float64
	Thickness float64
	Flash     float64

	// Shake and Jerk are applied to the camera once, when the laser slams.
	Shake float64
	Jerk  core.Vec2

	slammed bool
}

// NewSlamLaser creates a slam laser with the default timings.
func NewSlamLaser(start, end core.Vec2) *SlamLaser {
	return &SlamLaser{
		Start:     start,
		End:       end,
		Warn:      2,
		Lifetime:  2,
		Leave:     1,
		Thickness: 50,
		Flash:     0.5,
	}
}

// LerpFactor is how far along Start→End the laser reaches at beat.
func (l *SlamLaser) LerpFactor(beat float64) float64 {
	switch {
	case beat < 0:
		return (beat/l.Warn + 1) * 0.2
	case beat < l.Lifetime:
		return 1
	default:
		n := (beat - l.Lifetime) / l.Leave
		return 1 - n*n
	}
}

func (l *SlamLaser) tip(beat float64) core.Vec2 {
	return l.Start.Lerp(l.End, l.LerpFactor(beat))
}

// Update fires the camera effects the first time the beat is positive.
func (l *SlamLaser) Update(shared *Shared, beat float64) {
	if beat > 0 && !l.slammed {
		l.slammed = true
		shared.AddJerk(l.Jerk)
		shared.AddShake(l.Shake)
	}
}

// Draw renders the full path as a warning and the swept part on top.
func (l *SlamLaser) Draw(canvas Canvas, main core.Color, beat float64) {
	back, front := laserColors(main, beat, l.Warn, l.Flash)
	canvas.Line(l.Start, l.End, l.Thickness, back)
	canvas.Line(l.Start, l.tip(beat), l.Thickness, front)
}

// Collides tests only the part of the path swept so far. This includes the
// short creep during the warning window.
func (l *SlamLaser) Collides(beat float64, pos core.Vec2, radius float64) bool {
	return collide.CircleLine(pos, radius, l.Start, l.tip(beat), l.Thickness)
}

// ShouldEnable covers the warning window through the end of the retract.
func (l *SlamLaser) ShouldEnable(beat float64) bool {
	return -l.Warn < beat && beat < l.Lifetime+l.Leave
}

// ShouldKill is true once the laser has fully retracted.
func (l *SlamLaser) ShouldKill(beat float64) bool {
	return beat > l.Lifetime+l.Leave
}

// Clone implements Behaviour.
func (l *SlamLaser) Clone() Behaviour {
	c := *l
	return &c
}

// WidenLaser is a fixed line that grows from zero thickness, holds, and
// shrinks back before Lifetime.
type WidenLaser struct {
	Base

	Start, End core.Vec2

	Warn      float64
	Grow      float64
	Lifetime  float64
	Shrink    float64
	Thickness float64
	Flash     float64

	Shake float64
	Jerk  core.Vec2

	growing bool
}

// NewWidenLaser creates a widening laser with the default timings.
func NewWidenLaser(start, end core.Vec2) *WidenLaser {
	return &WidenLaser{
		Start:     start,
		End:       end,
		Warn:      2,
		Grow:      0.25,
		Lifetime:  2,
		Shrink:    0.25,
		Thickness: 50,
		Flash:     0.5,
	}
}

// ThicknessFactor is the fraction of Thickness that is live at beat.
func (l *WidenLaser) ThicknessFactor(beat float64) float64 {
	switch {
	case beat < 0:
		return 0
	case beat < l.Grow:
		return beat / l.Grow
	case beat < l.Lifetime-l.Shrink:
		return 1
	case beat < l.Lifetime:
		return (l.Lifetime - beat) / l.Shrink
	default:
		return 0
	}
}

// Update fires the camera effects the first time the beat is positive.
func (l *WidenLaser) Update(shared *Shared, beat float64) {
	if beat > 0 && !l.growing {
		l.growing = true
		shared.AddJerk(l.Jerk)
		shared.AddShake(l.Shake)
	}
}

// Draw renders the full width as a warning and the live width on top.
func (l *WidenLaser) Draw(canvas Canvas, main core.Color, beat float64) {
	back, front := laserColors(main, beat, l.Warn, l.Flash)
	canvas.Line(l.Start, l.End, l.Thickness, back)
	canvas.Line(l.Start, l.End, l.Thickness*l.ThicknessFactor(beat), front)
}

// Collides uses the live width and never hits during the warning.
func (l *WidenLaser) Collides(beat float64, pos core.Vec2, radius float64) bool {
	return beat > 0 &&
		collide.CircleLine(pos, radius, l.Start, l.End, l.Thickness*l.ThicknessFactor(beat))
}

// ShouldEnable covers the warning window and the lifetime.
func (l *WidenLaser) ShouldEnable(beat float64) bool {
	return -l.Warn < beat && beat < l.Lifetime
}

// ShouldKill is true after Lifetime.
func (l *WidenLaser) ShouldKill(beat float64) bool {
	return beat > l.Lifetime
}

// Clone implements Behaviour.
func (l *WidenLaser) Clone() Behaviour {
	c := *l
	return &c
}
