package game

import (
	"github.com/vovakirdan/beat-arcade/internal/core"
	"github.com/vovakirdan/beat-arcade/internal/level"
)

// ShadeColor marks cells where the player would be hit.
var ShadeColor = core.RGBA(1, 0, 0, 0.6)

// Shade renders l at beat into dst and tints every cell where a player of
// the given radius, centred on that cell, would collide. It returns the
// number of tinted cells. The level is not advanced.
func Shade(dst *core.Screen, l *level.Level, beat, radius float64) int {
	dst.Clear(l.Background(beat))
	area := core.NewRect(0, 0, dst.Width(), dst.Height())
	canvas := NewScreenCanvas(dst, area, core.Vec2{})
	l.Draw(canvas, beat)

	hits := 0
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if l.Collides(beat, canvas.CellCenter(x, y), radius) {
				dst.Paint(x, y, ShadeColor)
				dst.Set(x, y, '░')
				hits++
			}
		}
	}
	return hits
}

// Advance brings a fresh level up to beat in steps of step beats, the way
// a session would while playing. Spawns and camera effects are kept.
func Advance(l *level.Level, beat, step float64) level.SimStats {
	stats := l.Simulate(l.Meta.InitialCheckpoint(), beat, step)
	if l.LastBeat() < beat {
		l.Update(beat)
		stats.Ticks++
		stats.Left = l.Len()
	}
	return stats
}
