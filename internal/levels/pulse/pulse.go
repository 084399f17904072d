// Package pulse is a level written directly in Go. It leans on patterns that
// are awkward to express in a level file: lasers fanned around the arena
// centre and bomb volleys placed by a loop.
package pulse

import (
	"math"

	"github.com/samber/lo"

	"github.com/vovakirdan/beat-arcade/internal/core"
	"github.com/vovakirdan/beat-arcade/internal/level"
	"github.com/vovakirdan/beat-arcade/internal/obstacle"
	"github.com/vovakirdan/beat-arcade/internal/provider"
	"github.com/vovakirdan/beat-arcade/internal/registry"
)

// ID is the registry key of the level.
const ID = "pulse"

// Metadata describes the silent track the level runs against.
var Metadata = level.Metadata{
	ID:          ID,
	Name:        "Pulse",
	BPM:         140,
	Length:      72,
	Checkpoints: []float64{24, 48},
}

func init() {
	registry.Register(ID, Metadata.Name, New)
}

// flashBeats are the beats the foreground palette steps on.
var flashBeats = lo.Map(lo.Range(17), func(i int, _ int) float64 {
	return float64(i * 4)
})

// New builds the level.
func New() *level.Level {
	b := level.NewBuilder()
	centre := core.ArenaSize().Scale(0.5)

	b.At(0, &obstacle.SetForeground{Provider: provider.NewFlash(flashBeats[1:], false)})
	b.At(0, &obstacle.SetBackground{Provider: provider.Const(core.RGBA(0.05, 0.02, 0.08, 1))})

	fan(b, 4, centre, 4, 0)
	fan(b, 8, centre, 6, math.Pi/6)
	fan(b, 12, centre, 8, 0)

	for i, beat := range []float64{16, 18, 20, 22} {
		side := float64(i%2)*2 - 1
		start := core.V(centre.X+side*(centre.X+40), 120+float64(i)*120)
		b.At(beat, &obstacle.Bomb{
			Start:            start,
			End:              core.V(centre.X+side*150, start.Y),
			Lifetime:         2,
			RadiusPerBeat:    12,
			ProjectileCount:  10 + i*2,
			ProjectileRadius: 8,
			ProjectileSpeed:  140,
		})
	}

	// Checkpoint one: pillars marching across.
	b.At(24, &obstacle.Shake{Amount: 12})
	b.At(24, &obstacle.RectangleGenerator{
		Interval: 0.5,
		Lifetime: 8,
		SpawnedCenter: provider.Velocity{
			Start:    core.V(40, centre.Y),
			Velocity: core.V(90, 0),
		},
		SpawnedSize:     provider.Const(core.V(40, core.ArenaHeight)),
		SpawnedRotation: provider.Const(0.0),
		SpawnedLifetime: 0.5,
		SpawnedWarn:     1,
	})
	for beat := 34.0; beat < 46; beat += 2 {
		sweep(b, beat)
	}

	// Checkpoint two: a spinning bar with slams on every bar line.
	b.At(48, &obstacle.SetForeground{Provider: provider.FuncOf(func(beat float64) core.Color {
		return core.Sinebow(beat * math.Pi / 4)
	})})
	b.At(48, &obstacle.Rectangle{
		Center:   provider.Const(centre),
		Size:     provider.Const(core.V(900, 36)),
		Rotation: provider.FuncOf(func(beat float64) float64 { return beat * math.Pi / 8 }),
		Lifetime: 16,
		Warn:     2,
		Leave:    1,
	})
	for beat := 52.0; beat < 64; beat += 4 {
		fan(b, beat, centre, 3, beat/4)
	}

	return b.Build(Metadata)
}

// fan places count slam lasers spoked around centre, each reaching past the
// arena edge.
func fan(b *level.Builder, beat float64, centre core.Vec2, count int, phase float64) {
	reach := core.ArenaSize().Length()
	for i := 0; i < count; i++ {
		angle := phase + float64(i)/float64(count)*2*math.Pi
		end := centre.Add(core.Rotate(core.V(reach, 0), angle))
		laser := obstacle.NewSlamLaser(centre, end)
		laser.Thickness = 30
		laser.Shake = 4
		b.At(beat, laser)
	}
}

// sweep places a pair of widening lasers that close in from both sides.
func sweep(b *level.Builder, beat float64) {
	offset := (beat - 34) * 25
	for _, x := range []float64{offset, core.ArenaWidth - offset} {
		laser := obstacle.NewWidenLaser(core.V(x, 0), core.V(x, core.ArenaHeight))
		laser.Thickness = 40
		laser.Warn = 1
		laser.Jerk = core.V(0, 6)
		b.At(beat, laser)
	}
}
