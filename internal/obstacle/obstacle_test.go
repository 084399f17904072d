package obstacle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/beat-arcade/internal/core"
	"github.com/vovakirdan/beat-arcade/internal/provider"
)

// probe counts calls and is enabled only inside (From, To).
type probe struct {
	Base
	From, To float64
	KillAt   float64
	updates  int
	draws    int
	lastBeat float64
}

func (p *probe) Update(_ *Shared, beat float64) {
	p.updates++
	p.lastBeat = beat
}

func (p *probe) Draw(Canvas, core.Color, float64) { p.draws++ }

func (p *probe) Collides(float64, core.Vec2, float64) bool { return true }

func (p *probe) ShouldEnable(beat float64) bool { return p.From < beat && beat < p.To }

func (p *probe) ShouldKill(beat float64) bool { return beat > p.KillAt }

func (p *probe) Clone() Behaviour {
	c := *p
	return &c
}

func sampleBehaviours() map[string]Behaviour {
	return map[string]Behaviour{
		"slam laser":  NewSlamLaser(core.V(0, 0), core.V(100, 0)),
		"widen laser": NewWidenLaser(core.V(0, 0), core.V(0, 100)),
		"bomb":        &Bomb{Start: core.V(400, 300), End: core.V(0, 0), Lifetime: 1, RadiusPerBeat: 10},
		"circle":      &Circle{Position: provider.Velocity{Start: core.V(10, 10), Velocity: core.V(100, 0)}, Radius: 5},
		"rectangle": &Rectangle{
			Center:   provider.Const(core.V(50, 50)),
			Size:     provider.Const(core.V(20, 20)),
			Rotation: provider.Const(0.0),
			Lifetime: 4, Warn: 1, Leave: 0.5,
		},
		"shake": &Shake{Amount: 3},
	}
}

func TestObstacleOffsetTranslation(t *testing.T) {
	offsets := []float64{-3, 0, 1.5, 10}

	for name, b := range sampleBehaviours() {
		t.Run(name, func(t *testing.T) {
			for _, offset := range offsets {
				o := New(offset, b)
				for g := -5.0; g <= 20; g += 0.125 {
					assert.Equal(t, b.ShouldKill(g-offset), o.ShouldKill(g), "offset %v beat %v", offset, g)
					assert.Equal(t, b.ShouldEnable(g-offset), o.ShouldEnable(g), "offset %v beat %v", offset, g)
				}
			}
		})
	}
}

func TestObstacleGating(t *testing.T) {
	p := &probe{From: 0, To: 2, KillAt: 1}
	o := New(5, p)
	shared := NewShared()
	canvas := &recordingCanvas{}

	// Before the window opens nothing runs, but kill is still checked.
	o.Update(shared, 4)
	o.Draw(canvas, core.White, 4)
	assert.False(t, o.Collides(4, core.Vec2{}, 1))
	assert.Equal(t, 0, p.updates)
	assert.Equal(t, 0, p.draws)
	assert.False(t, o.ShouldKill(4))

	o.Update(shared, 5.5)
	o.Draw(canvas, core.White, 5.5)
	assert.True(t, o.Collides(5.5, core.Vec2{}, 1))
	assert.Equal(t, 1, p.updates)
	assert.Equal(t, 1, p.draws)
	assert.Equal(t, 0.5, p.lastBeat)

	// Past the window: disabled, yet ShouldKill sees the local beat.
	assert.False(t, o.ShouldEnable(7.5))
	assert.True(t, o.ShouldKill(7.5))
}

func TestObstacleClone(t *testing.T) {
	laser := NewSlamLaser(core.V(0, 0), core.V(10, 0))
	laser.Shake = 2
	o := New(1, laser)
	clone := o.Clone()

	shared := NewShared()
	o.Update(shared, 1.5)
	assert.Equal(t, 2.0, shared.Shake())

	// The clone has not slammed yet.
	cloneShared := NewShared()
	clone.Update(cloneShared, 1.5)
	assert.Equal(t, 2.0, cloneShared.Shake())
	assert.Equal(t, 1.0, clone.Offset)
	assert.NotSame(t, o.Behaviour, clone.Behaviour)
}

func TestShared(t *testing.T) {
	s := NewShared()
	s.AddShake(1.5)
	s.AddShake(2)
	s.AddJerk(core.V(1, -1))
	s.AddJerk(core.V(2, 3))

	first := provider.Const(core.Red)
	second := provider.Const(core.SkyBlue)
	s.SetForeground(first)
	s.SetForeground(second)

	s.Spawn(New(1, &Shake{}))
	s.Spawn(New(2, &Shake{}))

	assert.Equal(t, 3.5, s.Shake())
	assert.Equal(t, core.V(3, 2), s.Jerk())
	assert.Equal(t, second, s.Foreground())
	assert.Nil(t, s.Background())
	require.Len(t, s.Spawned(), 2)
	assert.Equal(t, 1.0, s.Spawned()[0].Offset)
	assert.Equal(t, 2.0, s.Spawned()[1].Offset)
}

func TestSlamLaserWindows(t *testing.T) {
	l := NewSlamLaser(core.V(0, 0), core.V(100, 0))
	require.Equal(t, 2.0, l.Warn)
	require.Equal(t, 2.0, l.Lifetime)
	require.Equal(t, 1.0, l.Leave)

	tests := []struct {
		beat   float64
		enable bool
		kill   bool
	}{
		{-3, false, false},
		{-2, false, false},
		{-1.99, true, false},
		{0, true, false},
		{2.5, true, false},
		{2.99, true, false},
		{3, false, false},
		{3.01, false, true},
		{10, false, true},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.enable, l.ShouldEnable(tc.beat), "ShouldEnable(%v)", tc.beat)
		assert.Equal(t, tc.kill, l.ShouldKill(tc.beat), "ShouldKill(%v)", tc.beat)
	}
}

func TestSlamLaserLerpFactor(t *testing.T) {
	l := NewSlamLaser(core.V(0, 0), core.V(100, 0))

	tests := []struct {
		beat, expected float64
	}{
		{-2, 0},
		{-1, 0.1},
		{0, 1},
		{1.9, 1},
		{2.5, 0.75},
		{3, 0},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.expected, l.LerpFactor(tc.beat), 1e-9, "LerpFactor(%v)", tc.beat)
	}
}

func TestSlamLaserCollidesAlongSweep(t *testing.T) {
	l := NewSlamLaser(core.V(0, 0), core.V(100, 0))
	l.Thickness = 10

	// During the warning only the first tenth has been swept.
	assert.True(t, l.Collides(-1, core.V(5, 0), 1))
	assert.False(t, l.Collides(-1, core.V(50, 0), 1))

	assert.True(t, l.Collides(1, core.V(90, 0), 1))
	assert.False(t, l.Collides(1, core.V(50, 20), 1))
}

func TestSlamLaserSlamsOnce(t *testing.T) {
	l := NewSlamLaser(core.V(0, 0), core.V(100, 0))
	l.Shake = 4
	l.Jerk = core.V(0, 8)

	shared := NewShared()
	l.Update(shared, -0.5)
	assert.Equal(t, 0.0, shared.Shake())

	l.Update(shared, 0.1)
	l.Update(shared, 0.2)
	assert.Equal(t, 4.0, shared.Shake())
	assert.Equal(t, core.V(0, 8), shared.Jerk())
}

func TestSlamLaserDraw(t *testing.T) {
	l := NewSlamLaser(core.V(0, 0), core.V(100, 0))
	canvas := &recordingCanvas{}

	l.Draw(canvas, core.Red, 1)
	require.Len(t, canvas.calls, 2)

	back, front := canvas.calls[0], canvas.calls[1]
	assert.Equal(t, 0.0, back.color.A, "backdrop hidden once live")
	assert.Equal(t, core.V(100, 0), front.b)
	assert.Equal(t, core.Red, front.color)
}

func TestWidenLaserThicknessFactor(t *testing.T) {
	l := NewWidenLaser(core.V(0, 0), core.V(100, 0))
	l.Grow = 0.5
	l.Shrink = 0.5
	l.Lifetime = 3

	tests := []struct {
		beat, expected float64
	}{
		{-0.0001, 0},
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{1.5, 1},
		{2.5, 1},
		{2.75, 0.5},
		{3, 0},
		{4, 0},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.expected, l.ThicknessFactor(tc.beat), 1e-9, "ThicknessFactor(%v)", tc.beat)
	}

	l.Grow = 0
	assert.Equal(t, 1.0, l.ThicknessFactor(0))
}

func TestWidenLaserCollides(t *testing.T) {
	l := NewWidenLaser(core.V(0, 0), core.V(100, 0))

	assert.False(t, l.Collides(-1, core.V(50, 0), 5), "warning never collides")
	assert.False(t, l.Collides(0, core.V(50, 0), 5))
	assert.True(t, l.Collides(1, core.V(50, 20), 1))
	assert.False(t, l.Collides(1, core.V(50, 30), 1))

	assert.True(t, l.ShouldEnable(-1.5))
	assert.False(t, l.ShouldEnable(2))
	assert.True(t, l.ShouldKill(2.01))
}

func TestBombPos(t *testing.T) {
	b := &Bomb{Start: core.V(0.1, 0.7), End: core.V(333.3, -12.9), Lifetime: 2, RadiusPerBeat: 20}

	assert.Equal(t, b.Start, b.Pos(0))

	far := b.Pos(1e9)
	assert.InDelta(t, b.End.X, far.X, 1e-3)
	assert.InDelta(t, b.End.Y, far.Y, 1e-3)

	assert.Equal(t, 0.0, b.Radius(0))
	assert.Equal(t, 30.0, b.Radius(1.5))
}

func TestBombWindows(t *testing.T) {
	b := &Bomb{Lifetime: 1}

	assert.False(t, b.ShouldEnable(0))
	assert.True(t, b.ShouldEnable(0.5))
	assert.False(t, b.ShouldEnable(1))
	assert.False(t, b.ShouldKill(1))
	assert.True(t, b.ShouldKill(1.1))
}

func TestBombKillSpawnsRing(t *testing.T) {
	b := &Bomb{
		Start:            core.V(400, 300),
		End:              core.V(400, 300),
		Lifetime:         1,
		RadiusPerBeat:    10,
		ProjectileCount:  4,
		ProjectileRadius: 6,
		ProjectileSpeed:  50,
	}
	shared := NewShared()
	b.Kill(shared, 1.1)

	spawned := shared.Spawned()
	require.Len(t, spawned, 4)

	expected := []core.Vec2{core.V(0, 50), core.V(50, 0), core.V(0, -50), core.V(-50, 0)}
	for i, o := range spawned {
		assert.Equal(t, 0.0, o.Offset)
		c, ok := o.Behaviour.(*Circle)
		require.True(t, ok)
		assert.Equal(t, 6.0, c.Radius)

		v := c.Position.(provider.Velocity)
		assert.InDelta(t, 400, v.Start.X, 1e-9)
		assert.InDelta(t, 300, v.Start.Y, 1e-9)
		assert.InDelta(t, expected[i].X, v.Velocity.X, 1e-9)
		assert.InDelta(t, expected[i].Y, v.Velocity.Y, 1e-9)
	}
}

func TestCircleShouldKill(t *testing.T) {
	pellet := NewPellet(5, core.V(790, 300), core.V(10, 0))

	assert.False(t, pellet.ShouldKill(0))
	assert.False(t, pellet.ShouldKill(1.5), "within radius of the edge")
	assert.True(t, pellet.ShouldKill(1.6))

	small := NewPellet(5, core.V(90, 50), core.V(10, 0))
	small.Bounds = core.V(100, 100)
	assert.True(t, small.ShouldKill(2))

	timed := &Circle{Position: provider.Const(core.V(-500, -500)), Radius: 1, Lifetime: 3}
	assert.False(t, timed.ShouldKill(3))
	assert.True(t, timed.ShouldKill(3.5))
	assert.True(t, timed.ShouldEnable(-100))
}

func TestCircleCloneIsDeep(t *testing.T) {
	c := &Circle{Position: provider.Offset[core.Vec2]{Inner: provider.Const(core.V(1, 2)), Offset: 1}, Radius: 3}
	clone := c.Clone().(*Circle)

	assert.Equal(t, c.Position.Get(0), clone.Position.Get(0))
	clone.Radius = 9
	assert.Equal(t, 3.0, c.Radius)
}

func newTestRectangle() *Rectangle {
	return &Rectangle{
		Center:   provider.Const(core.V(100, 100)),
		Size:     provider.Const(core.V(40, 20)),
		Rotation: provider.Const(0.0),
		Lifetime: 4,
		Warn:     1,
		Leave:    1,
	}
}

func TestRectangleFactors(t *testing.T) {
	r := newTestRectangle()

	sizes := []struct {
		beat, expected float64
	}{
		{-0.5, 1},
		{0, 1.25},
		{0.25, 1.125},
		{0.5, 1},
		{2, 1},
		{3, 1},
		{3.5, 0.5},
		{4, 1},
	}
	for _, tc := range sizes {
		assert.InDelta(t, tc.expected, r.SizeFactor(tc.beat), 1e-9, "SizeFactor(%v)", tc.beat)
	}

	mixes := []struct {
		beat, expected float64
	}{
		{0, 1},
		{0.25, 0.5},
		{0.5, 0},
		{-0.25, 0},
		{-0.75, 1},
	}
	for _, tc := range mixes {
		assert.InDelta(t, tc.expected, r.ColorMixFactor(tc.beat), 1e-9, "ColorMixFactor(%v)", tc.beat)
	}
}

func TestRectangleCollides(t *testing.T) {
	r := newTestRectangle()

	assert.False(t, r.Collides(-0.5, core.V(100, 100), 1), "warning never collides")
	assert.False(t, r.Collides(0, core.V(100, 100), 1))
	assert.True(t, r.Collides(1, core.V(100, 100), 1))
	// The pop-in oversize is not part of the hitbox.
	assert.False(t, r.Collides(0.1, core.V(123, 100), 1))
	assert.True(t, r.Collides(1, core.V(119, 100), 0))

	r.Rotation = provider.Const(math.Pi / 2)
	assert.True(t, r.Collides(1, core.V(100, 118), 0))
	assert.False(t, r.Collides(1, core.V(118, 100), 0))

	assert.True(t, r.ShouldEnable(-0.5))
	assert.False(t, r.ShouldEnable(-1))
	assert.True(t, r.ShouldKill(4.1))
}

func TestRectangleDrawWarning(t *testing.T) {
	r := newTestRectangle()
	canvas := &recordingCanvas{}

	r.Draw(canvas, core.Red, -0.5)
	require.Len(t, canvas.calls, 1)
	call := canvas.calls[0]
	assert.Equal(t, "rect", call.kind)
	assert.Equal(t, core.V(40, 20), call.b)
	assert.InDelta(t, core.FadeFactor*0.5*1.5, call.color.A, 1e-9)
}

func TestRectangleGenerator(t *testing.T) {
	g := &RectangleGenerator{
		Interval:        1,
		Lifetime:        3,
		SpawnedCenter:   provider.FuncOf(func(beat float64) core.Vec2 { return core.V(beat*100, 0) }),
		SpawnedSize:     provider.Const(core.V(10, 10)),
		SpawnedRotation: provider.Const(0.5),
		SpawnedLifetime: 2,
		SpawnedWarn:     0.5,
	}

	assert.True(t, g.ShouldEnable(-0.4))
	assert.False(t, g.ShouldEnable(-0.5))

	shared := NewShared()
	g.Update(shared, 0)
	require.Len(t, shared.Spawned(), 1)
	assert.Equal(t, 1, g.Spawned())

	g.Update(shared, 0.75)
	require.Len(t, shared.Spawned(), 2)

	g.Update(shared, 5)
	require.Len(t, shared.Spawned(), 3, "capped at lifetime/interval")

	child := shared.Spawned()[1]
	assert.Equal(t, 0.5, child.Offset)
	rect, ok := child.Behaviour.(*Rectangle)
	require.True(t, ok)
	assert.Equal(t, 0.25, rect.Leave)
	assert.Equal(t, 0.5, rect.Warn)

	// Frozen at the spawn beat.
	assert.Equal(t, core.V(75, 0), rect.Center.Get(0))
	assert.Equal(t, core.V(75, 0), rect.Center.Get(100))
}

func TestRectangleGeneratorZeroInterval(t *testing.T) {
	g := &RectangleGenerator{Lifetime: 3, SpawnedWarn: 1}
	shared := NewShared()
	g.Update(shared, 1)
	assert.Empty(t, shared.Spawned())
}

func TestMutators(t *testing.T) {
	fg := &SetForeground{Provider: provider.Const(core.SkyBlue)}
	bg := &SetBackground{Provider: provider.Const(core.Pink)}
	shake := &Shake{Amount: 7}

	shared := NewShared()
	for _, b := range []Behaviour{fg, bg, shake} {
		assert.False(t, b.ShouldEnable(0))
		assert.False(t, b.ShouldKill(0))
		assert.True(t, b.ShouldKill(0.01))
		b.Update(shared, 0.01)
	}

	require.NotNil(t, shared.Foreground())
	require.NotNil(t, shared.Background())
	assert.Equal(t, core.SkyBlue, shared.Foreground().Get(0))
	assert.Equal(t, core.Pink, shared.Background().Get(0))
	assert.Equal(t, 7.0, shared.Shake())

	// Not before their beat.
	early := NewShared()
	fg.Update(early, 0)
	assert.Nil(t, early.Foreground())

	clone := fg.Clone().(*SetForeground)
	assert.Equal(t, core.SkyBlue, clone.Provider.Get(0))
}

func TestEmit(t *testing.T) {
	pellet := NewPellet(5, core.V(100, 100), core.V(10, 0))
	emit := &Emit{Behaviour: pellet}

	early := NewShared()
	emit.Update(early, 0)
	assert.Empty(t, early.Spawned())
	assert.False(t, emit.ShouldKill(0))

	shared := NewShared()
	emit.Update(shared, 0.1)
	require.Len(t, shared.Spawned(), 1)
	assert.True(t, emit.ShouldKill(0.1))

	spawned := shared.Spawned()[0]
	assert.Equal(t, 0.0, spawned.Offset)
	assert.NotSame(t, pellet, spawned.Behaviour)

	// The emitter keeps its template after emitting.
	clone := emit.Clone().(*Emit)
	assert.NotSame(t, emit.Behaviour, clone.Behaviour)
}
