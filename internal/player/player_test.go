package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/beat-arcade/internal/core"
)

type worldFunc func(beat float64, pos core.Vec2, radius float64) bool

func (f worldFunc) Collides(beat float64, pos core.Vec2, radius float64) bool {
	return f(beat, pos, radius)
}

var (
	empty  = worldFunc(func(float64, core.Vec2, float64) bool { return false })
	deadly = worldFunc(func(float64, core.Vec2, float64) bool { return true })
)

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestNewPlayer(t *testing.T) {
	p := New(DefaultConfig())

	assert.Equal(t, core.V(200, 300), p.Position)
	assert.Equal(t, 3, p.HP)

	pos, r := p.Hitbox()
	assert.Equal(t, p.Position, pos)
	assert.Equal(t, 5.0, r)
	assert.False(t, p.Invincible(0))
	assert.False(t, p.Recovering(0))
}

func TestFirstUpdateOnlyRecordsTime(t *testing.T) {
	p := New(DefaultConfig())

	dead := p.Update(10, 0, input(core.ActionRight), deadly)
	assert.False(t, dead)
	assert.Equal(t, core.V(200, 300), p.Position)
	assert.Equal(t, 3, p.HP)
}

func TestMovement(t *testing.T) {
	tests := []struct {
		name     string
		actions  []core.Action
		expected core.Vec2
	}{
		{"idle", nil, core.V(200, 300)},
		{"right", []core.Action{core.ActionRight}, core.V(300, 300)},
		{"up", []core.Action{core.ActionUp}, core.V(200, 200)},
		{"diagonal", []core.Action{core.ActionLeft, core.ActionDown}, core.V(100, 400)},
		{"opposites cancel", []core.Action{core.ActionLeft, core.ActionRight}, core.V(200, 300)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(DefaultConfig())
			p.Update(0, 0, input(), empty)
			p.Update(0.5, 0, input(tc.actions...), empty)
			assert.Equal(t, tc.expected, p.Position)
		})
	}
}

func TestDash(t *testing.T) {
	p := New(DefaultConfig())
	p.Update(0, 0, input(), empty)
	p.Update(1, 0, input(core.ActionDash), empty)

	assert.True(t, p.Invincible(1.2))
	assert.False(t, p.Invincible(1.4))
	assert.Equal(t, 1000.0, p.Speed(1))
	assert.InDelta(t, 600, p.Speed(1.2), 1e-9)
	assert.Equal(t, 200.0, p.Speed(1.5))

	// A dash cannot be restarted while it is running.
	p.Update(1.1, 0, input(core.ActionDash), empty)
	assert.False(t, p.Invincible(1.4))
}

func TestDashProtectsFromHits(t *testing.T) {
	p := New(DefaultConfig())
	p.Update(0, 0, input(), empty)
	p.Update(1, 0, input(core.ActionDash), empty)

	p.Update(1.1, 0, input(), deadly)
	assert.Equal(t, 3, p.HP)

	p.Update(1.5, 0, input(), deadly)
	assert.Equal(t, 2, p.HP)
}

func TestHitStunsAndCoolsDown(t *testing.T) {
	p := New(DefaultConfig())
	p.Update(0, 0, input(), empty)
	p.Update(0.1, 0, input(core.ActionRight), deadly)

	require.Equal(t, 2, p.HP)
	assert.True(t, p.Stunned(0.2))
	assert.True(t, p.Recovering(1))

	// Knock-back pushes opposite to the last movement, ignoring input.
	before := p.Position
	p.Update(0.2, 0, input(core.ActionRight), deadly)
	assert.InDelta(t, before.X-50, p.Position.X, 1e-9)
	assert.Equal(t, 2, p.HP, "cooldown blocks further hits")

	assert.Equal(t, core.Red, p.Color(0.27))
	assert.Equal(t, core.SkyBlue, p.Color(0.22))
	assert.Equal(t, core.SkyBlue, p.Color(5))
}

func TestDeath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HP = 2
	cfg.HitCooldown = 0.5
	p := New(cfg)
	p.Update(0, 0, input(), empty)

	assert.False(t, p.Update(1, 0, input(), deadly))
	assert.False(t, p.Update(1.2, 0, input(), deadly), "still cooling down")
	assert.True(t, p.Update(2, 0, input(), deadly))
	assert.Equal(t, 0, p.HP)
}

func TestClampToArena(t *testing.T) {
	p := New(DefaultConfig())
	p.Update(0, 0, input(), empty)
	p.Update(10, 0, input(core.ActionLeft, core.ActionUp), empty)

	assert.Equal(t, core.V(15, 15), p.Position)

	p.Update(20, 0, input(core.ActionRight, core.ActionDown), empty)
	assert.Equal(t, core.V(785, 585), p.Position)
}

func TestRespawn(t *testing.T) {
	p := New(DefaultConfig())
	p.Respawn(4)

	assert.True(t, p.Stunned(4.1))
	assert.True(t, p.Recovering(5.9))
	assert.False(t, p.Recovering(6.1))
}
