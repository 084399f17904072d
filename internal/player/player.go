// Package player implements the dodging circle controlled by the user.
package player

import (
	"math"

	"github.com/vovakirdan/beat-arcade/internal/core"
)

// Config holds the movement and damage tuning.
type Config struct {
	Radius       float64
	RegularSpeed float64 // arena units per second
	DashSpeed    float64 // speed at the start of a dash, decays to RegularSpeed

	DashLifetime      float64 // seconds
	DashInvincibility float64 // seconds of invulnerability after dashing

	StunLifetime float64 // seconds of knock-back after a hit
	StunSpeed    float64 // knock-back speed, opposite to the last movement
	HitCooldown  float64 // seconds of invulnerability after a hit
	HP           int

	// EdgeMargin keeps the player this far (plus its radius) from the arena edge.
	EdgeMargin float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Radius:            5,
		RegularSpeed:      200,
		DashSpeed:         1000,
		DashLifetime:      0.4,
		DashInvincibility: 0.35,
		StunLifetime:      0.2,
		StunSpeed:         500,
		HitCooldown:       2,
		HP:                3,
		EdgeMargin:        10,
	}
}

// World is what the player can collide with.
type World interface {
	Collides(beat float64, pos core.Vec2, radius float64) bool
}

// Player is the user's hitbox. Times are in seconds on the caller's clock;
// beats are only passed through to collision.
type Player struct {
	Position core.Vec2
	HP       int

	cfg          Config
	bounds       core.Vec2
	lastTime     float64
	lastDash     float64
	lastHit      float64
	stunVelocity core.Vec2
	frozen       bool
}

// New places a player a quarter of the way across the arena, vertically
// centred.
func New(cfg Config) *Player {
	bounds := core.ArenaSize()
	return &Player{
		Position:     bounds.Mul(core.V(0.25, 0.5)),
		HP:           cfg.HP,
		cfg:          cfg,
		bounds:       bounds,
		lastDash:     math.Inf(-1),
		lastHit:      math.Inf(-1),
		stunVelocity: core.V(-cfg.StunSpeed, 0),
		frozen:       true,
	}
}

// Config returns the tuning the player was created with.
func (p *Player) Config() Config {
	return p.cfg
}

// Hitbox implements level.Target.
func (p *Player) Hitbox() (core.Vec2, float64) {
	return p.Position, p.cfg.Radius
}

// Respawn starts a hit cooldown at time, giving a fresh attempt a moment of
// invulnerability and a short knock-back.
func (p *Player) Respawn(time float64) {
	p.lastHit = time
}

// Speed returns the movement speed at time, decaying from DashSpeed to
// RegularSpeed over a dash.
func (p *Player) Speed(time float64) float64 {
	if p.lastDash+p.cfg.DashLifetime > time {
		return core.Lerp(p.cfg.DashSpeed, p.cfg.RegularSpeed, (time-p.lastDash)/p.cfg.DashLifetime)
	}
	return p.cfg.RegularSpeed
}

// Stunned reports whether the player is being knocked back.
func (p *Player) Stunned(time float64) bool {
	return p.lastHit+p.cfg.StunLifetime > time
}

// Invincible reports whether a recent dash protects the player.
func (p *Player) Invincible(time float64) bool {
	return p.lastDash+p.cfg.DashInvincibility > time
}

// Recovering reports whether the player is inside the post-hit cooldown.
func (p *Player) Recovering(time float64) bool {
	return p.lastHit+p.cfg.HitCooldown > time
}

// Update moves the player, applies a hit if the world collides with it and
// reports whether the player has run out of HP. The first call only
// records the time.
func (p *Player) Update(time, beat float64, input core.InputFrame, world World) bool {
	dt := time - p.lastTime
	if p.frozen {
		p.lastTime = time
		p.frozen = false
		return false
	}

	if p.Stunned(time) {
		p.Position = p.Position.Add(p.stunVelocity.Scale(dt))
	} else {
		before := p.Position
		p.Position = p.Position.Add(input.Axis().Scale(dt * p.Speed(time)))
		if p.Position != before {
			p.stunVelocity = before.Sub(p.Position).Normalize().Scale(p.cfg.StunSpeed)
		}
		if input.Has(core.ActionDash) && p.lastDash+p.cfg.DashLifetime < time {
			p.lastDash = time
		}
	}

	if p.lastHit+p.cfg.HitCooldown < time && !p.Invincible(time) && world.Collides(beat, p.Position, p.cfg.Radius) {
		if p.HP > 0 {
			p.HP--
		}
		p.lastHit = time
	}

	margin := p.cfg.Radius + p.cfg.EdgeMargin
	p.Position = p.Position.Clamp(core.V(margin, margin), p.bounds.Sub(core.V(margin, margin)))

	p.lastTime = time
	return p.HP == 0
}

// Color is the draw colour at time: sky blue, blinking red while recovering.
func (p *Player) Color(time float64) core.Color {
	if p.Recovering(time) && math.Mod(math.Mod(time, 0.1)+0.1, 0.1) > 0.05 {
		return core.Red
	}
	return core.SkyBlue
}
