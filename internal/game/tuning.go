package game

import (
	"github.com/vovakirdan/beat-arcade/internal/config"
	"github.com/vovakirdan/beat-arcade/internal/player"
)

// PlayerConfig converts the YAML player tuning.
func PlayerConfig(c config.PlayerConfig) player.Config {
	return player.Config{
		Radius:            c.Radius,
		RegularSpeed:      c.RegularSpeed,
		DashSpeed:         c.DashSpeed,
		DashLifetime:      c.DashLifetime,
		DashInvincibility: c.DashInvincibility,
		StunLifetime:      c.StunLifetime,
		StunSpeed:         c.StunSpeed,
		HitCooldown:       c.HitCooldown,
		HP:                c.HP,
		EdgeMargin:        c.EdgeMargin,
	}
}
