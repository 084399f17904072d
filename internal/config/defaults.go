package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in tuning.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Player: PlayerConfig{
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
		},
		Camera: CameraConfig{
			DecayRate:  0.1,
			ShakeScale: 1,
		},
	}
}
