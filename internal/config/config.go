// Package config provides YAML-based tuning for the player and camera, plus
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains all tunable gameplay parameters.
type GameConfig struct {
	Player PlayerConfig `yaml:"player"`
	Camera CameraConfig `yaml:"camera"`
}

// PlayerConfig defines the player's movement and damage parameters.
// Speeds are arena units per second, durations are seconds.
type PlayerConfig struct {
	Radius            float64 `yaml:"radius"`
	RegularSpeed      float64 `yaml:"regular_speed"`
	DashSpeed         float64 `yaml:"dash_speed"`
	DashLifetime      float64 `yaml:"dash_lifetime"`
	DashInvincibility float64 `yaml:"dash_invincibility"`
	StunLifetime      float64 `yaml:"stun_lifetime"`
	StunSpeed         float64 `yaml:"stun_speed"`
	HitCooldown       float64 `yaml:"hit_cooldown"`
	HP                int     `yaml:"hp"`
	EdgeMargin        float64 `yaml:"edge_margin"` // Extra distance kept from the arena edge
}

// CameraConfig defines how obstacle shake and jerk move the view.
type CameraConfig struct {
	DecayRate  float64 `yaml:"decay_rate"`  // Fraction of shake left after one beat
	ShakeScale float64 `yaml:"shake_scale"` // Multiplier on shake and jerk; 0 disables camera motion
}

// Validate reports every out-of-range value.
func (c GameConfig) Validate() error {
	var errs []error
	p := c.Player
	if p.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player.radius must be positive, got %v", p.Radius))
	}
	if p.RegularSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.regular_speed must be positive, got %v", p.RegularSpeed))
	}
	if p.DashLifetime <= 0 {
		errs = append(errs, fmt.Errorf("player.dash_lifetime must be positive, got %v", p.DashLifetime))
	}
	if p.HP < 1 {
		errs = append(errs, fmt.Errorf("player.hp must be at least 1, got %d", p.HP))
	}
	if c.Camera.DecayRate < 0 || c.Camera.DecayRate >= 1 {
		errs = append(errs, fmt.Errorf("camera.decay_rate must be in [0, 1), got %v", c.Camera.DecayRate))
	}
	if c.Camera.ShakeScale < 0 {
		errs = append(errs, errors.New("camera.shake_scale must not be negative"))
	}
	return errors.Join(errs...)
}
