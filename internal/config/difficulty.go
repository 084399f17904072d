package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Use the config file as is
)

// Presets lists every preset in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset parses a preset name, case-insensitively. An empty name means
// fixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyFixed, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Presets only touch how forgiving hits are; obstacle timing is authored
// into the level and never changes.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.HP = 5
		cfg.Player.HitCooldown = 2.5
		cfg.Player.DashInvincibility = cfg.Player.DashLifetime
	case DifficultyNormal:
		cfg.Player.HP = 3
		cfg.Player.HitCooldown = 2
	case DifficultyHard:
		cfg.Player.HP = 1
		cfg.Player.HitCooldown = 1
	}
}
