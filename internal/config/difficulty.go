package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset decodes a preset name. An empty name is normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ballSpeedFactor scales Breakout ball speed per preset.
func ballSpeedFactor(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	f := ballSpeedFactor(preset)
	cfg.Ball.VX *= f
	cfg.Ball.VY *= f

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = math.Min(cfg.Paddle.Width*1.2, cfg.Field.Width)
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width *= 0.8
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Snake speed is its tick rate: one cell per tick.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.TickRate = max(1, cfg.Gameplay.TickRate*7/10)
	case DifficultyHard:
		cfg.Gameplay.TickRate = cfg.Gameplay.TickRate * 3 / 2
	}
}

// ApplyMatchPreset modifies the config based on a difficulty preset.
// Hard adds a two minute timer when none is configured.
func ApplyMatchPreset(cfg *MatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.MismatchDelay = cfg.MismatchDelay * 3 / 2
		cfg.Gameplay.TimeLimit = 0
	case DifficultyHard:
		cfg.MismatchDelay /= 2
		if cfg.Gameplay.TimeLimit == 0 {
			cfg.Gameplay.TimeLimit = 120 * max(1, cfg.Gameplay.TickRate)
		}
	}
}
