package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{Width: 600, Height: 400},
		Paddle: BreakoutPaddle{
			Width:  100,
			Height: 10,
			Speed:  6,
			Inset:  30,
		},
		Ball: BreakoutBall{
			Radius: 8,
			SpawnX: 300,
			SpawnY: 300,
			VX:     3,
			VY:     -3,
			Spin:   6,
		},
		Bricks: BreakoutBricks{
			Width:  60,
			Height: 20,
			Top:    40,
			Points: 10,
			Layout: []string{
				"##########",
				"2222222222",
				"##########",
				"1111111111",
			},
		},
		Gameplay: Gameplay{
			Lives:    3,
			TickRate: 60,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field:         FieldConfig{Width: 400, Height: 400},
		Cell:          20,
		StartX:        200,
		StartY:        200,
		InitialLength: 3,
		FoodPoints:    10,
		Gameplay: Gameplay{
			Lives:    1,
			TickRate: 10,
		},
	}
}

// DefaultMatchConfig returns the default Match-pairs configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Columns:       4,
		Rows:          4,
		CardSize:      60,
		Gap:           10,
		MatchBonus:    10,
		MismatchDelay: 30,
		Gameplay: Gameplay{
			Lives:    1,
			TickRate: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML for a game.
func DefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	case "snake":
		return defaultSnakeYAML
	case "match":
		return defaultMatchYAML
	default:
		return nil
	}
}
