// Package config provides YAML-based variant configuration loading and
// difficulty presets for the arcade engine.
package config

// FieldConfig is the size of a playing field in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Gameplay holds lifecycle settings shared by every variant.
type Gameplay struct {
	Lives     int `yaml:"lives"`
	TimeLimit int `yaml:"time_limit"` // ticks, 0 = untimed
	TickRate  int `yaml:"tick_rate"`  // ticks per second when driven in real time
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   BreakoutPaddle `yaml:"paddle"`
	Ball     BreakoutBall   `yaml:"ball"`
	Bricks   BreakoutBricks `yaml:"bricks"`
	Gameplay Gameplay       `yaml:"gameplay"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Inset  float64 `yaml:"inset"` // paddle top is at field height - inset
}

// BreakoutBall defines the ball and its spawn point.
type BreakoutBall struct {
	Radius float64 `yaml:"radius"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Spin   float64 `yaml:"spin"`
}

// BreakoutBricks defines the brick wall. Layout rows use '#' for a brick of
// Points value, a digit n for n*Points and '.' or ' ' for a gap.
type BreakoutBricks struct {
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Top    float64  `yaml:"top"`
	Points int      `yaml:"points"`
	Layout []string `yaml:"layout"`
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Field         FieldConfig `yaml:"field"`
	Cell          float64     `yaml:"cell"`
	StartX        float64     `yaml:"start_x"`
	StartY        float64     `yaml:"start_y"`
	InitialLength int         `yaml:"initial_length"`
	FoodPoints    int         `yaml:"food_points"`
	Gameplay      Gameplay    `yaml:"gameplay"`
}

// MatchConfig contains all configuration for Match-pairs.
type MatchConfig struct {
	Columns       int      `yaml:"columns"`
	Rows          int      `yaml:"rows"`
	CardSize      float64  `yaml:"card_size"`
	Gap           float64  `yaml:"gap"`
	MatchBonus    int      `yaml:"match_bonus"`
	MismatchDelay int      `yaml:"mismatch_delay"`
	Deck          []string `yaml:"deck"`
	Gameplay      Gameplay `yaml:"gameplay"`
}
