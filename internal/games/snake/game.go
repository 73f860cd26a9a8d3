// Package snake implements the grid Snake variant.
package snake

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

const (
	ID    = "snake"
	Title = "Snake"
)

// Rules builds the Snake rule table. The snake advances one cell per tick;
// leaving the field or biting itself ends the game, and the board filling up
// so that no food can be placed wins it.
func Rules(cfg config.SnakeConfig) (engine.Rules, error) {
	if err := validate(cfg); err != nil {
		return engine.Rules{}, err
	}

	return engine.Rules{
		ID:        ID,
		Title:     Title,
		Lives:     cfg.Gameplay.Lives,
		TimeLimit: cfg.Gameplay.TimeLimit,
		Points:    map[engine.EventKind]int{engine.EventFoodEaten: cfg.FoodPoints},

		Layout: func(rng *core.RNG) (engine.World, error) {
			cells := make([]core.Vec2, cfg.InitialLength)
			for i := range cells {
				cells[i] = core.V(cfg.StartX-float64(i)*cfg.Cell, cfg.StartY)
			}
			w := engine.World{
				Field: engine.Field{W: cfg.Field.Width, H: cfg.Field.Height},
				Cell:  cfg.Cell,
				Snake: &engine.Snake{
					Cells:   cells,
					Heading: engine.DirRight,
					Next:    engine.DirRight,
				},
			}
			w.Food = engine.PlaceFood(&w, rng)
			return w, nil
		},

		Control: control,

		Resolve: func(w *engine.World) []engine.Event {
			return engine.AdvanceSnake(w)
		},

		Consequence: func(w *engine.World, ev engine.Event, rng *core.RNG) []engine.Event {
			if ev.Kind == engine.EventFoodEaten {
				engine.GrowSnake(w.Snake)
				w.Food = engine.PlaceFood(w, rng)
			}
			return nil
		},

		Won: func(w *engine.World) bool {
			return !w.Food.Placed
		},
	}, nil
}

// control buffers a direction intent. Unknown tokens and an exact reversal of
// the last move are dropped.
func control(w *engine.World, in engine.Intents) []engine.Event {
	d, ok := in.Heading()
	if !ok || d == w.Snake.Heading.Opposite() {
		return nil
	}
	w.Snake.Next = d
	return nil
}

func validate(cfg config.SnakeConfig) error {
	f := cfg.Field
	switch {
	case f.Width <= 0 || f.Height <= 0:
		return engine.Invalid("field", "size must be positive, got %vx%v", f.Width, f.Height)
	case cfg.Cell <= 0:
		return engine.Invalid("cell", "must be positive, got %v", cfg.Cell)
	case !multiple(f.Width, cfg.Cell) || !multiple(f.Height, cfg.Cell):
		return engine.Invalid("field", "%vx%v is not a whole number of %v cells", f.Width, f.Height, cfg.Cell)
	case !multiple(cfg.StartX, cfg.Cell) || !multiple(cfg.StartY, cfg.Cell):
		return engine.Invalid("start", "(%v, %v) is not on the grid", cfg.StartX, cfg.StartY)
	case cfg.InitialLength < 1:
		return engine.Invalid("initial_length", "must be at least 1, got %d", cfg.InitialLength)
	case cfg.StartX-float64(cfg.InitialLength-1)*cfg.Cell < 0 || cfg.StartX >= f.Width ||
		cfg.StartY < 0 || cfg.StartY >= f.Height:
		return engine.Invalid("start", "snake of length %d at (%v, %v) does not fit the field",
			cfg.InitialLength, cfg.StartX, cfg.StartY)
	case cfg.FoodPoints < 0:
		return engine.Invalid("food_points", "must not be negative, got %d", cfg.FoodPoints)
	case cfg.Gameplay.Lives < 1:
		return engine.Invalid("gameplay.lives", "must be at least 1, got %d", cfg.Gameplay.Lives)
	case cfg.Gameplay.TimeLimit < 0:
		return engine.Invalid("gameplay.time_limit", "must not be negative, got %d", cfg.Gameplay.TimeLimit)
	}
	return nil
}

func multiple(v, cell float64) bool {
	_, frac := math.Modf(v / cell)
	return frac == 0
}

// New builds a Snake machine from cfg.
func New(cfg config.SnakeConfig) (*engine.Machine, error) {
	rules, err := Rules(cfg)
	if err != nil {
		return nil, err
	}
	return engine.NewMachine(rules)
}

// Resolve loads the configuration selected by opts.
func Resolve(opts registry.Options) (config.SnakeConfig, error) {
	if opts.Resolved != nil {
		return config.Decode(opts.Resolved, config.DefaultSnakeConfig)
	}

	cfg, err := config.LoadSnake(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, preset)
	return cfg, nil
}

func factory(opts registry.Options) (*registry.Game, error) {
	cfg, err := Resolve(opts)
	if err != nil {
		return nil, err
	}
	m, err := New(cfg)
	if err != nil {
		return nil, err
	}
	data, err := config.Encode(cfg)
	if err != nil {
		return nil, err
	}
	return &registry.Game{
		Machine:   m,
		TickRate:  cfg.Gameplay.TickRate,
		Config:    data,
		Autopilot: Autopilot,
	}, nil
}

func init() {
	registry.Register(ID, Title, factory)
}
