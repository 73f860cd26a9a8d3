package breakout

import (
	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

const (
	ID    = "breakout"
	Title = "Breakout"
)

// Rules builds the Breakout rule table. Bricks score their own value, so the
// per-kind points table stays empty.
func Rules(cfg config.BreakoutConfig) (engine.Rules, error) {
	if err := validate(cfg); err != nil {
		return engine.Rules{}, err
	}
	bricks, err := ParseLayout(cfg.Bricks, cfg.Field)
	if err != nil {
		return engine.Rules{}, err
	}

	field := engine.Field{W: cfg.Field.Width, H: cfg.Field.Height}
	spawn := func() *engine.Ball {
		return &engine.Ball{Body: engine.Body{
			Pos:    core.V(cfg.Ball.SpawnX, cfg.Ball.SpawnY),
			Vel:    core.V(cfg.Ball.VX, cfg.Ball.VY),
			Radius: cfg.Ball.Radius,
		}}
	}

	return engine.Rules{
		ID:        ID,
		Title:     Title,
		Lives:     cfg.Gameplay.Lives,
		TimeLimit: cfg.Gameplay.TimeLimit,

		Layout: func(*core.RNG) (engine.World, error) {
			return engine.World{
				Field: field,
				Paddle: &engine.Paddle{
					Body: engine.Body{
						Pos: core.V((field.W-cfg.Paddle.Width)/2, field.H-cfg.Paddle.Inset),
						W:   cfg.Paddle.Width,
						H:   cfg.Paddle.Height,
					},
					Speed: cfg.Paddle.Speed,
				},
				Ball:   spawn(),
				Bricks: append([]engine.Brick(nil), bricks...),
			}, nil
		},

		Control: func(w *engine.World, in engine.Intents) []engine.Event {
			engine.MovePaddle(w.Paddle, w.Field, in.Horizontal())
			return nil
		},

		Resolve: func(w *engine.World) []engine.Event {
			return engine.ResolveBall(w, cfg.Ball.Spin)
		},

		// Only the ball respawns after a lost life; paddle and bricks stay.
		Consequence: func(w *engine.World, ev engine.Event, _ *core.RNG) []engine.Event {
			if ev.Kind == engine.EventLifeLost {
				w.Ball = spawn()
			}
			return nil
		},

		Won: func(w *engine.World) bool {
			return w.BricksRemaining() == 0
		},
	}, nil
}

func validate(cfg config.BreakoutConfig) error {
	f, p, b := cfg.Field, cfg.Paddle, cfg.Ball
	switch {
	case f.Width <= 0 || f.Height <= 0:
		return engine.Invalid("field", "size must be positive, got %vx%v", f.Width, f.Height)
	case p.Width <= 0 || p.Height <= 0:
		return engine.Invalid("paddle", "size must be positive, got %vx%v", p.Width, p.Height)
	case p.Width > f.Width:
		return engine.Invalid("paddle.width", "%v exceeds field width %v", p.Width, f.Width)
	case p.Speed < 0:
		return engine.Invalid("paddle.speed", "must not be negative, got %v", p.Speed)
	case p.Inset < p.Height || p.Inset > f.Height:
		return engine.Invalid("paddle.inset", "must be within [%v, %v], got %v", p.Height, f.Height, p.Inset)
	case b.Radius <= 0:
		return engine.Invalid("ball.radius", "must be positive, got %v", b.Radius)
	case b.SpawnX-b.Radius < 0 || b.SpawnX+b.Radius > f.Width ||
		b.SpawnY-b.Radius < 0 || b.SpawnY+b.Radius >= f.Height:
		return engine.Invalid("ball.spawn", "(%v, %v) is outside the field", b.SpawnX, b.SpawnY)
	case b.Spin < 0:
		return engine.Invalid("ball.spin", "must not be negative, got %v", b.Spin)
	case cfg.Gameplay.Lives < 1:
		return engine.Invalid("gameplay.lives", "must be at least 1, got %d", cfg.Gameplay.Lives)
	case cfg.Gameplay.TimeLimit < 0:
		return engine.Invalid("gameplay.time_limit", "must not be negative, got %d", cfg.Gameplay.TimeLimit)
	}
	return nil
}

// New builds a Breakout machine from cfg.
func New(cfg config.BreakoutConfig) (*engine.Machine, error) {
	rules, err := Rules(cfg)
	if err != nil {
		return nil, err
	}
	return engine.NewMachine(rules)
}

// Resolve loads the configuration selected by opts.
func Resolve(opts registry.Options) (config.BreakoutConfig, error) {
	if opts.Resolved != nil {
		return config.Decode(opts.Resolved, config.DefaultBreakoutConfig)
	}

	cfg, err := config.LoadBreakout(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
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

// Autopilot keeps the paddle under the ball.
func Autopilot(s *engine.Session) engine.Intents {
	w := &s.World
	if w.Paddle == nil || w.Ball == nil {
		return engine.NoIntents()
	}
	center := w.Paddle.Pos.X + w.Paddle.W/2
	target := w.Ball.Pos.X
	dead := w.Paddle.W / 8

	switch {
	case target < center-dead:
		return engine.Move(true, false)
	case target > center+dead:
		return engine.Move(false, true)
	default:
		return engine.NoIntents()
	}
}

func init() {
	registry.Register(ID, Title, factory)
}
