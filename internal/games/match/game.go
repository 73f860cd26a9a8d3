// Package match implements the Match-pairs card variant.
package match

import (
	"strconv"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

const (
	ID    = "match"
	Title = "Match Pairs"
)

// Rules builds the Match-pairs rule table. Each tick first expires a pending
// mismatch, then accepts at most one reveal; the resolver evaluates the pair
// once two cards are up.
func Rules(cfg config.MatchConfig) (engine.Rules, error) {
	if err := validate(cfg); err != nil {
		return engine.Rules{}, err
	}

	return engine.Rules{
		ID:        ID,
		Title:     Title,
		Lives:     cfg.Gameplay.Lives,
		TimeLimit: cfg.Gameplay.TimeLimit,
		Points:    map[engine.EventKind]int{engine.EventPairMatched: cfg.MatchBonus},

		Layout: func(rng *core.RNG) (engine.World, error) {
			return deal(cfg, rng), nil
		},

		Control: func(w *engine.World, in engine.Intents) []engine.Event {
			events := engine.TickHide(w)
			if in.Reveal {
				if ev, ok := engine.Reveal(w, in.Card); ok {
					events = append(events, ev)
				}
			}
			return events
		},

		Resolve: func(w *engine.World) []engine.Event {
			if ev, ok := engine.EvaluatePair(w, cfg.MismatchDelay); ok {
				return []engine.Event{ev}
			}
			return nil
		},

		Won: func(w *engine.World) bool {
			return w.AllMatched()
		},
	}, nil
}

// deal lays the cards out row by row. An explicit deck is used as given;
// otherwise pairs of generated keys are shuffled with the session RNG.
func deal(cfg config.MatchConfig, rng *core.RNG) engine.World {
	keys := append([]string(nil), cfg.Deck...)
	if len(keys) == 0 {
		pairs := cfg.Columns * cfg.Rows / 2
		for i := range pairs {
			k := cardKey(i)
			keys = append(keys, k, k)
		}
		rng.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
	}

	cols := cfg.Columns
	rows := (len(keys) + cols - 1) / cols
	pitch := cfg.CardSize + cfg.Gap

	w := engine.World{
		Field: engine.Field{
			W: cfg.Gap + float64(cols)*pitch,
			H: cfg.Gap + float64(rows)*pitch,
		},
		Cell:  cfg.CardSize,
		Cards: make([]engine.Card, len(keys)),
	}
	for i, k := range keys {
		w.Cards[i] = engine.Card{
			ID:  i,
			Key: k,
			Pos: core.V(cfg.Gap+float64(i%cols)*pitch, cfg.Gap+float64(i/cols)*pitch),
		}
	}
	return w
}

// cardKey names pair i: A..Z, then numbers.
func cardKey(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return strconv.Itoa(i)
}

func validate(cfg config.MatchConfig) error {
	switch {
	case cfg.Columns < 1:
		return engine.Invalid("columns", "must be at least 1, got %d", cfg.Columns)
	case cfg.CardSize <= 0:
		return engine.Invalid("card_size", "must be positive, got %v", cfg.CardSize)
	case cfg.Gap < 0:
		return engine.Invalid("gap", "must not be negative, got %v", cfg.Gap)
	case cfg.MatchBonus < 0:
		return engine.Invalid("match_bonus", "must not be negative, got %d", cfg.MatchBonus)
	case cfg.MismatchDelay < 0:
		return engine.Invalid("mismatch_delay", "must not be negative, got %d", cfg.MismatchDelay)
	case cfg.Gameplay.Lives < 1:
		return engine.Invalid("gameplay.lives", "must be at least 1, got %d", cfg.Gameplay.Lives)
	case cfg.Gameplay.TimeLimit < 0:
		return engine.Invalid("gameplay.time_limit", "must not be negative, got %d", cfg.Gameplay.TimeLimit)
	}

	if len(cfg.Deck) == 0 {
		if cfg.Rows < 1 {
			return engine.Invalid("rows", "must be at least 1, got %d", cfg.Rows)
		}
		if cfg.Columns*cfg.Rows%2 != 0 {
			return engine.Invalid("rows", "a %dx%d table has an odd number of cards", cfg.Columns, cfg.Rows)
		}
		return nil
	}

	counts := make(map[string]int, len(cfg.Deck))
	for _, k := range cfg.Deck {
		counts[k]++
	}
	for _, k := range cfg.Deck {
		if counts[k]%2 != 0 {
			return engine.Invalid("deck", "card %q appears %d times", k, counts[k])
		}
	}
	return nil
}

// New builds a Match-pairs machine from cfg.
func New(cfg config.MatchConfig) (*engine.Machine, error) {
	rules, err := Rules(cfg)
	if err != nil {
		return nil, err
	}
	return engine.NewMachine(rules)
}

// Resolve loads the configuration selected by opts.
func Resolve(opts registry.Options) (config.MatchConfig, error) {
	if opts.Resolved != nil {
		return config.Decode(opts.Resolved, config.DefaultMatchConfig)
	}

	cfg, err := config.LoadMatch(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyMatchPreset(&cfg, preset)
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
