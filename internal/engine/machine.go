package engine

import (
	"fmt"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Rules is the table a variant hands to the shared Machine. The machine owns
// the lifecycle (scoring, lives, timer, win/loss); the variant supplies the
// layout and the per-tick hooks.
type Rules struct {
	ID    string
	Title string

	Lives     int // lives at start; must be at least 1
	TimeLimit int // ticks; 0 means untimed

	// Points awarded per event kind, on top of any Event.Points the
	// resolver attached. Values must not be negative.
	Points map[EventKind]int

	// Layout builds the initial world. It may draw from rng.
	Layout func(rng *core.RNG) (World, error)

	// Control applies the tick's intents (intent-to-velocity mapping, direction
	// buffering, reveal acceptance). Malformed intents are dropped here.
	Control func(w *World, in Intents) []Event

	// Resolve runs the collision resolver for one tick.
	Resolve func(w *World) []Event

	// Consequence applies the variant follow-up of an event (respawn after
	// LifeLost, growth after FoodEaten, ...). It may return further events.
	// Optional.
	Consequence func(w *World, ev Event, rng *core.RNG) []Event

	// Won is the win predicate, checked after every tick.
	Won func(w *World) bool
}

func (r Rules) validate() error {
	switch {
	case r.ID == "":
		return Invalid("id", "must not be empty")
	case r.Lives < 1:
		return Invalid("lives", "must be at least 1, got %d", r.Lives)
	case r.TimeLimit < 0:
		return Invalid("time_limit", "must not be negative, got %d", r.TimeLimit)
	case r.Layout == nil:
		return Invalid("layout", "missing")
	case r.Resolve == nil:
		return Invalid("resolve", "missing")
	case r.Won == nil:
		return Invalid("won", "missing")
	}
	for kind, pts := range r.Points {
		if pts < 0 {
			return Invalid("points", "%s awards negative points %d", kind, pts)
		}
	}
	return nil
}

// Machine runs the menu -> playing -> gameover lifecycle for one variant.
// It holds no session state; sessions are passed in and returned.
type Machine struct {
	rules Rules
}

// NewMachine validates the rules table and returns a machine for it.
func NewMachine(rules Rules) (*Machine, error) {
	if err := rules.validate(); err != nil {
		return nil, fmt.Errorf("engine: %s: %w", rules.ID, err)
	}
	return &Machine{rules: rules}, nil
}

// ID returns the variant identifier.
func (m *Machine) ID() string {
	return m.rules.ID
}

// Title returns the variant's display name.
func (m *Machine) Title() string {
	return m.rules.Title
}

// Menu returns an idle session. Step leaves it untouched; Start begins play.
func (m *Machine) Menu() *Session {
	return &Session{
		Variant:       m.rules.ID,
		State:         StateMenu,
		Lives:         m.rules.Lives,
		TimeRemaining: m.timeLimit(),
	}
}

// Start builds a fresh session in the playing state. Every call produces a
// new session: new entities, zero score, full lives and timer.
func (m *Machine) Start(seed int64) (*Session, error) {
	rng := core.NewRNG(seed)
	world, err := m.rules.Layout(&rng)
	if err != nil {
		return nil, fmt.Errorf("engine: start %s: %w", m.rules.ID, err)
	}

	return &Session{
		Variant:       m.rules.ID,
		State:         StatePlaying,
		Lives:         m.rules.Lives,
		TimeRemaining: m.timeLimit(),
		Seed:          seed,
		RNG:           rng,
		World:         world,
	}, nil
}

func (m *Machine) timeLimit() int {
	if m.rules.TimeLimit > 0 {
		return m.rules.TimeLimit
	}
	return Untimed
}

// Step advances the session by one tick. Sessions that are not playing are
// returned as-is with no events. The input session is never modified, and the
// same session and intents always produce the same result.
func (m *Machine) Step(s *Session, in Intents) (*Session, []Event) {
	if s == nil || s.State != StatePlaying {
		return s, nil
	}

	next := s.Clone()
	next.Tick++
	w := &next.World

	var events []Event
	if m.rules.Control != nil {
		events = append(events, m.rules.Control(w, in)...)
	}
	events = append(events, m.rules.Resolve(w)...)

	lost := false
	for i := 0; i < len(events); i++ {
		ev := events[i]
		next.Score += m.rules.Points[ev.Kind] + max(ev.Points, 0)

		switch ev.Kind {
		case EventBallLost:
			next.Lives--
			events = append(events, Event{Kind: EventLifeLost})
			if next.Lives <= 0 {
				next.Lives = 0
				lost = true
			}
		case EventOutOfBounds, EventSelfCollision:
			lost = true
		}

		// A lost game keeps its final frame.
		if !lost && m.rules.Consequence != nil {
			events = append(events, m.rules.Consequence(w, ev, &next.RNG)...)
		}
	}

	switch {
	case lost:
		m.finish(next, false)
		events = append(events, Event{Kind: EventGameLost})
	case m.rules.Won(w):
		m.finish(next, true)
		events = append(events, Event{Kind: EventGameWon})
	case next.TimeRemaining > 0:
		next.TimeRemaining--
		if next.TimeRemaining == 0 {
			m.finish(next, false)
			events = append(events, Event{Kind: EventTimeUp}, Event{Kind: EventGameLost})
		}
	}

	return next, events
}

func (m *Machine) finish(s *Session, won bool) {
	s.State = StateGameOver
	s.Won = won
}

// Run steps the session once per intent set and collects every event.
// It stops early when the session ends.
func (m *Machine) Run(s *Session, inputs []Intents) (*Session, []Event) {
	var all []Event
	for _, in := range inputs {
		if s.State != StatePlaying {
			break
		}
		var events []Event
		s, events = m.Step(s, in)
		all = append(all, events...)
	}
	return s, all
}
