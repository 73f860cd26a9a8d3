package engine

import (
	"github.com/vovakirdan/arcade-engine/internal/core"
)

// State is the lifecycle state of a session.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Untimed is the TimeRemaining value of sessions without a timer.
const Untimed = -1

// Session is the full state of one game. Step never mutates the session it is
// given; it returns a new one. Once State is StateGameOver the session is
// frozen and Step hands it back unchanged.
type Session struct {
	Variant       string
	State         State
	Score         int
	Lives         int
	TimeRemaining int // ticks left, or Untimed
	Won           bool
	Tick          uint64
	Seed          int64
	RNG           core.RNG
	World         World
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	c := *s
	c.World = s.World.Clone()
	return &c
}

// Over reports whether the session reached GameOver.
func (s *Session) Over() bool {
	return s.State == StateGameOver
}

// EntityKind tags entities in a snapshot.
type EntityKind int

const (
	EntityPaddle EntityKind = iota
	EntityBall
	EntityBrick
	EntitySnakeHead
	EntitySnakeBody
	EntityFood
	EntityCard
)

// Entity is a read-only view of one body for renderers.
type Entity struct {
	Kind     EntityKind
	ID       int
	Bounds   core.Rect
	Label    string // card key, shown only when face up or matched
	Revealed bool
	Matched  bool
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Variant       string
	State         State
	Score         int
	Lives         int
	TimeRemaining int
	Won           bool
	Tick          uint64
	Field         Field
	Moves         int
	Entities      []Entity
}

// Snapshot returns a rendering view of the session. Destroyed bricks are
// omitted.
func (s *Session) Snapshot() Snapshot {
	w := &s.World
	snap := Snapshot{
		Variant:       s.Variant,
		State:         s.State,
		Score:         s.Score,
		Lives:         s.Lives,
		TimeRemaining: s.TimeRemaining,
		Won:           s.Won,
		Tick:          s.Tick,
		Field:         w.Field,
		Moves:         w.Moves,
	}

	for i := range w.Bricks {
		b := &w.Bricks[i]
		if b.Destroyed {
			continue
		}
		snap.Entities = append(snap.Entities, Entity{Kind: EntityBrick, ID: b.ID, Bounds: b.Rect()})
	}
	if w.Paddle != nil {
		snap.Entities = append(snap.Entities, Entity{Kind: EntityPaddle, Bounds: w.Paddle.Rect()})
	}
	if w.Ball != nil {
		snap.Entities = append(snap.Entities, Entity{Kind: EntityBall, Bounds: w.Ball.Rect()})
	}
	if w.Food.Placed {
		snap.Entities = append(snap.Entities, Entity{
			Kind:   EntityFood,
			Bounds: core.NewRect(w.Food.Pos.X, w.Food.Pos.Y, w.Cell, w.Cell),
		})
	}
	if w.Snake != nil {
		for i, c := range w.Snake.Cells {
			kind := EntitySnakeBody
			if i == 0 {
				kind = EntitySnakeHead
			}
			snap.Entities = append(snap.Entities, Entity{
				Kind:   kind,
				ID:     i,
				Bounds: core.NewRect(c.X, c.Y, w.Cell, w.Cell),
			})
		}
	}
	for i := range w.Cards {
		c := &w.Cards[i]
		e := Entity{
			Kind:     EntityCard,
			ID:       c.ID,
			Bounds:   core.NewRect(c.Pos.X, c.Pos.Y, w.Cell, w.Cell),
			Revealed: c.Revealed,
			Matched:  c.Matched,
		}
		if c.Revealed || c.Matched {
			e.Label = c.Key
		}
		snap.Entities = append(snap.Entities, e)
	}

	return snap
}
