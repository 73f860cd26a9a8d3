package engine

import (
	"fmt"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventNone EventKind = iota

	// Collision resolver
	EventWallBounced
	EventPaddleHit
	EventBrickDestroyed
	EventBallLost
	EventOutOfBounds
	EventSelfCollision
	EventFoodEaten

	// Card table
	EventCardRevealed
	EventPairMatched
	EventPairMismatched
	EventCardsHidden

	// Lifecycle
	EventLifeLost
	EventTimeUp
	EventGameWon
	EventGameLost
)

var eventNames = map[EventKind]string{
	EventNone:           "None",
	EventWallBounced:    "WallBounced",
	EventPaddleHit:      "PaddleHit",
	EventBrickDestroyed: "BrickDestroyed",
	EventBallLost:       "BallLost",
	EventOutOfBounds:    "OutOfBounds",
	EventSelfCollision:  "SelfCollision",
	EventFoodEaten:      "FoodEaten",
	EventCardRevealed:   "CardRevealed",
	EventPairMatched:    "PairMatched",
	EventPairMismatched: "PairMismatched",
	EventCardsHidden:    "CardsHidden",
	EventLifeLost:       "LifeLost",
	EventTimeUp:         "TimeUp",
	EventGameWon:        "GameWon",
	EventGameLost:       "GameLost",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Axis is the velocity component a wall bounce reflected.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Event is a named occurrence emitted by Step.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	ID     int       // brick or card ID
	Pair   [2]int    // card IDs for pair events
	Axis   Axis      // WallBounced
	Offset float64   // PaddleHit: hit position across the paddle in [0, 1]
	Pos    core.Vec2 // where it happened, when meaningful
	Points int       // value carried by the entity itself (brick worth)
}

func (e Event) String() string {
	switch e.Kind {
	case EventWallBounced:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Axis)
	case EventPaddleHit:
		return fmt.Sprintf("%s(%.2f)", e.Kind, e.Offset)
	case EventBrickDestroyed, EventCardRevealed:
		return fmt.Sprintf("%s(%d)", e.Kind, e.ID)
	case EventPairMatched, EventPairMismatched, EventCardsHidden:
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.Pair[0], e.Pair[1])
	default:
		return e.Kind.String()
	}
}

// Count returns how many events of the given kind are in events.
func Count(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// Has reports whether events contains an event of the given kind.
func Has(events []Event, kind EventKind) bool {
	return Count(events, kind) > 0
}
