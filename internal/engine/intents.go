package engine

import (
	"strings"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Direction is a grid heading.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// ParseDirection decodes a direction token. Unknown tokens report false.
func ParseDirection(token string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	default:
		return DirNone, false
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Delta returns the unit displacement for one cell of movement.
func (d Direction) Delta() core.Vec2 {
	switch d {
	case DirUp:
		return core.V(0, -1)
	case DirDown:
		return core.V(0, 1)
	case DirLeft:
		return core.V(-1, 0)
	case DirRight:
		return core.V(1, 0)
	default:
		return core.Vec2{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Intents is the decoded player input for one tick.
// Each variant reads the components it understands and ignores the rest.
type Intents struct {
	Left, Right bool   // horizontal movement (paddle)
	Direction   string // heading token: "up", "down", "left", "right"
	Reveal      bool   // whether Card carries a reveal target
	Card        int    // card index to reveal
}

// NoIntents is the empty intent set.
func NoIntents() Intents {
	return Intents{}
}

// Move returns an intent set for horizontal movement.
func Move(left, right bool) Intents {
	return Intents{Left: left, Right: right}
}

// Turn returns an intent set carrying a direction token.
func Turn(token string) Intents {
	return Intents{Direction: token}
}

// RevealCard returns an intent set revealing the card at index.
func RevealCard(index int) Intents {
	return Intents{Reveal: true, Card: index}
}

// Horizontal returns -1 for left, +1 for right and 0 otherwise.
// Left and right together contradict each other and decode to 0.
func (in Intents) Horizontal() int {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	default:
		return 0
	}
}

// Heading decodes the direction token. Empty or unknown tokens report false.
func (in Intents) Heading() (Direction, bool) {
	if in.Direction == "" {
		return DirNone, false
	}
	return ParseDirection(in.Direction)
}
