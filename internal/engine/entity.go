package engine

import (
	"slices"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Field is the playing area. Origin is the top-left corner, Y grows downward.
type Field struct {
	W, H float64
}

// Rect returns the field as a rectangle at the origin.
func (f Field) Rect() core.Rect {
	return core.NewRect(0, 0, f.W, f.H)
}

// Body is a movable entity. A body with a positive Radius is circular and
// Pos is its center; otherwise Pos is the top-left corner of a W x H box.
// Velocities are expressed per tick.
type Body struct {
	Pos    core.Vec2
	Vel    core.Vec2
	W, H   float64
	Radius float64
}

// Rect returns the body's bounding box.
func (b Body) Rect() core.Rect {
	if b.Radius > 0 {
		return b.Circle().Bounds()
	}
	return core.NewRect(b.Pos.X, b.Pos.Y, b.W, b.H)
}

// Circle returns the body's outline as a circle.
func (b Body) Circle() core.Circle {
	return core.Circle{C: b.Pos, R: b.Radius}
}

// Paddle is a rectangular body confined to the X axis.
type Paddle struct {
	Body
	Speed float64 // displacement per tick while a move intent is held
}

// Ball is a circular body.
type Ball struct {
	Body
}

// Brick is a static rectangular body. Destroyed bricks take no part in
// collision tests.
type Brick struct {
	ID int
	Body
	Points    int
	Destroyed bool
}

// Snake is an ordered list of grid cells, head first.
type Snake struct {
	Cells   []core.Vec2
	Heading Direction // direction of the last move
	Next    Direction // buffered direction applied on the next move
	Vacated core.Vec2 // cell the tail left on the last move
}

// Head returns the head cell.
func (s *Snake) Head() core.Vec2 {
	if len(s.Cells) == 0 {
		return core.Vec2{}
	}
	return s.Cells[0]
}

// Occupies reports whether any snake cell is at p.
func (s *Snake) Occupies(p core.Vec2) bool {
	return slices.Contains(s.Cells, p)
}

// Food is a single grid cell. Placed is false when the board had no free cell.
type Food struct {
	Pos    core.Vec2
	Placed bool
}

// Card is a face-down or face-up card on the match table.
type Card struct {
	ID       int
	Key      string
	Revealed bool
	Matched  bool
	Pos      core.Vec2
}

// World is the variant-specific entity collection of a session.
// Variants populate the parts they use and leave the rest zero.
type World struct {
	Field Field
	Cell  float64 // grid cell size for grid variants

	Paddle *Paddle
	Ball   *Ball
	Bricks []Brick

	Snake *Snake
	Food  Food

	Cards         []Card
	HideCountdown int // ticks until a mismatched pair is turned face down
	Moves         int // pairs attempted
}

// Clone returns a deep copy of the world.
func (w World) Clone() World {
	c := w
	if w.Paddle != nil {
		p := *w.Paddle
		c.Paddle = &p
	}
	if w.Ball != nil {
		b := *w.Ball
		c.Ball = &b
	}
	c.Bricks = slices.Clone(w.Bricks)
	if w.Snake != nil {
		s := *w.Snake
		s.Cells = slices.Clone(w.Snake.Cells)
		c.Snake = &s
	}
	c.Cards = slices.Clone(w.Cards)
	return c
}

// BricksRemaining counts bricks that are not destroyed.
func (w *World) BricksRemaining() int {
	n := 0
	for i := range w.Bricks {
		if !w.Bricks[i].Destroyed {
			n++
		}
	}
	return n
}

// FaceUp returns the indices of cards that are revealed but not matched.
func (w *World) FaceUp() []int {
	var idx []int
	for i := range w.Cards {
		if w.Cards[i].Revealed && !w.Cards[i].Matched {
			idx = append(idx, i)
		}
	}
	return idx
}

// AllMatched reports whether every card is matched.
func (w *World) AllMatched() bool {
	if len(w.Cards) == 0 {
		return false
	}
	for i := range w.Cards {
		if !w.Cards[i].Matched {
			return false
		}
	}
	return true
}
