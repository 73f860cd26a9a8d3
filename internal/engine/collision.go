package engine

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// The resolver works on one tick at a time and always runs in this order:
//
//  1. integrate position
//  2. walls (left, right, top; the bottom is open)
//  3. paddle
//  4. bricks, first hit only
//  5. loss (ball past the bottom, snake out of bounds or on itself)
//  6. pickup (food)
//
// Walls resolve before paddle and bricks when both are possible in one tick.

// Integrate advances a body by one tick of its velocity.
func Integrate(b *Body) {
	b.Pos = b.Pos.Add(b.Vel)
}

// ResolveWalls reflects the ball off the left, right and top walls and clamps
// it back inside the field. A ball touching a wall counts as hitting it.
func ResolveWalls(b *Ball, f Field) []Event {
	var events []Event
	r := b.Radius

	switch {
	case b.Pos.X-r <= 0:
		b.Pos.X = r
		if b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X
			events = append(events, Event{Kind: EventWallBounced, Axis: AxisX, Pos: b.Pos})
		}
	case b.Pos.X+r >= f.W:
		b.Pos.X = f.W - r
		if b.Vel.X > 0 {
			b.Vel.X = -b.Vel.X
			events = append(events, Event{Kind: EventWallBounced, Axis: AxisX, Pos: b.Pos})
		}
	}

	if b.Pos.Y-r <= 0 {
		b.Pos.Y = r
		if b.Vel.Y < 0 {
			b.Vel.Y = -b.Vel.Y
			events = append(events, Event{Kind: EventWallBounced, Axis: AxisY, Pos: b.Pos})
		}
	}

	return events
}

// ResolvePaddle bounces the ball off the paddle. The test only runs when the
// ball's vertical band overlaps the paddle's. The ball always leaves upward and
// its horizontal velocity is replaced by (offset - 0.5) * spin, where offset is
// the hit position across the paddle in [0, 1].
func ResolvePaddle(b *Ball, p *Paddle, spin float64) (Event, bool) {
	pr := p.Rect()
	if !core.OverlapsSpan(b.Pos.Y-b.Radius, b.Pos.Y+b.Radius, pr.Y, pr.Bottom()) {
		return Event{}, false
	}
	if !core.CircleIntersectsRect(b.Circle(), pr) {
		return Event{}, false
	}

	offset := 0.5
	if pr.W > 0 {
		offset = core.ClampF((b.Pos.X-pr.X)/pr.W, 0, 1)
	}

	b.Vel.Y = -math.Abs(b.Vel.Y)
	b.Vel.X = (offset - 0.5) * spin
	b.Pos.Y = pr.Y - b.Radius

	return Event{Kind: EventPaddleHit, Offset: offset, Pos: b.Pos}, true
}

// ResolveBricks destroys the first live brick, in index order, that the ball
// overlaps and inverts the ball's vertical velocity. Scanning stops at the
// first hit, so at most one brick breaks per tick.
func ResolveBricks(b *Ball, bricks []Brick) (Event, bool) {
	c := b.Circle()
	for i := range bricks {
		brick := &bricks[i]
		if brick.Destroyed {
			continue
		}
		if !core.CircleIntersectsRect(c, brick.Rect()) {
			continue
		}
		brick.Destroyed = true
		b.Vel.Y = -b.Vel.Y
		return Event{Kind: EventBrickDestroyed, ID: brick.ID, Pos: brick.Rect().Center(), Points: brick.Points}, true
	}
	return Event{}, false
}

// BallOut reports whether the ball's bottom edge reached the field bottom.
func BallOut(b *Ball, f Field) bool {
	return b.Pos.Y+b.Radius >= f.H
}

// ResolveBall runs the full ball pipeline for one tick.
// paddle may be nil.
func ResolveBall(w *World, spin float64) []Event {
	b := w.Ball
	if b == nil {
		return nil
	}

	Integrate(&b.Body)
	events := ResolveWalls(b, w.Field)

	if w.Paddle != nil {
		if ev, ok := ResolvePaddle(b, w.Paddle, spin); ok {
			events = append(events, ev)
		}
	}

	if ev, ok := ResolveBricks(b, w.Bricks); ok {
		events = append(events, ev)
	}

	if BallOut(b, w.Field) {
		events = append(events, Event{Kind: EventBallLost, Pos: b.Pos})
	}

	return events
}

// MovePaddle shifts the paddle by dir * Speed and clamps it to
// [0, field width - paddle width].
func MovePaddle(p *Paddle, f Field, dir int) {
	p.Pos.X += float64(dir) * p.Speed
	p.Pos.X = core.ClampF(p.Pos.X, 0, math.Max(0, f.W-p.W))
}

// AdvanceSnake moves the snake one cell along its buffered heading. The tail
// is always released (see Snake.Vacated); growing puts it back. Loss is tested
// before pickup.
func AdvanceSnake(w *World) []Event {
	s := w.Snake
	if s == nil || len(s.Cells) == 0 {
		return nil
	}

	if s.Next != DirNone {
		s.Heading = s.Next
	}

	head := s.Cells[0].Add(s.Heading.Delta().Scale(w.Cell))
	s.Vacated = s.Cells[len(s.Cells)-1]
	copy(s.Cells[1:], s.Cells[:len(s.Cells)-1])
	s.Cells[0] = head

	if !core.PointInRect(head, w.Field.Rect()) {
		return []Event{{Kind: EventOutOfBounds, Pos: head}}
	}
	for _, c := range s.Cells[1:] {
		if c == head {
			return []Event{{Kind: EventSelfCollision, Pos: head}}
		}
	}

	if w.Food.Placed && head == w.Food.Pos {
		return []Event{{Kind: EventFoodEaten, Pos: head}}
	}
	return nil
}

// GrowSnake re-attaches the cell the tail vacated on the last move.
func GrowSnake(s *Snake) {
	s.Cells = append(s.Cells, s.Vacated)
}

// foodAttempts bounds rejection sampling before falling back to a scan.
const foodAttempts = 64

// PlaceFood picks a random grid cell not covered by the snake. It samples
// cells and rejects occupied ones; a crowded board falls back to choosing
// among the remaining free cells. Placed is false when none is left.
func PlaceFood(w *World, rng *core.RNG) Food {
	cols := int(w.Field.W / w.Cell)
	rows := int(w.Field.H / w.Cell)
	if cols <= 0 || rows <= 0 {
		return Food{}
	}

	cellAt := func(i int) core.Vec2 {
		return core.V(float64(i%cols)*w.Cell, float64(i/cols)*w.Cell)
	}

	for range foodAttempts {
		p := cellAt(rng.Intn(cols * rows))
		if w.Snake == nil || !w.Snake.Occupies(p) {
			return Food{Pos: p, Placed: true}
		}
	}

	var free []core.Vec2
	for i := range cols * rows {
		p := cellAt(i)
		if !w.Snake.Occupies(p) {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return Food{}
	}
	return Food{Pos: free[rng.Intn(len(free))], Placed: true}
}
