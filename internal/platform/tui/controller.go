package tui

import (
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

// Terminals report key presses, not key releases, so a press keeps the
// paddle moving for a few ticks; auto-repeat then extends the hold.
const defaultHoldTicks = 6

// controller decodes the actions collected between ticks into intents.
// The control scheme follows the world's shape: a paddle moves sideways,
// a snake turns and a card table gets a cursor.
type controller struct {
	holdTicks int
	hold      int
	dir       int
	cursor    int
}

func newController(tickRate int) *controller {
	hold := defaultHoldTicks
	if tickRate > 0 && tickRate < 30 {
		hold = 1
	}
	return &controller{holdTicks: hold}
}

func (c *controller) reset() {
	c.hold, c.dir, c.cursor = 0, 0, 0
}

// intents returns the intents for the next tick of a session in world w.
func (c *controller) intents(frame core.InputFrame, w *engine.World) engine.Intents {
	switch {
	case w.Paddle != nil:
		return c.paddle(frame)
	case w.Snake != nil:
		return steer(frame)
	case len(w.Cards) > 0:
		return c.cards(frame, w)
	}
	return engine.NoIntents()
}

func (c *controller) paddle(frame core.InputFrame) engine.Intents {
	left, right := frame.Has(core.ActionLeft), frame.Has(core.ActionRight)
	switch {
	case left && !right:
		c.dir, c.hold = -1, c.holdTicks
	case right && !left:
		c.dir, c.hold = 1, c.holdTicks
	}

	if c.hold == 0 {
		return engine.NoIntents()
	}
	c.hold--
	return engine.Move(c.dir < 0, c.dir > 0)
}

func steer(frame core.InputFrame) engine.Intents {
	for _, d := range []struct {
		action core.Action
		dir    engine.Direction
	}{
		{core.ActionUp, engine.DirUp},
		{core.ActionDown, engine.DirDown},
		{core.ActionLeft, engine.DirLeft},
		{core.ActionRight, engine.DirRight},
	} {
		if frame.Has(d.action) {
			return engine.Turn(d.dir.String())
		}
	}
	return engine.NoIntents()
}

func (c *controller) cards(frame core.InputFrame, w *engine.World) engine.Intents {
	n := len(w.Cards)
	cols := columns(w)

	if frame.Has(core.ActionLeft) && c.cursor%cols > 0 {
		c.cursor--
	}
	if frame.Has(core.ActionRight) && c.cursor%cols < cols-1 && c.cursor+1 < n {
		c.cursor++
	}
	if frame.Has(core.ActionUp) && c.cursor-cols >= 0 {
		c.cursor -= cols
	}
	if frame.Has(core.ActionDown) && c.cursor+cols < n {
		c.cursor += cols
	}
	c.cursor = core.Clamp(c.cursor, 0, n-1)

	if frame.Has(core.ActionSelect) {
		return engine.RevealCard(c.cursor)
	}
	return engine.NoIntents()
}

// columns counts the cards on the first row of the table.
func columns(w *engine.World) int {
	cols := 0
	for i := range w.Cards {
		if w.Cards[i].Pos.Y != w.Cards[0].Pos.Y {
			break
		}
		cols++
	}
	return max(cols, 1)
}
