package snake

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

var headings = []engine.Direction{engine.DirUp, engine.DirRight, engine.DirDown, engine.DirLeft}

// Autopilot steers greedily toward the food, never into a wall or a body
// cell other than the tail, which moves away this tick.
func Autopilot(s *engine.Session) engine.Intents {
	w := &s.World
	sn := w.Snake
	if sn == nil || len(sn.Cells) == 0 {
		return engine.NoIntents()
	}
	head := sn.Head()

	best, bestDist := engine.DirNone, math.Inf(1)
	for _, d := range headings {
		if d == sn.Heading.Opposite() {
			continue
		}
		next := head.Add(d.Delta().Scale(w.Cell))
		if !safe(w, next) {
			continue
		}
		dist := math.Abs(next.X-w.Food.Pos.X) + math.Abs(next.Y-w.Food.Pos.Y)
		if dist < bestDist {
			best, bestDist = d, dist
		}
	}

	if best == engine.DirNone {
		return engine.NoIntents()
	}
	return engine.Turn(best.String())
}

func safe(w *engine.World, p core.Vec2) bool {
	if !core.PointInRect(p, w.Field.Rect()) {
		return false
	}
	body := w.Snake.Cells[:len(w.Snake.Cells)-1]
	for _, c := range body {
		if c == p {
			return false
		}
	}
	return true
}
