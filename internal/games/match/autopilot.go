package match

import "github.com/vovakirdan/arcade-engine/internal/engine"

// Autopilot plays a forgetful player: the first card of a move is the lowest
// face-down card; the second is its true partner on every other move and
// the next face-down card otherwise, so both outcomes show up.
func Autopilot(s *engine.Session) engine.Intents {
	w := &s.World
	if w.HideCountdown > 0 {
		return engine.NoIntents()
	}

	up := w.FaceUp()
	switch len(up) {
	case 0:
		if i := nextDown(w, -1); i >= 0 {
			return engine.RevealCard(i)
		}
	case 1:
		first := up[0]
		if w.Moves%2 == 1 {
			for i := range w.Cards {
				c := &w.Cards[i]
				if i != first && !c.Matched && c.Key == w.Cards[first].Key {
					return engine.RevealCard(i)
				}
			}
		}
		if i := nextDown(w, first); i >= 0 {
			return engine.RevealCard(i)
		}
	}
	return engine.NoIntents()
}

// nextDown returns the first face-down unmatched card after index from.
func nextDown(w *engine.World, from int) int {
	for i := from + 1; i < len(w.Cards); i++ {
		c := &w.Cards[i]
		if !c.Revealed && !c.Matched {
			return i
		}
	}
	return -1
}
