package engine

// Card table mechanics shared by pair-matching variants.
// A mismatched pair stays face up for a number of ticks counted on the
// world (HideCountdown); nothing outside Step advances it.

// TickHide counts down a pending mismatch and turns the pair face down when
// the countdown reaches zero.
func TickHide(w *World) []Event {
	if w.HideCountdown <= 0 {
		return nil
	}
	w.HideCountdown--
	if w.HideCountdown > 0 {
		return nil
	}

	up := w.FaceUp()
	var ev Event
	ev.Kind = EventCardsHidden
	for n, i := range up {
		w.Cards[i].Revealed = false
		if n < len(ev.Pair) {
			ev.Pair[n] = w.Cards[i].ID
		}
	}
	return []Event{ev}
}

// Reveal turns the card at index face up. It is refused (returns false) when
// the index is out of range, the card is already face up or matched, or two
// unmatched cards are already showing.
func Reveal(w *World, index int) (Event, bool) {
	if index < 0 || index >= len(w.Cards) {
		return Event{}, false
	}
	c := &w.Cards[index]
	if c.Revealed || c.Matched {
		return Event{}, false
	}
	if len(w.FaceUp()) >= 2 {
		return Event{}, false
	}
	c.Revealed = true
	return Event{Kind: EventCardRevealed, ID: c.ID, Pos: c.Pos}, true
}

// EvaluatePair decides match or mismatch once exactly two unmatched cards are
// face up and no hide is pending. A mismatch arms the hide countdown.
func EvaluatePair(w *World, hideDelay int) (Event, bool) {
	if w.HideCountdown > 0 {
		return Event{}, false
	}
	up := w.FaceUp()
	if len(up) != 2 {
		return Event{}, false
	}

	a, b := &w.Cards[up[0]], &w.Cards[up[1]]
	pair := [2]int{a.ID, b.ID}
	w.Moves++

	if a.Key == b.Key {
		a.Matched = true
		b.Matched = true
		return Event{Kind: EventPairMatched, Pair: pair}, true
	}

	w.HideCountdown = max(hideDelay, 1)
	return Event{Kind: EventPairMismatched, Pair: pair}, true
}
