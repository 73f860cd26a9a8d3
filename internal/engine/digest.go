package engine

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Digest returns a 64-bit hash of the session's canonical state. Two sessions
// with equal digests are, for replay purposes, the same game at the same tick.
func (s *Session) Digest() uint64 {
	d := digester{h: xxhash.New()}

	d.str(s.Variant)
	d.ints(int64(s.State))
	d.ints(int64(s.Score))
	d.ints(int64(s.Lives))
	d.ints(int64(s.TimeRemaining))
	d.bools(s.Won)
	d.u64(s.Tick)
	d.u64(s.RNG.State)

	w := &s.World
	d.floats(w.Field.W, w.Field.H, w.Cell)
	if w.Paddle != nil {
		d.body(w.Paddle.Body)
	}
	if w.Ball != nil {
		d.body(w.Ball.Body)
	}
	for i := range w.Bricks {
		d.ints(int64(w.Bricks[i].ID))
		d.bools(w.Bricks[i].Destroyed)
	}
	if w.Snake != nil {
		d.ints(int64(w.Snake.Heading), int64(w.Snake.Next))
		for _, c := range w.Snake.Cells {
			d.floats(c.X, c.Y)
		}
	}
	d.bools(w.Food.Placed)
	d.floats(w.Food.Pos.X, w.Food.Pos.Y)
	for i := range w.Cards {
		c := &w.Cards[i]
		d.ints(int64(c.ID))
		d.str(c.Key)
		d.bools(c.Revealed, c.Matched)
	}
	d.ints(int64(w.HideCountdown), int64(w.Moves))

	return d.h.Sum64()
}

type digester struct {
	h   *xxhash.Digest
	buf [8]byte
}

func (d *digester) u64(vs ...uint64) {
	for _, v := range vs {
		binary.LittleEndian.PutUint64(d.buf[:], v)
		_, _ = d.h.Write(d.buf[:])
	}
}

func (d *digester) ints(vs ...int64) {
	for _, v := range vs {
		d.u64(uint64(v)) //#nosec G115 -- hash input
	}
}

func (d *digester) floats(vs ...float64) {
	for _, v := range vs {
		d.u64(math.Float64bits(v))
	}
}

func (d *digester) bools(vs ...bool) {
	for _, v := range vs {
		if v {
			d.u64(1)
		} else {
			d.u64(0)
		}
	}
}

func (d *digester) str(s string) {
	d.u64(uint64(len(s)))
	_, _ = d.h.WriteString(s)
}

func (d *digester) body(b Body) {
	d.floats(b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.W, b.H, b.Radius)
}
