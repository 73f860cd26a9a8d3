// Package replay records the intents fed to a session so the game can be
// re-simulated later and checked against its final digest.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/arcade-engine/internal/engine"
)

var (
	// ErrDigestMismatch means a replay did not reproduce its recorded state.
	ErrDigestMismatch = errors.New("replay: digest mismatch")
	// ErrWrongGame means a replay was run on another variant's machine.
	ErrWrongGame = errors.New("replay: wrong game")
)

// Input is the journal form of engine.Intents.
type Input struct {
	Left      bool   `msgpack:"l,omitempty"`
	Right     bool   `msgpack:"r,omitempty"`
	Direction string `msgpack:"d,omitempty"`
	Reveal    bool   `msgpack:"v,omitempty"`
	Card      int    `msgpack:"c,omitempty"`
}

func fromIntents(in engine.Intents) Input {
	return Input(in)
}

// Intents converts the input back for Step.
func (in Input) Intents() engine.Intents {
	return engine.Intents(in)
}

// Run is Count consecutive ticks with the same input.
type Run struct {
	Count int   `msgpack:"n"`
	Input Input `msgpack:"i"`
}

// Replay is everything needed to re-simulate a session: the variant, its
// resolved configuration, the seed and the per-tick intents.
type Replay struct {
	ID        string    `msgpack:"id"`
	Game      string    `msgpack:"game"`
	Seed      int64     `msgpack:"seed"`
	Config    []byte    `msgpack:"config"`
	Journal   []Run     `msgpack:"journal"`
	Ticks     uint64    `msgpack:"ticks"`
	Score     int       `msgpack:"score"`
	Won       bool      `msgpack:"won"`
	Digest    uint64    `msgpack:"digest"`
	CreatedAt time.Time `msgpack:"created_at"`
}

// Inputs expands the journal into one intent set per tick.
func (r *Replay) Inputs() []engine.Intents {
	var out []engine.Intents
	for _, run := range r.Journal {
		in := run.Input.Intents()
		for range run.Count {
			out = append(out, in)
		}
	}
	return out
}

// Encode serializes the replay with msgpack.
func Encode(r *Replay) ([]byte, error) {
	data, err := msgpack.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("replay: encode: %w", err)
	}
	return data, nil
}

// Decode parses data produced by Encode.
func Decode(data []byte) (*Replay, error) {
	var r Replay
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	return &r, nil
}

// EncodeJournal serializes only the intent journal, for stores that keep the
// other fields in their own columns.
func EncodeJournal(journal []Run) ([]byte, error) {
	data, err := msgpack.Marshal(journal)
	if err != nil {
		return nil, fmt.Errorf("replay: encode journal: %w", err)
	}
	return data, nil
}

// DecodeJournal parses data produced by EncodeJournal.
func DecodeJournal(data []byte) ([]Run, error) {
	var journal []Run
	if err := msgpack.Unmarshal(data, &journal); err != nil {
		return nil, fmt.Errorf("replay: decode journal: %w", err)
	}
	return journal, nil
}

// Recorder collects the intents of a live session.
// Only ticks that reached Step should be recorded.
type Recorder struct {
	game    string
	seed    int64
	config  []byte
	journal []Run
	ticks   uint64
}

// NewRecorder starts a journal for a session of game started with seed.
func NewRecorder(game string, seed int64, config []byte) *Recorder {
	return &Recorder{game: game, seed: seed, config: config}
}

// Record appends one tick.
func (r *Recorder) Record(in engine.Intents) {
	r.ticks++
	input := fromIntents(in)
	if n := len(r.journal); n > 0 && r.journal[n-1].Input == input {
		r.journal[n-1].Count++
		return
	}
	r.journal = append(r.journal, Run{Count: 1, Input: input})
}

// Ticks returns how many ticks were recorded.
func (r *Recorder) Ticks() uint64 {
	return r.ticks
}

// Finish seals the journal against the session it produced.
func (r *Recorder) Finish(final *engine.Session) *Replay {
	return &Replay{
		ID:        uuid.NewString(),
		Game:      r.game,
		Seed:      r.seed,
		Config:    r.config,
		Journal:   append([]Run(nil), r.journal...),
		Ticks:     r.ticks,
		Score:     final.Score,
		Won:       final.Won,
		Digest:    final.Digest(),
		CreatedAt: time.Now().UTC(),
	}
}

// Verify re-simulates the replay on m and checks the final digest.
// The re-simulated session is returned even when the digests differ.
func Verify(m *engine.Machine, r *Replay) (*engine.Session, error) {
	if m.ID() != r.Game {
		return nil, fmt.Errorf("%w: replay is %q, machine is %q", ErrWrongGame, r.Game, m.ID())
	}

	s, err := m.Start(r.Seed)
	if err != nil {
		return nil, fmt.Errorf("replay: %s: %w", r.ID, err)
	}
	for _, run := range r.Journal {
		in := run.Input.Intents()
		for range run.Count {
			s, _ = m.Step(s, in)
		}
	}

	if got := s.Digest(); got != r.Digest {
		return s, fmt.Errorf("%w: %s: got %016x, recorded %016x", ErrDigestMismatch, r.ID, got, r.Digest)
	}
	return s, nil
}
