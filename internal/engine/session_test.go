package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

func TestCloneIsDeep(t *testing.T) {
	s := &Session{
		Variant: "toy",
		State:   StatePlaying,
		World: World{
			Paddle: &Paddle{Body: Body{Pos: core.V(1, 2)}},
			Ball:   &Ball{Body: Body{Pos: core.V(3, 4)}},
			Bricks: []Brick{{ID: 1}},
			Snake:  &Snake{Cells: []core.Vec2{core.V(0, 0)}},
			Cards:  []Card{{ID: 0, Key: "A"}},
		},
	}

	c := s.Clone()
	c.World.Paddle.Pos.X = 99
	c.World.Ball.Pos.X = 99
	c.World.Bricks[0].Destroyed = true
	c.World.Snake.Cells[0] = core.V(9, 9)
	c.World.Cards[0].Revealed = true

	assert.Equal(t, 1.0, s.World.Paddle.Pos.X)
	assert.Equal(t, 3.0, s.World.Ball.Pos.X)
	assert.False(t, s.World.Bricks[0].Destroyed)
	assert.Equal(t, core.V(0, 0), s.World.Snake.Cells[0])
	assert.False(t, s.World.Cards[0].Revealed)
}

func TestSnapshotHidesDestroyedBricksAndFaceDownCards(t *testing.T) {
	s := &Session{
		Variant: "toy",
		World: World{
			Cell: 10,
			Bricks: []Brick{
				{ID: 1, Body: Body{W: 10, H: 5}},
				{ID: 2, Body: Body{W: 10, H: 5}, Destroyed: true},
			},
			Cards: []Card{
				{ID: 0, Key: "A", Revealed: true},
				{ID: 1, Key: "B"},
				{ID: 2, Key: "C", Matched: true},
			},
		},
	}

	snap := s.Snapshot()
	var bricks []int
	labels := map[int]string{}
	for _, e := range snap.Entities {
		switch e.Kind {
		case EntityBrick:
			bricks = append(bricks, e.ID)
		case EntityCard:
			labels[e.ID] = e.Label
		}
	}

	assert.Equal(t, []int{1}, bricks)
	assert.Equal(t, map[int]string{0: "A", 1: "", 2: "C"}, labels)
}

func TestSnapshotSnakeCells(t *testing.T) {
	s := &Session{World: World{
		Cell:  20,
		Snake: &Snake{Cells: []core.Vec2{core.V(40, 0), core.V(20, 0)}},
		Food:  Food{Pos: core.V(80, 80), Placed: true},
	}}

	snap := s.Snapshot()
	require.Len(t, snap.Entities, 3)
	assert.Equal(t, EntityFood, snap.Entities[0].Kind)
	assert.Equal(t, EntitySnakeHead, snap.Entities[1].Kind)
	assert.Equal(t, core.NewRect(40, 0, 20, 20), snap.Entities[1].Bounds)
	assert.Equal(t, EntitySnakeBody, snap.Entities[2].Kind)
}

func TestDigestTracksState(t *testing.T) {
	m := newToy(t, 3, 0, nil)
	s, err := m.Start(11)
	require.NoError(t, err)

	d := s.Digest()
	assert.Equal(t, d, s.Digest(), "digest is stable")
	assert.Equal(t, d, s.Clone().Digest())

	c := s.Clone()
	c.Score++
	assert.NotEqual(t, d, c.Digest())

	c = s.Clone()
	c.World.Ball.Vel.X = -c.World.Ball.Vel.X + 0.5
	assert.NotEqual(t, d, c.Digest())

	c = s.Clone()
	c.World.Bricks[0].Destroyed = true
	assert.NotEqual(t, d, c.Digest())

	other, err := m.Start(12)
	require.NoError(t, err)
	other.World = s.World.Clone()
	assert.NotEqual(t, d, other.Digest(), "rng state is part of the digest")
}

func TestIntentsDecoding(t *testing.T) {
	assert.Equal(t, -1, Move(true, false).Horizontal())
	assert.Equal(t, 1, Move(false, true).Horizontal())
	assert.Equal(t, 0, Move(true, true).Horizontal(), "contradictory input is dropped")
	assert.Equal(t, 0, NoIntents().Horizontal())

	d, ok := Turn(" UP ").Heading()
	assert.True(t, ok)
	assert.Equal(t, DirUp, d)

	_, ok = Turn("sideways").Heading()
	assert.False(t, ok)
	_, ok = NoIntents().Heading()
	assert.False(t, ok)

	assert.Equal(t, DirLeft, DirRight.Opposite())
	assert.Equal(t, core.V(0, -1), DirUp.Delta())
}

func TestEventStrings(t *testing.T) {
	assert.Equal(t, "WallBounced(x)", Event{Kind: EventWallBounced, Axis: AxisX}.String())
	assert.Equal(t, "BrickDestroyed(4)", Event{Kind: EventBrickDestroyed, ID: 4}.String())
	assert.Equal(t, "PairMatched(1,3)", Event{Kind: EventPairMatched, Pair: [2]int{1, 3}}.String())
	assert.Equal(t, "GameWon", Event{Kind: EventGameWon}.String())
	assert.Equal(t, "Unknown", EventKind(99).String())
}
