package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/games/breakout"
	"github.com/vovakirdan/arcade-engine/internal/games/match"
	"github.com/vovakirdan/arcade-engine/internal/games/snake"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/replay"
)

func breakoutGame(t *testing.T) *registry.Game {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	m, err := breakout.New(cfg)
	require.NoError(t, err)
	data, err := config.Encode(cfg)
	require.NoError(t, err)
	return &registry.Game{Machine: m, TickRate: cfg.Gameplay.TickRate, Config: data}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"right", core.ActionRight},
		{"w", core.ActionUp},
		{"down", core.ActionDown},
		{" ", core.ActionSelect},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"x", core.ActionNone},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, keys.Action(keyMsg(tc.key)), "key %q", tc.key)
	}

	assert.Equal(t, MenuActionReplays, keys.MenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionSelect, keys.MenuAction(keyMsg(" ")))
}

func TestModelStartsFromMenu(t *testing.T) {
	m := NewModel(breakoutGame(t), Options{Seed: 9})
	assert.Equal(t, engine.StateMenu, m.Session().State)

	// Ticks do nothing until the player starts.
	now := time.Unix(100, 0)
	m = send(t, m, TickMsg(now), TickMsg(now.Add(time.Second)))
	assert.Equal(t, engine.StateMenu, m.Session().State)

	m = send(t, m, keyMsg(" "))
	require.Equal(t, engine.StatePlaying, m.Session().State)
	assert.Equal(t, int64(9), m.Session().Seed)
}

func TestModelRunsDueTicks(t *testing.T) {
	m := NewModel(breakoutGame(t), Options{Seed: 3})
	m = send(t, m, keyMsg(" "))

	now := time.Unix(100, 0)
	m = send(t, m, TickMsg(now))
	assert.Equal(t, uint64(0), m.Session().Tick)

	// Two ticks are due at 60 Hz after 35ms.
	m = send(t, m, TickMsg(now.Add(35*time.Millisecond)))
	assert.Equal(t, uint64(2), m.Session().Tick)

	// A long stall is capped.
	m = send(t, m, TickMsg(now.Add(5*time.Second)))
	assert.Equal(t, uint64(2+engine.DefaultMaxCatchUp), m.Session().Tick)
}

func TestModelPause(t *testing.T) {
	m := NewModel(breakoutGame(t), Options{Seed: 3})
	now := time.Unix(100, 0)
	m = send(t, m, keyMsg(" "), TickMsg(now), keyMsg("p"))

	m = send(t, m, TickMsg(now.Add(time.Second)))
	assert.Equal(t, uint64(0), m.Session().Tick)
	assert.Contains(t, m.View(), "PAUSED")

	m = send(t, m, keyMsg("p"), TickMsg(now.Add(time.Second+20*time.Millisecond)))
	assert.Equal(t, uint64(1), m.Session().Tick)
}

func TestModelPaddleInput(t *testing.T) {
	m := NewModel(breakoutGame(t), Options{Seed: 3})
	now := time.Unix(100, 0)
	m = send(t, m, keyMsg(" "), TickMsg(now))
	x0 := m.Session().World.Paddle.Pos.X

	m = send(t, m, keyMsg("left"), TickMsg(now.Add(17*time.Millisecond)))
	assert.Less(t, m.Session().World.Paddle.Pos.X, x0)
}

func TestModelRecordsReplay(t *testing.T) {
	game := breakoutGame(t)
	var saved []*replay.Replay
	m := NewModel(game, Options{
		Seed:   11,
		Record: true,
		OnReplay: func(r *replay.Replay) error {
			saved = append(saved, r)
			return nil
		},
	})

	now := time.Unix(100, 0)
	m = send(t, m, keyMsg(" "), TickMsg(now))
	for i := 1; i <= 20; i++ {
		if i%4 == 0 {
			m = send(t, m, keyMsg("right"))
		}
		m = send(t, m, TickMsg(now.Add(time.Duration(i)*50*time.Millisecond)))
	}
	require.Positive(t, m.Session().Tick)

	next, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Empty(t, next.View())

	require.Len(t, saved, 1)
	r := saved[0]
	assert.Equal(t, breakout.ID, r.Game)
	assert.Equal(t, int64(11), r.Seed)
	assert.Equal(t, m.Session().Tick, r.Ticks)

	s, err := replay.Verify(game.Machine, r)
	require.NoError(t, err)
	assert.Equal(t, m.Session().Digest(), s.Digest())
}

func TestModelRestartAfterGameOver(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	sm, err := snake.New(cfg)
	require.NoError(t, err)
	game := &registry.Game{Machine: sm, TickRate: cfg.Gameplay.TickRate}

	m := NewModel(game, Options{Seed: 5})
	now := time.Unix(100, 0)
	m = send(t, m, keyMsg(" "), TickMsg(now))

	// Heading right from the middle of the board hits the wall eventually.
	for i := 1; i <= 40 && !m.Session().Over(); i++ {
		m = send(t, m, TickMsg(now.Add(time.Duration(i)*100*time.Millisecond)))
	}
	require.True(t, m.Session().Over())
	assert.Contains(t, m.View(), "GAME OVER")

	m = send(t, m, keyMsg("r"))
	assert.Equal(t, engine.StatePlaying, m.Session().State)
	assert.Equal(t, int64(6), m.Session().Seed)
}

func TestControllerCards(t *testing.T) {
	mm, err := match.New(config.DefaultMatchConfig())
	require.NoError(t, err)
	s, err := mm.Start(1)
	require.NoError(t, err)
	w := &s.World
	require.Equal(t, 4, columns(w))

	c := newController(30)
	frame := core.NewInputFrame()

	step := func(actions ...core.Action) engine.Intents {
		frame.Clear()
		for _, a := range actions {
			frame.Set(a)
		}
		return c.intents(frame, w)
	}

	assert.Equal(t, engine.NoIntents(), step(core.ActionLeft))
	assert.Equal(t, 0, c.cursor)
	step(core.ActionRight)
	step(core.ActionDown)
	assert.Equal(t, 5, c.cursor)
	step(core.ActionDown)
	step(core.ActionDown)
	step(core.ActionDown)
	assert.Equal(t, 13, c.cursor, "cursor stops at the last row")
	assert.Equal(t, engine.RevealCard(13), step(core.ActionSelect))
}

func TestControllerPaddleHold(t *testing.T) {
	m, err := breakout.New(config.DefaultBreakoutConfig())
	require.NoError(t, err)
	s, err := m.Start(1)
	require.NoError(t, err)

	c := newController(60)
	frame := core.NewInputFrame()
	frame.Set(core.ActionLeft)

	assert.Equal(t, engine.Move(true, false), c.intents(frame, &s.World))
	frame.Clear()
	for range defaultHoldTicks - 1 {
		assert.Equal(t, engine.Move(true, false), c.intents(frame, &s.World))
	}
	assert.Equal(t, engine.NoIntents(), c.intents(frame, &s.World))
}

func TestControllerSteer(t *testing.T) {
	m, err := snake.New(config.DefaultSnakeConfig())
	require.NoError(t, err)
	s, err := m.Start(1)
	require.NoError(t, err)

	c := newController(10)
	frame := core.NewInputFrame()
	assert.Equal(t, engine.NoIntents(), c.intents(frame, &s.World))

	frame.Set(core.ActionDown)
	assert.Equal(t, engine.Turn("down"), c.intents(frame, &s.World))
}

func TestDrawSnapshot(t *testing.T) {
	m, err := snake.New(config.DefaultSnakeConfig())
	require.NoError(t, err)
	s, err := m.Start(1)
	require.NoError(t, err)

	scr := core.NewScreen(42, 25)
	Draw(scr, s.Snapshot(), Frame{Title: "Snake", TickRate: 10, Cursor: -1})

	out := scr.String()
	assert.True(t, strings.HasPrefix(scr.Row(0), "SNAKE  score 0  lives 1"))
	assert.Contains(t, out, "@")
	assert.Equal(t, 1, strings.Count(out, "*"), "food is drawn as a single cell")
	assert.Equal(t, '┌', scr.Get(0, 1))
	assert.Equal(t, '┘', scr.Get(41, 23))

	menu := m.Menu()
	Draw(scr, menu.Snapshot(), Frame{Title: "Snake", Cursor: -1})
	assert.Contains(t, scr.String(), "press space to start")

	tiny := core.NewScreen(3, 3)
	Draw(tiny, s.Snapshot(), Frame{})
	assert.Equal(t, "too", tiny.Row(0))
}

func TestDrawCards(t *testing.T) {
	cfg := config.DefaultMatchConfig()
	cfg.Deck = []string{"A", "B", "A", "B"}
	cfg.Columns = 2
	m, err := match.New(cfg)
	require.NoError(t, err)
	s, err := m.Start(1)
	require.NoError(t, err)
	s, _ = m.Step(s, engine.RevealCard(1))

	scr := core.NewScreen(40, 24)
	Draw(scr, s.Snapshot(), Frame{Title: "Match", Cursor: 2})

	out := scr.String()
	assert.Equal(t, 1, strings.Count(out, "B"))
	assert.Equal(t, 3, strings.Count(out, "?"))
	assert.Equal(t, 1, strings.Count(out, "["))
	assert.Contains(t, RenderScreen(scr), "B")
}
