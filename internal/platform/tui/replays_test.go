package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/replay"
)

type fakeLister map[string][]*replay.Replay

func (f fakeLister) ListReplays(gameID string, _ int) ([]*replay.Replay, error) {
	return f[gameID], nil
}

func TestBrowserVerifiesSelection(t *testing.T) {
	games := registry.List()
	require.NotEmpty(t, games)
	first := games[0].ID

	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	store := fakeLister{first: {
		{ID: "aaaaaaaa-1111", Game: first, Score: 30, Ticks: 900, CreatedAt: at},
		{ID: "bbbbbbbb-2222", Game: first, Score: 70, Ticks: 1200, Won: true, CreatedAt: at},
	}}

	var checked []string
	verify := func(id string) error {
		checked = append(checked, id)
		if id == "bbbbbbbb-2222" {
			return errors.New("digest mismatch")
		}
		return nil
	}

	m := NewBrowserModel(store, verify, 100, 30)
	assert.Contains(t, m.View(), "aaaaaaaa")

	update := func(msg tea.Msg) {
		next, _ := m.Update(msg)
		m = next.(BrowserModel)
	}

	update(tea.KeyMsg{Type: tea.KeyEnter})
	update(tea.KeyMsg{Type: tea.KeyDown})
	update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"aaaaaaaa-1111", "bbbbbbbb-2222"}, checked)
	assert.NoError(t, m.verdicts["aaaaaaaa-1111"])
	assert.Error(t, m.verdicts["bbbbbbbb-2222"])
	assert.Contains(t, m.View(), "FAIL")

	update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.IsGoingBack())
	assert.Empty(t, m.View())
}

func TestBrowserSwitchesGames(t *testing.T) {
	games := registry.List()
	require.GreaterOrEqual(t, len(games), 2)

	store := fakeLister{games[1].ID: {{ID: "cccccccc", Game: games[1].ID}}}
	m := NewBrowserModel(store, nil, 100, 30)
	assert.Contains(t, m.View(), "No replays recorded yet")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(BrowserModel)
	assert.Equal(t, games[1].ID, m.gameID())
	assert.Contains(t, m.View(), "cccccccc")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(BrowserModel)
	assert.Equal(t, games[0].ID, m.gameID())
}
