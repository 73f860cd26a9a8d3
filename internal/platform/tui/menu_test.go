package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(80, 24)
	require.Len(t, m.items, 3)
	assert.Contains(t, m.View(), m.items[0].Title)

	press := func(msg tea.KeyMsg) tea.Cmd {
		next, cmd := m.Update(msg)
		m = next.(MenuModel)
		return cmd
	}

	press(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor stays on the first item")
	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.cursor, "cursor stays on the last item")

	cmd := press(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.NotNil(t, m.selected)
	assert.Equal(t, m.items[2].ID, m.selected.ID)
}

func TestMenuOpensReplays(t *testing.T) {
	m := NewMenuModel(80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	assert.True(t, next.(MenuModel).openReplays)
}
