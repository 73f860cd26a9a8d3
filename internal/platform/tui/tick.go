// Package tui provides the Bubble Tea driver for the arcade engine.
// It maps keys to intents, paces the simulation with a fixed-timestep clock
// and projects session snapshots onto the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per rendered frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one
// frame at the given rate. Frames and simulation ticks are decoupled: the
// model runs as many ticks per frame as its clock says are due.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
