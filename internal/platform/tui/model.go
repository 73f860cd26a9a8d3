package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/replay"
)

// DefaultFPS is the frame rate used when Options.FPS is unset.
const DefaultFPS = 60

// Options configures a play session.
type Options struct {
	FPS    int   // rendered frames per second; the simulation runs at the game's tick rate
	Seed   int64 // 0 picks a time-based seed
	Record bool  // journal every session for replay
	// OnReplay receives each finished recording. Errors are logged.
	OnReplay func(*replay.Replay) error
	Logger   *log.Logger
	Width    int
	Height   int
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game     *registry.Game
	opts     Options
	session  *engine.Session
	seed     int64
	clock    *engine.Clock
	last     time.Time
	frame    core.InputFrame
	ctl      *controller
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	recorder *replay.Recorder
	logger   *log.Logger
	paused   bool
	quitting bool
	err      error
}

// NewModel creates a new Bubble Tea model for the given game. The session
// starts in the menu state; the first select starts play.
func NewModel(game *registry.Game, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		opts:    opts,
		session: game.Machine.Menu(),
		clock:   engine.NewClock(game.TickRate),
		frame:   core.NewInputFrame(),
		ctl:     newController(game.TickRate),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		screen:  core.NewScreen(opts.Width, opts.Height-1),
		logger:  logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Width, m.opts.Height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if m.session.State == engine.StatePlaying {
			m.paused = !m.paused
			m.clock.Reset()
		}

	case core.ActionRestart:
		if m.session.Over() {
			m.start(m.nextSeed())
		}

	case core.ActionSelect:
		if m.session.State == engine.StateMenu {
			m.start(m.nextSeed())
			return m, nil
		}
		m.frame.Set(action)

	case core.ActionNone:

	default:
		m.frame.Set(action)
	}

	if m.err != nil {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) nextSeed() int64 {
	switch {
	case m.opts.Seed == 0:
		return time.Now().UnixNano()
	case m.seed == 0:
		return m.opts.Seed
	default:
		return m.seed + 1
	}
}

// start begins a new session and, when recording, a new journal.
func (m *Model) start(seed int64) {
	s, err := m.game.Machine.Start(seed)
	if err != nil {
		m.err = fmt.Errorf("tui: start %s: %w", m.game.Machine.ID(), err)
		return
	}

	m.session = s
	m.seed = seed
	m.paused = false
	m.clock.Reset()
	m.ctl.reset()
	m.frame.Clear()
	if m.opts.Record {
		m.recorder = replay.NewRecorder(m.game.Machine.ID(), seed, m.game.Config)
	}
	m.logger.Info("session started", "game", m.game.Machine.ID(), "seed", seed)
}

// handleTick runs the simulation ticks due since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	if m.session.State != engine.StatePlaying || m.paused {
		return m, tickCmd(m.opts.FPS)
	}

	for range m.clock.Advance(elapsed) {
		in := m.ctl.intents(m.frame, &m.session.World)
		m.frame.Clear()

		if m.recorder != nil {
			m.recorder.Record(in)
		}
		next, events := m.game.Machine.Step(m.session, in)
		m.session = next

		for _, ev := range events {
			m.logger.Debug("event", "tick", next.Tick, "event", ev.String())
		}
		if next.Over() {
			m.logger.Info("session over", "score", next.Score, "won", next.Won, "ticks", next.Tick)
			m.finish()
			break
		}
	}

	return m, tickCmd(m.opts.FPS)
}

// finish hands the current recording, if any, to OnReplay.
func (m *Model) finish() {
	if m.recorder == nil || m.recorder.Ticks() == 0 {
		m.recorder = nil
		return
	}

	r := m.recorder.Finish(m.session)
	m.recorder = nil
	if m.opts.OnReplay == nil {
		return
	}
	if err := m.opts.OnReplay(r); err != nil {
		m.logger.Error("cannot save replay", "id", r.ID, "err", err)
		return
	}
	m.logger.Info("replay saved", "id", r.ID, "ticks", r.Ticks)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keys))

	m.screen.Resize(m.opts.Width, m.opts.Height-lipgloss.Height(helpView))
	Draw(m.screen, m.session.Snapshot(), m.frameInfo())

	return RenderScreen(m.screen) + "\n" + helpView
}

func (m Model) frameInfo() Frame {
	f := Frame{
		Title:    m.game.Machine.Title(),
		TickRate: m.game.TickRate,
		Cursor:   -1,
		Paused:   m.paused,
	}
	if len(m.session.World.Cards) > 0 && m.session.State == engine.StatePlaying {
		f.Cursor = m.ctl.cursor
	}
	if m.session.State != engine.StateMenu {
		f.Footer = fmt.Sprintf("seed %d", m.seed)
		if m.recorder != nil {
			f.Footer += "  ● rec"
		}
	}
	return f
}

// Session returns the current session.
func (m Model) Session() *engine.Session {
	return m.session
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for game.
func Run(game *registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
