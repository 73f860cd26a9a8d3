package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/replay"
)

const maxReplays = 100

// ReplayLister is the part of the replay store the browser reads.
type ReplayLister interface {
	ListReplays(gameID string, limit int) ([]*replay.Replay, error)
}

// VerifyFunc re-simulates a stored replay by ID.
type VerifyFunc func(id string) error

// BrowserKeyMap extends the game bindings with browser actions.
type BrowserKeyMap struct {
	KeyMap
	Verify key.Binding
	Back   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Verify, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	keys := DefaultKeyMap()
	keys.Left.SetHelp("←/tab", "prev game")
	keys.Right.SetHelp("→/tab", "next game")
	keys.Right.SetKeys(append(keys.Right.Keys(), "tab")...)
	keys.Left.SetKeys(append(keys.Left.Keys(), "shift+tab")...)

	return BrowserKeyMap{
		KeyMap: keys,
		Verify: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter", "verify"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
	}
}

var (
	browserTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTab    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	paneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// BrowserModel lists stored replays per game and verifies them on demand.
type BrowserModel struct {
	games    []registry.GameInfo
	tab      int
	store    ReplayLister
	verify   VerifyFunc
	replays  []*replay.Replay
	verdicts map[string]error // verification outcome by replay ID
	loadErr  error
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	width    int
	height   int
	quitting bool
	back     bool
}

// NewBrowserModel creates a new replay browser. verify may be nil.
func NewBrowserModel(store ReplayLister, verify VerifyFunc, width, height int) BrowserModel {
	m := BrowserModel{
		games:    registry.List(),
		store:    store,
		verify:   verify,
		verdicts: make(map[string]error),
		help:     help.New(),
		keys:     DefaultBrowserKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = newReplayTable(height)
	m.reload()
	return m
}

func newReplayTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 8},
			{Title: "Score", Width: 7},
			{Title: "Ticks", Width: 8},
			{Title: "Result", Width: 6},
			{Title: "Check", Width: 5},
			{Title: "Recorded", Width: 12},
		}),
		table.WithFocused(true),
		// Title, tabs, pane borders, detail line and help.
		table.WithHeight(max(height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *BrowserModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.tab].ID
}

// reload fetches the replays of the current tab.
func (m *BrowserModel) reload() {
	m.replays, m.loadErr = nil, nil
	if m.store != nil && len(m.games) > 0 {
		m.replays, m.loadErr = m.store.ListReplays(m.gameID(), maxReplays)
	}
	m.refreshRows()
	m.table.GotoTop()
}

func (m *BrowserModel) refreshRows() {
	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		rows[i] = table.Row{
			shortID(r.ID),
			strconv.Itoa(r.Score),
			strconv.FormatUint(r.Ticks, 10),
			outcome(r.Won),
			m.check(r.ID),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

// check renders the verification column.
func (m *BrowserModel) check(id string) string {
	err, done := m.verdicts[id]
	switch {
	case !done:
		return ""
	case err != nil:
		return "FAIL"
	default:
		return "ok"
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func outcome(won bool) string {
	if won {
		return "won"
	}
	return "lost"
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Right):
			m.switchTab(1)
			return m, nil

		case key.Matches(msg, m.keys.Left):
			m.switchTab(-1)
			return m, nil

		case key.Matches(msg, m.keys.Verify):
			m.verifySelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(m.height-10, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *BrowserModel) switchTab(delta int) {
	if n := len(m.games); n > 0 {
		m.tab = (m.tab + delta + n) % n
		m.reload()
	}
}

// verifySelected re-simulates the highlighted replay.
func (m *BrowserModel) verifySelected() {
	r := m.selected()
	if r == nil || m.verify == nil {
		return
	}
	m.verdicts[r.ID] = m.verify(r.ID)
	m.refreshRows()
}

func (m BrowserModel) selected() *replay.Replay {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.replays) {
		return nil
	}
	return m.replays[i]
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString(browserTitle.Render("REPLAYS"))
	b.WriteString("\n\n")
	b.WriteString(m.tabs())
	b.WriteString("\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(paneStyle.Render(failStyle.Render(m.loadErr.Error())))
	case len(m.replays) == 0:
		b.WriteString(paneStyle.Render(dimStyle.Italic(true).Padding(1, 2).
			Render("No replays recorded yet.\nPlay with --record to keep one.")))
	default:
		b.WriteString(paneStyle.Render(m.table.View()))
		b.WriteString("\n")
		b.WriteString(m.detail())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m BrowserModel) tabs() string {
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.tab {
			parts[i] = activeTab.Render(g.Title)
		} else {
			parts[i] = tabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// detail describes the highlighted replay on one line.
func (m BrowserModel) detail() string {
	r := m.selected()
	if r == nil {
		return ""
	}

	line := fmt.Sprintf("%s  seed %d  digest %016x", r.ID, r.Seed, r.Digest)
	if err, done := m.verdicts[r.ID]; done {
		if err != nil {
			return line + "  " + failStyle.Render(err.Error())
		}
		return line + "  " + okStyle.Render("verified")
	}
	return dimStyle.Render(line)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m BrowserModel) IsGoingBack() bool {
	return m.back
}

// RunBrowser runs the replay browser.
// Returns true if user wants to go back to menu, false if quitting.
func RunBrowser(store ReplayLister, verify VerifyFunc, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewBrowserModel(store, verify, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(BrowserModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
