package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/vovakirdan/beat-arcade/internal/game"
	"github.com/vovakirdan/beat-arcade/internal/registry"
)

// LevelInfoKeyMap defines the key bindings for the level info screen.
type LevelInfoKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LevelInfoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LevelInfoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultLevelInfoKeyMap returns default key bindings.
func DefaultLevelInfoKeyMap() LevelInfoKeyMap {
	return LevelInfoKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var levelInfoColumns = []table.Column{
	{Title: "Level", Width: 18},
	{Title: "BPM", Width: 6},
	{Title: "Beats", Width: 6},
	{Title: "Checkpoints", Width: 12},
	{Title: "Obstacles", Width: 10},
	{Title: "Peak", Width: 10},
}

// LevelInfoModel shows a table of registered levels and their statistics.
type LevelInfoModel struct {
	summaries []game.Summary
	table     table.Model
	help      help.Model
	keys      LevelInfoKeyMap
	renderer  *lipgloss.Renderer
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewLevelInfoModel summarizes every registered level.
func NewLevelInfoModel(width, height int) LevelInfoModel {
	levels := registry.List()
	summaries := lo.FilterMap(levels, func(info registry.LevelInfo, _ int) (game.Summary, bool) {
		f, err := registry.Factory(info.ID)
		if err != nil {
			return game.Summary{}, false
		}
		s := game.Summarize(f)
		s.Meta.Name = info.Title
		return s, true
	})

	m := LevelInfoModel{
		summaries: summaries,
		keys:      DefaultLevelInfoKeyMap(),
		help:      help.New(),
		renderer:  lipgloss.DefaultRenderer(),
		width:     width,
		height:    height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// WithRenderer sets the lipgloss renderer used for styling.
func (m LevelInfoModel) WithRenderer(r *lipgloss.Renderer) LevelInfoModel {
	m.renderer = r
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *LevelInfoModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(levelInfoColumns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// Rows returns the table rows, one per level.
func (m LevelInfoModel) Rows() []table.Row {
	return lo.Map(m.summaries, func(s game.Summary, _ int) table.Row {
		return table.Row{
			s.Meta.Name,
			fmt.Sprintf("%g", s.Meta.BPM),
			fmt.Sprintf("%g", s.End),
			fmt.Sprintf("%d", len(s.Meta.Checkpoints)),
			fmt.Sprintf("%d+%d", s.Obstacles, s.Sim.Spawned),
			fmt.Sprintf("%d @%.1f", s.Sim.Peak, s.Sim.PeakBeat),
		}
	})
}

func (m *LevelInfoModel) updateTableRows() {
	m.table.SetRows(m.Rows())
	m.table.GotoTop()
}

// Init initializes the level info model.
func (m LevelInfoModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the level info screen.
func (m LevelInfoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the level table.
func (m LevelInfoModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("LEVELS", m.width)))
	b.WriteString("\n\n")

	tableStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.summaries) == 0 {
		empty := m.renderer.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No levels registered.")
		b.WriteString(centerText(tableStyle.Render(empty), m.width))
	} else {
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	helpStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LevelInfoModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LevelInfoModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelInfo runs the level info screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunLevelInfo(width, height int) (goBack bool, err error) {
	model := NewLevelInfoModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(LevelInfoModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
