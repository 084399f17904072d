package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beat-arcade/internal/config"
	"github.com/vovakirdan/beat-arcade/internal/core"
	"github.com/vovakirdan/beat-arcade/internal/game"
	"github.com/vovakirdan/beat-arcade/internal/level"
)

// PlayConfig is everything needed to start a level.
type PlayConfig struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig
	// Audio plays level songs through the local speaker. SSH sessions
	// always run silently.
	Audio  bool
	Logger *log.Logger
}

func (c PlayConfig) logger() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard)
	}
	return c.Logger
}

// NewLevelSession builds a game session for a level factory.
func NewLevelSession(factory level.Factory, cfg PlayConfig) *game.Session {
	if cfg.Runtime.Seed == 0 {
		cfg.Runtime.Seed = time.Now().UnixNano()
	}
	meta := factory().Meta
	track := game.OpenTrack(meta, cfg.Audio, cfg.logger())
	return game.NewSession(factory, track, game.Options{
		Config:  cfg.Game,
		Runtime: cfg.Runtime,
		Logger:  cfg.logger(),
	})
}

// Model is the Bubble Tea model for playing a level.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	renderer   *lipgloss.Renderer
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *HoldTracker
	pressed    core.InputFrame // edge-triggered actions since the last tick
	help       help.Model
	gameState  core.GameState
	standalone bool // back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	err        error
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:  lipgloss.DefaultRenderer(),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		held:      NewHoldTracker(DefaultHoldWindow),
		pressed:   core.NewInputFrame(),
		help:      h,
		now:       time.Now,
	}
}

// WithRenderer sets the lipgloss renderer used for colours.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.renderer = r
	return m
}

// Init starts the track and the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.session.Start(); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	return tickCmd(m.config.TickRate)
}

type errMsg struct{ err error }

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case errMsg:
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	case IsMovement(action):
		m.held.Press(action, m.now())
	case action != core.ActionNone:
		m.pressed.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu || m.err != nil {
		return m, nil
	}

	frame := m.pressed.Clone()
	m.held.Apply(&frame, m.now())

	result := m.session.Step(frame)
	m.gameState = result.State
	if result.Died || result.State.Paused {
		m.held.Reset()
	}

	// Clear input for next frame
	m.pressed.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".beat-arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.Meta().ID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu || m.err != nil {
		return ""
	}

	helpView := ""
	if m.gameState.Paused || m.gameState.Complete || m.help.ShowAll {
		helpView = m.help.View(m.keyMapper.Keys())
	}
	if helpView == "" {
		m.session.Render(m.screen)
		return RenderScreenWith(m.renderer, m.screen)
	}

	// Keep the last row for help while paused or finished.
	rows := max(m.config.ScreenH-lipgloss.Height(helpView), 1)
	m.screen.Resize(m.config.ScreenW, rows)
	m.session.Render(m.screen)
	view := RenderScreenWith(m.renderer, m.screen)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	return view + "\n" + helpView
}

// State returns the last session state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single level until the user quits.
func Run(factory level.Factory, cfg PlayConfig) error {
	session := NewLevelSession(factory, cfg)
	defer session.Close()

	model := NewModel(session, cfg.Runtime)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
