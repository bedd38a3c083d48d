package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/capydino/internal/core"
	"github.com/vovakirdan/capydino/internal/games/dino"
	"github.com/vovakirdan/capydino/internal/storage"
)

// statusTTL is how long a status message replaces the help line.
const statusTTL = 3 * time.Second

// Model is the Bubble Tea model running one CapyDino game.
type Model struct {
	game       *dino.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	renderer   *lipgloss.Renderer
	config     core.RuntimeConfig
	difficulty string
	shotDir    string

	keys  KeyMap
	help  help.Model
	duck  DuckLatch
	now   func() time.Time
	input core.InputFrame
	state core.GameState

	status      string
	statusUntil time.Time

	scoreSaved bool // Whether the current game over has been recorded
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithStore records finished runs in store.
func WithStore(store *storage.Store) ModelOption {
	return func(m *Model) { m.store = store }
}

// WithLogger sets the logger for recoverable failures.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithRenderer sets the lipgloss renderer, used for SSH sessions.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) { m.renderer = r }
}

// WithDifficulty labels recorded runs with the difficulty preset.
func WithDifficulty(name string) ModelOption {
	return func(m *Model) { m.difficulty = name }
}

// WithScreenshotDir sets where ctrl+s writes screenshots. Empty means the
// XDG data directory.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) { m.shotDir = dir }
}

// WithCapture enables or disables the screenshot and copy-frame keys. SSH
// sessions disable them: both write on the server host.
func WithCapture(enabled bool) ModelOption {
	return func(m *Model) {
		m.keys.Screenshot.SetEnabled(enabled)
		m.keys.CopyFrame.SetEnabled(enabled)
	}
}

// WithClock replaces time.Now for key timing.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) { m.now = now }
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *dino.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	hold := time.Duration(game.Config().Controls.DuckHoldMS) * time.Millisecond
	m := Model{
		game:       game,
		config:     cfg,
		difficulty: "normal",
		keys:       DefaultKeyMap(),
		help:       help.New(),
		duck:       NewDuckLatch(hold),
		now:        time.Now,
		input:      core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.Default()
	}
	if m.renderer == nil {
		m.renderer = lipgloss.DefaultRenderer()
	}

	// The last row holds the help line
	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH-1)
	m.help.Width = cfg.ScreenW
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case screenshotMsg:
		if msg.err != nil {
			m.logger.Error("screenshot failed", "error", msg.err)
			return m.setStatus("screenshot failed: " + msg.err.Error()), nil
		}
		m.logger.Info("screenshot saved", "path", msg.path)
		return m.setStatus("saved " + msg.path), nil

	case frameCopiedMsg:
		if msg.err != nil {
			m.logger.Error("failed to copy frame to clipboard", "error", msg.err)
			return m.setStatus("copy failed: " + msg.err.Error()), nil
		}
		return m.setStatus("frame copied to clipboard"), nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		return m, m.screenshotCmd()
	case key.Matches(msg, m.keys.CopyFrame):
		return m, m.copyFrameCmd()
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionDuck:
		m.duck.Press(m.now())
		m.input.Set(core.ActionDuck)
	case core.ActionNone:
	default:
		m.input.Set(action)
	}

	return m, nil
}

// handleMouse maps a left click to jump and the right button to duck.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.input.Set(core.ActionJump)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		m.duck.MouseDown()
		m.input.Set(core.ActionDuck)
	case msg.Action == tea.MouseActionRelease && m.duck.mouse:
		if m.duck.MouseUp() {
			m.input.Set(core.ActionDuckRelease)
		}
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.duck.Expire(now) {
		m.input.Set(core.ActionDuckRelease)
	}

	result := m.game.Step(m.input)
	m.state = result.State
	if result.Has(core.EventRestarted) {
		m.duck.Reset()
	}

	m.recordRun()

	if m.status != "" && now.After(m.statusUntil) {
		m.status = ""
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the finished run once per game over.
func (m *Model) recordRun() {
	if !m.state.GameOver() {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.state.Score <= 0 {
		return
	}
	entry := storage.ScoreEntry{
		GameID:     m.game.ID(),
		Score:      m.state.Score,
		Difficulty: m.difficulty,
		Ticks:      m.game.Snapshot().Ticks,
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Error("could not record run", "score", entry.Score, "error", err)
	}
}

func (m Model) setStatus(s string) Model {
	m.status = s
	m.statusUntil = m.now().Add(statusTTL)
	return m
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.status
	if footer == "" {
		footer = m.help.View(m.keys)
	}
	footer = m.renderer.NewStyle().
		Foreground(lipgloss.Color("241")).
		MaxWidth(m.config.ScreenW).
		Render(footer)

	return RenderScreenWith(m.renderer, m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program with a model for game.
func Run(game *dino.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
