package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dot-rush/internal/core"
	"github.com/vovakirdan/dot-rush/internal/registry"
	"github.com/vovakirdan/dot-rush/internal/storage"
)

// runStats is implemented by modes that track more than the score; the
// extra columns are persisted when available.
type runStats interface {
	BestCombo() int
	DurationSecs() int
}

// Model is the Bubble Tea model for running a dot-rush session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the finished run has been persisted
}

// NewModel creates a Bubble Tea model for the given mode.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use a time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if quit := m.keys.MapKeyToFrame(msg, &m.inputFrame); quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize propagates terminal size changes. The running session is
// restarted because the simulation viewport defines the playfield.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart after game over gets a fresh seed
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Persist the run once per game over
	if m.gameState.GameOver && !m.runSaved && m.gameState.Score > 0 {
		if m.store != nil {
			combo, secs := 0, 0
			if rs, ok := m.game.(runStats); ok {
				combo, secs = rs.BestCombo(), rs.DurationSecs()
			}
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.SaveRun(m.game.ID(), m.gameState.Score, combo, secs)
		}
		m.runSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot dumps the current frame to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".dotrush", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given mode.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
