package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze3d/internal/core"
	"github.com/vovakirdan/maze3d/internal/registry"
	"github.com/vovakirdan/maze3d/internal/storage"
)

// Options configures a Model beyond the runtime config.
type Options struct {
	Recorder  *storage.Recorder // Optional; persists runs and level times
	HoldTicks int               // Ticks a key press stays held (0 = DefaultHoldTicks)
	Logger    *log.Logger
}

// fpsReporter is implemented by games that show the measured frame rate.
type fpsReporter interface {
	SetFPS(fps int)
}

// failer is implemented by games that can stop on a fatal error.
type failer interface {
	Err() error
}

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	recorder  *storage.Recorder
	config    core.RuntimeConfig
	keys      *KeyMapper
	hold      *HoldTracker
	input     core.InputFrame
	fps       *core.FPSCounter
	gameState core.GameState
	log       *log.Logger
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder: opts.Recorder,
		config:   cfg,
		keys:     NewKeyMapper(),
		hold:     NewHoldTracker(opts.HoldTicks),
		fps:      &core.FPSCounter{},
		log:      logger,
	}
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

	case tea.WindowSizeMsg:
		// The maze is resolution independent; only the buffer changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	b, ok, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		if m.recorder != nil {
			m.recorder.Abandon()
		}
		return m, tea.Quit
	}
	if ok {
		m.hold.Press(b)
	}
	return m, nil
}

// handleTick runs one simulation step with the keys held this tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if r, ok := m.game.(fpsReporter); ok {
		r.SetFPS(m.fps.Frame(now))
	}

	m.input = m.input.Next(m.hold.State())
	result := m.game.Step(m.input)
	m.hold.Tick()
	m.gameState = result.State

	for _, ev := range result.Events {
		m.log.Debug("game event", "kind", ev.Kind, "level", ev.Level+1, "ticks", ev.Ticks)
	}
	if m.recorder != nil {
		m.recorder.Record(result.State, result.Events)
	}

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".maze3d", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game and blocks until it
// exits. A fatal game error is returned after the terminal is restored.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	if f, ok := game.(failer); ok {
		return f.Err()
	}
	return nil
}
