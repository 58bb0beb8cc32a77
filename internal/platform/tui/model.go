package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/isa-quest/internal/core"
	"github.com/vovakirdan/isa-quest/internal/registry"
	"github.com/vovakirdan/isa-quest/internal/storage"
)

// maxFrameDelta bounds the time fed to the game after a stall, so a
// suspended terminal does not skip years on resume.
const maxFrameDelta = 0.5

// Options tunes a game model. The zero value is usable.
type Options struct {
	Logger     *log.Logger   // nil discards logs
	HoldWindow time.Duration // zero uses DefaultHoldWindow
	// InMenu is true when the model runs inside a session with a menu,
	// enabling "back to menu" while paused.
	InMenu bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	recorder   *storage.Recorder
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	tickLoop   uint64
	inMenu     bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, viewHeight(cfg.ScreenH)),
		recorder:   storage.NewRecorder(store, game.ID(), logger),
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		tickLoop:   newTickLoop(),
		inMenu:     opts.InMenu,
	}
}

// viewHeight leaves the last row for the status bar.
func viewHeight(screenH int) int {
	return max(screenH-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "run", m.recorder.RunID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate, m.tickLoop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickLoop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	case key.Matches(msg, keys.Restart) && m.gameState.Paused:
		m.restart()
		return m, nil
	case key.Matches(msg, keys.Back) && m.inMenu && m.gameState.Paused:
		m.finish()
		m.backToMenu = true
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}

	if action.IsMovement() {
		// Repeats of a held key are not new presses.
		if m.holds.Press(action, now) {
			m.inputFrame.Set(action)
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events. The run keeps going; the
// camera follows the player in whatever space is available.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, viewHeight(msg.Height))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	for _, a := range m.holds.Expire(now) {
		m.inputFrame.Release(a)
	}

	dt := 1 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = min(now.Sub(m.lastTick).Seconds(), maxFrameDelta)
	}
	m.lastTick = now

	result := registry.Advance(m.game, m.inputFrame, dt)
	m.gameState = result.State
	m.recorder.Record(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.tickLoop)
}

// restart ends the current run and starts a fresh one with a new seed.
func (m *Model) restart() {
	m.finish()
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.recorder.Restart()
	m.holds.ReleaseAll()
	m.inputFrame.Clear()
	m.lastTick = time.Time{}
	m.gameState = m.game.State()
	m.logger.Info("run started", "game", m.game.ID(), "run", m.recorder.RunID(), "seed", m.config.Seed)
}

// finish saves the run's score. Quitting is the only way a run ends, so
// this is where high scores come from.
func (m Model) finish() {
	state := m.game.State()
	if err := m.recorder.Finish(state.Score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() error {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".isa", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + RenderStatus(m.game.Title(), m.gameState, m.config.ScreenW)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// RunID returns the identifier of the run being recorded.
func (m Model) RunID() string {
	return m.recorder.RunID()
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
