package gui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/isa-quest/internal/core"
	"github.com/vovakirdan/isa-quest/internal/registry"
	"github.com/vovakirdan/isa-quest/internal/storage"
)

// Default window size in cells.
const (
	DefaultCols = 100
	DefaultRows = 34
)

// inputKeys reads key transitions from inpututil.
type inputKeys struct{}

func (inputKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (inputKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// Host runs a game inside an Ebiten window. It implements ebiten.Game.
type Host struct {
	game     registry.Game
	screen   *core.Screen
	painter  *painter
	recorder *storage.Recorder
	logger   *log.Logger
	keys     KeySource
	frame    core.InputFrame
	state    core.GameState
	tickRate int
	seed     int64
}

// NewHost creates a host for game and resets it. store may be nil.
// A zero seed is replaced by one taken from the clock.
func NewHost(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = DefaultCols, DefaultRows
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	game.Reset(cfg)
	h := &Host{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		painter:  newPainter(),
		recorder: storage.NewRecorder(store, game.ID(), logger),
		logger:   logger,
		keys:     inputKeys{},
		frame:    core.NewInputFrame(),
		tickRate: cfg.TickRate,
		seed:     cfg.Seed,
	}
	logger.Info("run started", "game", game.ID(), "run", h.recorder.RunID(), "seed", h.seed)
	return h
}

// Update advances the game by one Ebiten tick.
func (h *Host) Update() error {
	if h.keys.JustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	h.step()
	return nil
}

// step feeds this tick's key transitions to the game.
func (h *Host) step() {
	h.frame.Clear()
	fillFrame(h.keys, &h.frame)

	result := registry.Advance(h.game, h.frame, 1/float64(h.tickRate))
	h.state = result.State
	h.recorder.Record(result.Events)
}

// Draw renders the game screen into the window.
func (h *Host) Draw(dst *ebiten.Image) {
	dst.Fill(background)
	h.game.Render(h.screen)
	h.painter.paint(dst, h.screen)
}

// Layout fixes the logical size to the cell grid; Ebiten scales it to
// the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.screen.Width() * cellW, h.screen.Height() * cellH
}

// Finish saves the run's score.
func (h *Host) Finish() error {
	return h.recorder.Finish(h.game.State().Score)
}

// Run opens a window and plays game until it is closed or Q is pressed.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	cfg.ScreenW, cfg.ScreenH = DefaultCols, DefaultRows
	host := NewHost(game, store, cfg, logger)

	ebiten.SetWindowSize(cfg.ScreenW*cellW, cfg.ScreenH*cellH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(host.tickRate)

	runErr := ebiten.RunGame(host)
	if err := host.Finish(); err != nil {
		host.logger.Warn("could not save score", "game", game.ID(), "err", err)
	}
	if runErr != nil {
		return fmt.Errorf("gui: %w", runErr)
	}
	return nil
}
