package tui

import (
	"math"
	"path/filepath"
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/isa-quest/internal/core"
	"github.com/vovakirdan/isa-quest/internal/storage"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets int
	frames []core.InputFrame
	dts    []float64
	state  core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	return g.StepFor(in, 1.0/60)
}

func (g *fakeGame) StepFor(in core.InputFrame, dt float64) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	g.dts = append(g.dts, dt)
	return core.StepResult{State: g.state}
}

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store, opts Options) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
	m := NewModel(g, store, cfg, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelHeldKeyPressesOnce(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, Options{HoldWindow: 100 * time.Millisecond})
	t0 := time.Unix(100, 0)

	// Three repeats of the same key within one tick.
	for i := range 3 {
		next, _ := m.handleKey(runeKey('d'), t0.Add(time.Duration(i)*10*time.Millisecond))
		m = next.(Model)
	}
	m = update(t, m, TickMsg{Time: t0.Add(30 * time.Millisecond), ID: m.tickLoop})

	if len(g.frames) != 1 {
		t.Fatalf("game stepped %d times, want 1", len(g.frames))
	}
	if got := g.frames[0].Presses(); !slices.Equal(got, []core.Action{core.ActionRight}) {
		t.Errorf("presses = %v, want [Right]", got)
	}

	// No repeat for longer than the window: the key is released.
	m = update(t, m, TickMsg{Time: t0.Add(300 * time.Millisecond), ID: m.tickLoop})
	if got := g.frames[1].Releases(); !slices.Equal(got, []core.Action{core.ActionRight}) {
		t.Errorf("releases = %v, want [Right]", got)
	}
	if len(g.frames[1].Presses()) != 0 {
		t.Errorf("presses = %v, want none", g.frames[1].Presses())
	}
}

func TestModelTerminalKeysKeepOrder(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, Options{})
	now := time.Unix(100, 0)

	for _, r := range "y1" {
		next, _ := m.handleKey(runeKey(r), now)
		m = next.(Model)
	}
	update(t, m, TickMsg{Time: now, ID: m.tickLoop})

	want := []core.Action{core.ActionYes, core.ActionDigit1}
	if got := g.frames[0].Presses(); !slices.Equal(got, want) {
		t.Errorf("presses = %v, want %v", got, want)
	}
}

func TestModelFrameDelta(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, Options{})
	t0 := time.Unix(100, 0)

	m = update(t, m, TickMsg{Time: t0, ID: m.tickLoop})
	m = update(t, m, TickMsg{Time: t0.Add(100 * time.Millisecond), ID: m.tickLoop})
	update(t, m, TickMsg{Time: t0.Add(10 * time.Second), ID: m.tickLoop})

	want := []float64{1.0 / 60, 0.1, maxFrameDelta}
	for i, dt := range g.dts {
		if math.Abs(dt-want[i]) > 1e-9 {
			t.Errorf("dt[%d] = %v, want %v", i, dt, want[i])
		}
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, Options{})

	update(t, m, TickMsg{Time: time.Now(), ID: m.tickLoop + 1000})
	if len(g.frames) != 0 {
		t.Errorf("stale tick stepped the game %d times", len(g.frames))
	}
}

func TestModelQuitSavesScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{state: core.GameState{Score: 420}}
	m := newTestModel(t, g, store, Options{})

	next, cmd := m.handleKey(runeKey('q'), time.Now())
	m = next.(Model)
	if !m.IsQuitting() {
		t.Error("model should be quitting")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}

	best, err := store.HighScore("fake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != 420 {
		t.Errorf("HighScore() = %d, want 420", best)
	}
}

func TestModelBackToMenuOnlyWhenPaused(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, Options{InMenu: true})
	now := time.Unix(100, 0)

	next, _ := m.handleKey(runeKey('b'), now)
	if next.(Model).BackToMenu() {
		t.Error("b while playing should not leave the game")
	}

	g.state.Paused = true
	m = update(t, m, TickMsg{Time: now, ID: m.tickLoop})
	next, _ = m.handleKey(runeKey('b'), now)
	if !next.(Model).BackToMenu() {
		t.Error("b while paused should go back to the menu")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelRestartWhenPaused(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{state: core.GameState{Score: 75}}
	m := newTestModel(t, g, store, Options{})
	firstRun := m.RunID()
	now := time.Unix(100, 0)

	// Not paused: r does nothing.
	next, _ := m.handleKey(runeKey('r'), now)
	m = next.(Model)
	if g.resets != 1 {
		t.Fatalf("resets = %d, want 1", g.resets)
	}

	g.state.Paused = true
	m = update(t, m, TickMsg{Time: now, ID: m.tickLoop})
	next, _ = m.handleKey(runeKey('r'), now)
	m = next.(Model)

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if m.RunID() == firstRun {
		t.Error("restart should begin a new run")
	}
	if best, _ := store.HighScore("fake"); best != 75 {
		t.Errorf("HighScore() = %d, want the finished run's 75", best)
	}
}
