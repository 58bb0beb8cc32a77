package gui

import (
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/isa-quest/internal/core"
)

type fakeKeys struct {
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
}

func (f fakeKeys) JustPressed(k ebiten.Key) bool  { return f.pressed[k] }
func (f fakeKeys) JustReleased(k ebiten.Key) bool { return f.released[k] }

func TestFillFrame(t *testing.T) {
	src := fakeKeys{
		pressed:  map[ebiten.Key]bool{ebiten.KeyD: true, ebiten.KeyDigit2: true},
		released: map[ebiten.Key]bool{ebiten.KeyArrowUp: true},
	}

	frame := core.NewInputFrame()
	fillFrame(src, &frame)

	if got := frame.Releases(); !slices.Equal(got, []core.Action{core.ActionUp}) {
		t.Errorf("releases = %v, want [Up]", got)
	}
	want := []core.Action{core.ActionRight, core.ActionDigit2}
	if got := frame.Presses(); !slices.Equal(got, want) {
		t.Errorf("presses = %v, want %v", got, want)
	}
}

func TestBindingsCoverActions(t *testing.T) {
	bound := make(map[core.Action]bool)
	for _, b := range bindings {
		bound[b.action] = true
	}

	for a := core.ActionUp; a <= core.ActionPause; a++ {
		if !bound[a] {
			t.Errorf("no key bound to %v", a)
		}
	}
}

func TestShapeOf(t *testing.T) {
	tests := []struct {
		r    rune
		want shape
	}{
		{' ', shapeNone},
		{'█', shapeSolid},
		{'▒', shapeShade},
		{'─', shapeLines},
		{'┘', shapeLines},
		{'£', shapePound},
		{'@', shapeGlyph},
		{'$', shapeGlyph},
		{'Y', shapeGlyph},
	}

	for _, tt := range tests {
		if got := shapeOf(tt.r); got != tt.want {
			t.Errorf("shapeOf(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestColorOfFallsBack(t *testing.T) {
	if got := colorOf(core.Color(200)); got != palette[core.ColorDefault] {
		t.Errorf("colorOf(unknown) = %v, want default", got)
	}
	if got := colorOf(core.ColorCoin); got != palette[core.ColorBrightYellow] {
		t.Errorf("colorOf(coin) = %v, want bright yellow", got)
	}
}

// seedGame records the config it was reset with and the presses it saw.
type seedGame struct {
	cfg     core.RuntimeConfig
	presses []core.Action
}

func (g *seedGame) ID() string { return "seed_game" }
func (g *seedGame) Title() string { return "Seed Game" }
func (g *seedGame) Reset(cfg core.RuntimeConfig) { g.cfg = cfg }
func (g *seedGame) Render(dst *core.Screen) {}
func (g *seedGame) State() core.GameState { return core.GameState{} }
func (g *seedGame) Step(in core.InputFrame) core.StepResult {
	g.presses = append(g.presses, in.Presses()...)
	return core.StepResult{}
}

func TestNewHostSeed(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"zero picks a clock seed", 0},
		{"explicit seed kept", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &seedGame{}
			h := NewHost(game, nil, core.RuntimeConfig{TickRate: 60, Seed: tt.seed}, nil)

			if game.cfg.Seed == 0 {
				t.Fatal("game was reset with seed 0")
			}
			if tt.seed != 0 && game.cfg.Seed != tt.seed {
				t.Errorf("seed = %d, want %d", game.cfg.Seed, tt.seed)
			}
			if h.seed != game.cfg.Seed {
				t.Errorf("host seed %d differs from game seed %d", h.seed, game.cfg.Seed)
			}

			h.keys = fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyY: true}}
			h.step()
			if !slices.Equal(game.presses, []core.Action{core.ActionYes}) {
				t.Errorf("presses = %v, want [Yes]", game.presses)
			}
		})
	}
}
