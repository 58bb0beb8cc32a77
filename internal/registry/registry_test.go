package registry

import (
	"testing"

	"github.com/vovakirdan/isa-quest/internal/core"
)

type stubGame struct {
	id      string
	steps   int
	stepDts []float64
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{}
}

// timedGame also accepts a frame delta.
type timedGame struct {
	stubGame
}

func (g *timedGame) StepFor(_ core.InputFrame, dt float64) core.StepResult {
	g.stepDts = append(g.stepDts, dt)
	return core.StepResult{}
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })

	if !Exists("zz_stub_a") {
		t.Fatal("zz_stub_a should exist")
	}
	if Exists("zz_missing") {
		t.Error("zz_missing should not exist")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("ID() = %q, want zz_stub_b", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}

	// List is sorted by ID and carries titles.
	list := List()
	ia, ib := -1, -1
	for i, info := range list {
		switch info.ID {
		case "zz_stub_a":
			ia = i
			if info.Title != "Stub zz_stub_a" {
				t.Errorf("title = %q", info.Title)
			}
		case "zz_stub_b":
			ib = i
		}
		if i > 0 && list[i-1].ID > info.ID {
			t.Errorf("List() not sorted at %d: %q > %q", i, list[i-1].ID, info.ID)
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() positions a=%d b=%d", ia, ib)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestAdvance(t *testing.T) {
	fixed := &stubGame{id: "fixed"}
	Advance(fixed, core.NewInputFrame(), 0.25)
	if fixed.steps != 1 {
		t.Errorf("fixed-step game stepped %d times, want 1", fixed.steps)
	}

	timed := &timedGame{stubGame{id: "timed"}}
	Advance(timed, core.NewInputFrame(), 0.25)
	if len(timed.stepDts) != 1 || timed.stepDts[0] != 0.25 {
		t.Errorf("StepFor dts = %v, want [0.25]", timed.stepDts)
	}

	// A non-positive delta falls back to the fixed tick.
	Advance(timed, core.NewInputFrame(), 0)
	if timed.steps != 1 {
		t.Errorf("zero delta should use Step, steps = %d", timed.steps)
	}
}
