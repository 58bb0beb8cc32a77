package isa

import (
	"github.com/vovakirdan/isa-quest/internal/core"
)

// Mode is the top-level interaction mode. Exactly two exist and both are
// defined here, so a game can never be in an unknown mode.
type Mode interface {
	// String returns the mode's name for status lines and snapshots.
	String() string

	input(g *Game, a core.Action)
	update(g *Game, dt float64)
	render(g *Game, dst *core.Screen)
}

type (
	worldMode    struct{}
	terminalMode struct{}
)

// The two interaction modes.
var (
	WorldView    Mode = worldMode{}
	TerminalView Mode = terminalMode{}
)

func (worldMode) String() string    { return "world" }
func (terminalMode) String() string { return "terminal" }

func (worldMode) input(g *Game, a core.Action) {
	if a.IsMovement() {
		g.world.Press(a)
	}
}

func (worldMode) update(g *Game, dt float64) {
	g.world.Move(dt)

	if n := g.world.CollectCoins(); n > 0 {
		value := g.cfg.Coins.Value
		for i := 0; i < n; i++ {
			g.accounts.Collect(value)
			g.emit(core.EventCoinCollected, value)
		}
	}

	if g.world.AtTerminal() {
		g.enterTerminal()
	}

	if g.economyEnabled() {
		g.advanceClock(dt)
	}
}

func (worldMode) render(g *Game, dst *core.Screen) {
	g.renderWorld(dst)
	g.renderHUD(dst)
}

func (terminalMode) input(g *Game, a core.Action) {
	res := g.terminal.Handle(a, &g.accounts)
	if res.Deposited > 0 {
		g.emit(core.EventDeposit, res.Deposited)
	}
	if res.Refused > 0 {
		g.emit(core.EventDepositRefused, res.Refused)
	}
	if res.Exit {
		g.leaveTerminal()
	}
}

// Game time stands still while the terminal is open.
func (terminalMode) update(_ *Game, _ float64) {}

func (terminalMode) render(g *Game, dst *core.Screen) {
	g.renderWorld(dst)
	g.renderTerminal(dst)
}

// enterTerminal switches to the terminal at its login screen.
func (g *Game) enterTerminal() {
	g.mode = TerminalView
	g.terminal.Reset()
	g.emit(core.EventTerminalOpened, 0)
}

// leaveTerminal returns to the room with the player back at the start.
func (g *Game) leaveTerminal() {
	g.mode = WorldView
	g.world.Recenter()
	g.emit(core.EventTerminalClosed, 0)
}

// Mode returns the active interaction mode.
func (g *Game) Mode() Mode {
	return g.mode
}
