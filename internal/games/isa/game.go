// Package isa implements ISA Quest: walk around a room collecting coins,
// then use the computer terminal to move money into a stocks and shares ISA
// while the years tick by.
package isa

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/isa-quest/internal/config"
	"github.com/vovakirdan/isa-quest/internal/core"
	"github.com/vovakirdan/isa-quest/internal/economy"
	"github.com/vovakirdan/isa-quest/internal/registry"
	"github.com/vovakirdan/isa-quest/internal/terminal"
	"github.com/vovakirdan/isa-quest/internal/world"
)

// Variant selects which version of the game runs.
type Variant string

const (
	// VariantFull runs the clock, interest, market returns and yearly coins.
	VariantFull Variant = "full"
	// VariantClassic is the earlier game: same room and terminal, no economy.
	VariantClassic Variant = "classic"
)

// Game implements ISA Quest.
type Game struct {
	variant Variant
	cfg     config.ISAConfig
	pinned  bool // cfg was set with UseConfig; Reset does not reload it
	market  config.MarketPreset

	rng      *rand.Rand
	tick     uint64
	tickRate int

	clock    *economy.Clock
	model    economy.Model
	accounts economy.Accounts
	world    *world.World
	terminal *terminal.Machine
	mode     Mode
	paused   bool

	events []core.Event
}

// configPath stores the custom config path set via CLI
var configPath string

// marketPreset stores the market preset set via CLI
var marketPreset config.MarketPreset

// SetConfigPath sets the custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetMarketPreset sets the market preset from a CLI string.
// Unknown values are ignored.
func SetMarketPreset(preset string) {
	p, err := config.ParseMarketPreset(preset)
	if err != nil {
		return
	}
	marketPreset = p
}

// New creates the full game.
func New() *Game {
	return &Game{variant: VariantFull}
}

// NewClassic creates the classic game without the economy.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

func init() {
	registry.Register("isa", func() registry.Game {
		return New()
	})
	registry.Register("isa_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "isa_classic"
	}
	return "isa"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "ISA Quest (Classic)"
	}
	return "ISA Quest"
}

// SetMarket selects the market preset for this game only, overriding the
// one set with SetMarketPreset. It takes effect on the next Reset.
func (g *Game) SetMarket(p config.MarketPreset) {
	g.market = p
}

// UseConfig pins the configuration used by Reset instead of loading it
// from disk.
func (g *Game) UseConfig(cfg config.ISAConfig) {
	g.cfg = cfg
	g.pinned = true
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.pinned {
		loaded, err := config.LoadISA(configPath)
		if err != nil {
			loaded = config.DefaultISAConfig()
		}
		preset := marketPreset
		if g.market != "" {
			preset = g.market
		}
		if preset != "" {
			config.ApplyMarketPreset(&loaded, preset)
		}
		g.cfg = loaded
	}

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.events = nil

	g.clock = economy.NewClock(economy.Calendar{
		YearSeconds: g.cfg.Clock.YearSeconds,
		DaysPerYear: g.cfg.Clock.DaysPerYear,
	})
	r := g.cfg.Economy.Returns
	g.model = economy.Model{
		InterestRate: g.cfg.Economy.InterestRate,
		Returns: economy.ReturnModel{
			Mean:    r.Mean,
			StdDev:  r.StdDev,
			Floor:   r.Floor,
			Ceiling: r.Ceiling,
		},
	}
	g.accounts = economy.Accounts{
		Current: g.cfg.Economy.StartingCurrent,
		ISA:     g.cfg.Economy.StartingISA,
	}

	g.world = world.New(layoutFromConfig(g.cfg.World), nil, g.rng)
	g.world.SpawnCoins(g.cfg.Coins.Count)
	g.terminal = terminal.NewMachine(g.cfg.Terminal.Deposits)
	g.mode = WorldView
}

// layoutFromConfig converts the YAML world description into a layout.
func layoutFromConfig(wc config.WorldConfig) world.Layout {
	layout := world.DefaultLayout()
	layout.Width = wc.Width
	layout.Height = wc.Height
	layout.StartX = wc.StartX
	layout.StartY = wc.StartY
	layout.PlayerSpeed = wc.PlayerSpeed
	layout.Terminal = core.NewBox(wc.Terminal.X, wc.Terminal.Y, wc.Terminal.W, wc.Terminal.H)
	layout.Walls = make([]core.Box, 0, len(wc.Walls))
	for _, w := range wc.Walls {
		layout.Walls = append(layout.Walls, core.NewBox(w.X, w.Y, w.W, w.H))
	}
	return layout
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepFor(in, 1/float64(g.tickRate))
}

// StepFor advances the game by dt seconds: key releases first, then key
// presses in arrival order, then the active mode's update.
func (g *Game) StepFor(in core.InputFrame, dt float64) core.StepResult {
	g.events = nil

	for _, a := range in.Releases() {
		g.world.Release(a)
	}

	for _, a := range in.Presses() {
		if a == core.ActionPause {
			if g.mode == WorldView {
				g.paused = !g.paused
			}
			continue
		}
		if g.paused {
			continue
		}
		g.mode.input(g, a)
	}

	if !g.paused {
		g.mode.update(g, dt)
		g.tick++
	}

	return core.StepResult{
		State:  g.State(),
		Events: g.events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	year := 0
	if g.clock != nil {
		year = g.clock.Year()
	}
	mode := ""
	if g.mode != nil {
		mode = g.mode.String()
	}
	return core.GameState{
		Score:  int(math.Floor(g.accounts.NetWorth())),
		Paused: g.paused,
		Mode:   mode,
		Year:   year,
	}
}

// Accounts returns the current balances.
func (g *Game) Accounts() economy.Accounts {
	return g.accounts
}

// economyEnabled reports whether the clock and market run.
func (g *Game) economyEnabled() bool {
	return g.variant != VariantClassic
}

// emit records an event with the balances after it.
func (g *Game) emit(kind core.EventKind, amount float64) {
	g.events = append(g.events, core.Event{
		Kind:    kind,
		Year:    g.clock.Year(),
		Amount:  amount,
		Current: g.accounts.Current,
		ISA:     g.accounts.ISA,
	})
}

// advanceClock moves game time and applies every boundary crossed.
func (g *Game) advanceClock(dt float64) {
	crossing := g.clock.Advance(dt)
	if crossing.Empty() {
		return
	}

	for _, end := range g.model.Settle(crossing, &g.accounts, g.rng) {
		g.events = append(g.events, core.Event{
			Kind:    core.EventYearEnded,
			Year:    end.Year,
			Amount:  end.Interest,
			Current: g.accounts.Current,
			ISA:     g.accounts.ISA,
		})
	}

	// A single respawn covers any number of year ends in one frame.
	if crossing.Years > 0 {
		g.world.SpawnCoins(g.cfg.Coins.Count)
	}
}
