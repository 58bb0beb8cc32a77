package isa

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Mode     string // "world" or "terminal"
	Terminal string // Active terminal screen
	Paused   bool
	Elapsed  float64
	Year     int
	Day      int
	Current  float64
	ISA      float64
	PlayerX  float64
	PlayerY  float64
	Coins    int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	player := g.world.Player().Body
	return Snapshot{
		Tick:     g.tick,
		Variant:  string(g.variant),
		Mode:     g.mode.String(),
		Terminal: g.terminal.State().String(),
		Paused:   g.paused,
		Elapsed:  g.clock.Elapsed(),
		Year:     g.clock.Year(),
		Day:      g.clock.Day(),
		Current:  g.accounts.Current,
		ISA:      g.accounts.ISA,
		PlayerX:  player.X,
		PlayerY:  player.Y,
		Coins:    len(g.world.Coins()),
	}
}
