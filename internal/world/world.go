package world

import (
	"math/rand"

	"github.com/vovakirdan/isa-quest/internal/core"
)

// CollisionChecker decides whether two boxes overlap.
type CollisionChecker interface {
	Overlaps(a, b core.Box) bool
}

// AABB is the default checker: plain axis-aligned box overlap.
type AABB struct{}

// Overlaps reports whether a and b intersect.
func (AABB) Overlaps(a, b core.Box) bool {
	return a.Intersects(b)
}

// Player is the walking body.
type Player struct {
	Body   core.Box
	VX, VY float64 // Cells per second
}

// World is the mutable state of the walkable area.
type World struct {
	layout  Layout
	checker CollisionChecker
	rng     *rand.Rand

	player Player
	coins  []core.Box
}

// New creates a world for the layout. A nil checker uses AABB.
func New(layout Layout, checker CollisionChecker, rng *rand.Rand) *World {
	if checker == nil {
		checker = AABB{}
	}
	w := &World{
		layout:  layout,
		checker: checker,
		rng:     rng,
	}
	w.Reset()
	return w
}

// Reset puts the player at the start position and removes all coins.
func (w *World) Reset() {
	w.player = Player{Body: w.layout.StartBox()}
	w.coins = w.coins[:0]
}

// Layout returns the fixed layout.
func (w *World) Layout() Layout {
	return w.layout
}

// Player returns the player body.
func (w *World) Player() Player {
	return w.player
}

// Coins returns the coins still on the field.
func (w *World) Coins() []core.Box {
	return w.coins
}

// Press starts movement along the action's axis.
func (w *World) Press(a core.Action) {
	speed := w.layout.PlayerSpeed
	switch a {
	case core.ActionUp:
		w.player.VY = -speed
	case core.ActionDown:
		w.player.VY = speed
	case core.ActionLeft:
		w.player.VX = -speed
	case core.ActionRight:
		w.player.VX = speed
	}
}

// Release stops movement along the action's axis, whichever way the
// player was going.
func (w *World) Release(a core.Action) {
	switch a {
	case core.ActionUp, core.ActionDown:
		w.player.VY = 0
	case core.ActionLeft, core.ActionRight:
		w.player.VX = 0
	}
}

// Recenter moves the player back to the start position without
// touching velocity.
func (w *World) Recenter() {
	w.player.Body = w.layout.StartBox()
}

// Move integrates velocity over dt seconds. Each axis is applied on its own
// and undone if it would put the player inside a wall. The player never
// leaves the world bounds.
func (w *World) Move(dt float64) {
	p := &w.player
	bounds := w.layout.Bounds()

	if p.VX != 0 {
		next := p.Body.Translate(p.VX*dt, 0)
		next.X = core.ClampF(next.X, bounds.X, bounds.Right()-next.W)
		if !w.hitsWall(next) {
			p.Body = next
		}
	}
	if p.VY != 0 {
		next := p.Body.Translate(0, p.VY*dt)
		next.Y = core.ClampF(next.Y, bounds.Y, bounds.Bottom()-next.H)
		if !w.hitsWall(next) {
			p.Body = next
		}
	}
}

// CollectCoins removes every coin the player overlaps and returns how many.
func (w *World) CollectCoins() int {
	kept := w.coins[:0]
	collected := 0
	for _, c := range w.coins {
		if w.checker.Overlaps(w.player.Body, c) {
			collected++
			continue
		}
		kept = append(kept, c)
	}
	w.coins = kept
	return collected
}

// AtTerminal reports whether the player touches the terminal.
func (w *World) AtTerminal() bool {
	return w.checker.Overlaps(w.player.Body, w.layout.Terminal)
}

// SpawnCoins replaces the coin field with up to n new coins. Each coin gets
// one random cell anywhere in the world; a draw that lands on a wall, the
// terminal or the player is dropped rather than redrawn, so fewer than n
// coins may appear. Coins may share a cell. Returns the number placed.
func (w *World) SpawnCoins(n int) int {
	w.coins = w.coins[:0]
	size := w.layout.CoinSize
	maxX := max(int(w.layout.Width-size)+1, 1)
	maxY := max(int(w.layout.Height-size)+1, 1)

	for i := 0; i < n; i++ {
		coin := core.NewBox(float64(w.rng.Intn(maxX)), float64(w.rng.Intn(maxY)), size, size)
		if w.blocked(coin) {
			continue
		}
		w.coins = append(w.coins, coin)
	}
	return len(w.coins)
}

func (w *World) hitsWall(b core.Box) bool {
	for _, wall := range w.layout.Walls {
		if w.checker.Overlaps(b, wall) {
			return true
		}
	}
	return false
}

func (w *World) blocked(b core.Box) bool {
	if w.hitsWall(b) {
		return true
	}
	return w.checker.Overlaps(b, w.layout.Terminal) || w.checker.Overlaps(b, w.player.Body)
}
