// Package world holds the walkable part of the game: the fixed walls, the
// computer terminal, the player body and the coin field.
package world

import "github.com/vovakirdan/isa-quest/internal/core"

// Layout describes a fixed world. All units are screen cells.
type Layout struct {
	Width, Height float64    // World bounds
	Walls         []core.Box // Solid obstacles
	Terminal      core.Box   // Walking into this opens the terminal
	StartX        float64    // Player start centre
	StartY        float64
	PlayerSize    float64 // Player box edge length
	PlayerSpeed   float64 // Cells per second along each axis
	CoinSize      float64 // Coin box edge length
}

// DefaultLayout returns the standard room: a top and bottom wall joined on
// the left, open to the right, with the terminal in the upper left corner.
func DefaultLayout() Layout {
	const (
		width  = 100
		height = 32
		top    = 7
		bottom = 31
		length = 50
	)
	return Layout{
		Width:  width,
		Height: height,
		Walls: []core.Box{
			core.NewBox(0, top, length, 1),
			core.NewBox(0, bottom, length, 1),
			core.NewBox(0, top+1, 1, bottom-top-1),
		},
		Terminal:    core.NewBox(10, 12, 3, 2),
		StartX:      width / 2,
		StartY:      height / 2,
		PlayerSize:  1,
		PlayerSpeed: 20,
		CoinSize:    1,
	}
}

// Bounds returns the world rectangle.
func (l Layout) Bounds() core.Box {
	return core.NewBox(0, 0, l.Width, l.Height)
}

// StartBox returns the player box at the start position.
func (l Layout) StartBox() core.Box {
	return core.NewBox(0, 0, l.PlayerSize, l.PlayerSize).CenterOn(l.StartX, l.StartY)
}
