// Package gui provides a desktop window frontend built on Ebiten.
// Unlike a terminal, a window reports real key releases, so movement
// stops the moment a key comes up.
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/isa-quest/internal/core"
)

// binding ties a physical key to a game action.
type binding struct {
	key    ebiten.Key
	action core.Action
}

// bindings lists every key the window forwards to the game. Quit and
// screenshot keys are handled by the host itself.
var bindings = []binding{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyY, core.ActionYes},
	{ebiten.KeyN, core.ActionNo},
	{ebiten.KeyEscape, core.ActionEscape},
	{ebiten.KeyDigit0, core.ActionDigit0},
	{ebiten.KeyDigit1, core.ActionDigit1},
	{ebiten.KeyDigit2, core.ActionDigit2},
	{ebiten.KeyDigit3, core.ActionDigit3},
	{ebiten.KeyDigit4, core.ActionDigit4},
	{ebiten.KeyNumpad0, core.ActionDigit0},
	{ebiten.KeyNumpad1, core.ActionDigit1},
	{ebiten.KeyNumpad2, core.ActionDigit2},
	{ebiten.KeyNumpad3, core.ActionDigit3},
	{ebiten.KeyNumpad4, core.ActionDigit4},
	{ebiten.KeyP, core.ActionPause},
}

// KeySource reports key transitions since the previous update.
// inpututil provides the real one; tests use a fake.
type KeySource interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// fillFrame records this update's key transitions into frame.
func fillFrame(src KeySource, frame *core.InputFrame) {
	for _, b := range bindings {
		if src.JustReleased(b.key) {
			frame.Release(b.action)
		}
	}
	for _, b := range bindings {
		if src.JustPressed(b.key) {
			frame.Set(b.action)
		}
	}
}
