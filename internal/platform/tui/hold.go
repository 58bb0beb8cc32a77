package tui

import (
	"time"

	"github.com/vovakirdan/isa-quest/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after the
// terminal last reported it. Terminals send repeats while a key is down
// but never a key-up.
const DefaultHoldWindow = 180 * time.Millisecond

// movementOrder fixes the order in which expired keys are released.
var movementOrder = []core.Action{
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
}

// HoldTracker turns a stream of key repeats into press and release events.
type HoldTracker struct {
	window time.Duration
	seen   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		seen:   make(map[core.Action]time.Time, len(movementOrder)),
	}
}

// Press records a report of a movement key at now. It returns true when
// the key was not already held, i.e. when the game should see a key-down.
// Pressing a direction forgets the opposite one on the same axis so its
// expiry does not stop the new movement.
func (h *HoldTracker) Press(a core.Action, now time.Time) bool {
	if !a.IsMovement() {
		return false
	}
	delete(h.seen, opposite(a))
	_, held := h.seen[a]
	h.seen[a] = now
	return !held
}

// Expire drops every key not reported within the window and returns them.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var released []core.Action
	for _, a := range movementOrder {
		last, ok := h.seen[a]
		if !ok || now.Sub(last) <= h.window {
			continue
		}
		delete(h.seen, a)
		released = append(released, a)
	}
	return released
}

// ReleaseAll drops every held key and returns them.
func (h *HoldTracker) ReleaseAll() []core.Action {
	var released []core.Action
	for _, a := range movementOrder {
		if _, ok := h.seen[a]; ok {
			delete(h.seen, a)
			released = append(released, a)
		}
	}
	return released
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
