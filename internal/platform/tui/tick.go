// Package tui provides the Bubble Tea frontend for ISA Quest.
// It handles the terminal UI loop, input mapping, the menu, the scoreboard
// and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID names the tick
// loop that scheduled it so a model ignores ticks left over from an
// earlier game in the same program.
type TickMsg struct {
	Time time.Time
	ID   uint64
}

var lastTickLoop atomic.Uint64

// newTickLoop returns a fresh tick loop ID.
func newTickLoop() uint64 {
	return lastTickLoop.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
