package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int    // Current score (whole pounds of net worth)
	Paused bool   // Whether the game is paused
	Mode   string // Active interaction mode, for status lines and logs
	Year   int    // Current in-game year
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventCoinCollected EventKind = iota
	EventYearEnded
	EventDeposit
	EventDepositRefused
	EventTerminalOpened
	EventTerminalClosed
)

// String returns the ledger name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCoinCollected:
		return "coin"
	case EventYearEnded:
		return "year_end"
	case EventDeposit:
		return "deposit"
	case EventDepositRefused:
		return "deposit_refused"
	case EventTerminalOpened:
		return "terminal_open"
	case EventTerminalClosed:
		return "terminal_close"
	default:
		return "unknown"
	}
}

// Event describes a game occurrence the platform may log or persist.
// Balances are the values after the event was applied.
type Event struct {
	Kind    EventKind
	Year    int
	Amount  float64
	Current float64
	ISA     float64
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
