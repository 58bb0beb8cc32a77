package terminal

import (
	"github.com/vovakirdan/isa-quest/internal/core"
	"github.com/vovakirdan/isa-quest/internal/economy"
)

// MaxDeposits is the number of deposit choices the amount screen can offer
// (digits 1 to 4).
const MaxDeposits = 4

// DefaultDeposits are the amounts behind digits 1 to 4.
var DefaultDeposits = []float64{100, 200, 500, 1000}

// Result is the outcome of one terminal input.
type Result struct {
	Next      State   // Screen after the input
	Exit      bool    // The player left the terminal
	Deposited float64 // Amount moved into the ISA, if any
	Refused   float64 // Amount requested but not covered, if any
}

// Machine tracks the active terminal screen.
type Machine struct {
	state   State
	amounts []float64
}

// NewMachine creates a machine at the login screen. Only the first
// MaxDeposits amounts are offered; an empty list uses DefaultDeposits.
func NewMachine(amounts []float64) *Machine {
	if len(amounts) == 0 {
		amounts = DefaultDeposits
	}
	if len(amounts) > MaxDeposits {
		amounts = amounts[:MaxDeposits]
	}
	return &Machine{
		state:   Login,
		amounts: append([]float64(nil), amounts...),
	}
}

// Reset returns to the login screen. Called on every terminal entry.
func (m *Machine) Reset() {
	m.state = Login
}

// State returns the active screen.
func (m *Machine) State() State {
	return m.state
}

// Handle applies one input. Inputs the active screen does not accept leave
// everything unchanged.
func (m *Machine) Handle(a core.Action, acc *economy.Accounts) Result {
	res := m.state.handle(m, a, acc)
	m.state = res.Next
	return res
}

// Text returns the active screen's lines, newline-terminated.
func (m *Machine) Text(acc economy.Accounts) string {
	return m.state.text(m, acc)
}
