// Package terminal models the in-game computer: a small screen-by-screen
// workflow for logging into the ISA provider and depositing money.
// The set of screens is closed; callers can hold and compare states but
// cannot create new ones.
package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/isa-quest/internal/core"
	"github.com/vovakirdan/isa-quest/internal/economy"
)

// State is one terminal screen.
type State interface {
	// String returns the screen's name for logs and snapshots.
	String() string

	handle(m *Machine, a core.Action, acc *economy.Accounts) Result
	text(m *Machine, acc economy.Accounts) string
}

type (
	loginState           struct{}
	depositQuestionState struct{}
	depositAmountState   struct{}
	fundProblemState     struct{}
)

// The four terminal screens.
var (
	Login           State = loginState{}
	DepositQuestion State = depositQuestionState{}
	DepositAmount   State = depositAmountState{}
	FundProblem     State = fundProblemState{}
)

func (loginState) String() string           { return "login" }
func (depositQuestionState) String() string { return "deposit_question" }
func (depositAmountState) String() string   { return "deposit_amount" }
func (fundProblemState) String() string     { return "fund_problem" }

func (loginState) handle(_ *Machine, a core.Action, _ *economy.Accounts) Result {
	switch a {
	case core.ActionYes:
		return Result{Next: DepositQuestion}
	case core.ActionNo, core.ActionEscape:
		return Result{Next: Login, Exit: true}
	}
	return Result{Next: Login}
}

func (loginState) text(_ *Machine, _ economy.Accounts) string {
	return "Log into the website\nof your stocks and\nshares ISA provider?\n(y/n)\n"
}

func (depositQuestionState) handle(_ *Machine, a core.Action, _ *economy.Accounts) Result {
	switch a {
	case core.ActionYes:
		return Result{Next: DepositAmount}
	case core.ActionNo:
		return Result{Next: Login}
	case core.ActionEscape:
		return Result{Next: Login, Exit: true}
	}
	return Result{Next: DepositQuestion}
}

func (depositQuestionState) text(_ *Machine, acc economy.Accounts) string {
	return fmt.Sprintf("Account balance: %s\n\nDeposit money?\n(y/n)\n", economy.FormatMoney(acc.ISA))
}

func (depositAmountState) handle(m *Machine, a core.Action, acc *economy.Accounts) Result {
	if a == core.ActionEscape {
		return Result{Next: Login, Exit: true}
	}

	d := a.Digit()
	switch {
	case d == 0:
		return Result{Next: DepositQuestion}
	case d > 0 && d <= len(m.amounts):
		amount := m.amounts[d-1]
		err := acc.Deposit(amount)
		switch {
		case errors.Is(err, economy.ErrInsufficientFunds):
			return Result{Next: FundProblem, Refused: amount}
		case err != nil:
			return Result{Next: DepositAmount}
		}
		return Result{Next: DepositQuestion, Deposited: amount}
	}
	return Result{Next: DepositAmount}
}

func (depositAmountState) text(m *Machine, _ economy.Accounts) string {
	var sb strings.Builder
	sb.WriteString("How much would you\nlike to deposit?\n\n0 - back\n")
	for i, amount := range m.amounts {
		fmt.Fprintf(&sb, "%d - %s\n", i+1, strconv.FormatFloat(amount, 'f', -1, 64))
	}
	return sb.String()
}

func (fundProblemState) handle(_ *Machine, a core.Action, _ *economy.Accounts) Result {
	switch a {
	case core.ActionYes:
		return Result{Next: DepositAmount}
	case core.ActionNo:
		return Result{Next: Login}
	case core.ActionEscape:
		return Result{Next: Login, Exit: true}
	}
	return Result{Next: FundProblem}
}

func (fundProblemState) text(_ *Machine, _ economy.Accounts) string {
	return "Not enough funds.\n\nReturn to deposit screen?\n(y/n)\n"
}
