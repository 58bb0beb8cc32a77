package economy

import (
	"errors"
	"fmt"
)

// ErrInsufficientFunds is returned when the current account cannot cover a deposit.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Accounts holds the player's two balances.
type Accounts struct {
	Current float64 // Current account: coins and yearly interest
	ISA     float64 // Stocks and shares ISA: deposits and daily returns
}

// Collect credits a coin pickup to the current account.
func (a *Accounts) Collect(value float64) {
	a.Current += value
}

// Deposit moves amount from the current account into the ISA.
// Nothing moves when the current account is short.
func (a *Accounts) Deposit(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit amount must be positive, got %v", amount)
	}
	if a.Current < amount {
		return fmt.Errorf("deposit %s: %w", FormatMoney(amount), ErrInsufficientFunds)
	}
	a.Current -= amount
	a.ISA += amount
	return nil
}

// NetWorth returns the sum of both balances.
func (a Accounts) NetWorth() float64 {
	return a.Current + a.ISA
}
