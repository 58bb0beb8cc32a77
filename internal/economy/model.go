package economy

// Model groups the rates that drive both balances.
type Model struct {
	InterestRate float64 // Yearly rate on the current account
	Returns      ReturnModel
}

// DefaultModel returns 1% yearly interest and the default ISA returns.
func DefaultModel() Model {
	return Model{
		InterestRate: 0.01,
		Returns:      DefaultReturnModel(),
	}
}

// YearEnd records the interest credited when a year closed.
type YearEnd struct {
	Year     int     // Year that just ended
	Interest float64 // Amount credited to the current account
}

// Settle applies a clock crossing to the accounts: one interest credit per
// year boundary, then one independent daily return per day boundary.
func (m Model) Settle(c Crossing, acc *Accounts, src NormalSource) []YearEnd {
	var ends []YearEnd
	for i := 0; i < c.Years; i++ {
		before := acc.Current
		acc.Current = ApplyYearlyInterest(acc.Current, m.InterestRate)
		ends = append(ends, YearEnd{
			Year:     c.FromYear + i,
			Interest: acc.Current - before,
		})
	}
	if c.Days > 0 {
		acc.ISA = m.Returns.Compound(acc.ISA, c.Days, src)
	}
	return ends
}
