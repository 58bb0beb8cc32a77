// Package economy implements the money side of the game: the in-game
// calendar, the clock that drives it, yearly interest on the current account
// and randomized daily returns on the ISA.
package economy

import "math"

// Calendar converts elapsed real seconds into in-game years and days.
// Only whole seconds count, so the day index moves in jumps of roughly
// DaysPerYear/YearSeconds days.
type Calendar struct {
	YearSeconds int // Real seconds per in-game year
	DaysPerYear int // In-game days per year
}

// DefaultCalendar returns the standard 20-second, 365-day calendar.
func DefaultCalendar() Calendar {
	return Calendar{
		YearSeconds: 20,
		DaysPerYear: 365,
	}
}

// Year returns the in-game year at elapsed time t.
func (c Calendar) Year(t float64) int {
	return wholeSeconds(t) / c.YearSeconds
}

// Day returns the day of the current year at elapsed time t.
func (c Calendar) Day(t float64) int {
	progress := float64(wholeSeconds(t)%c.YearSeconds) / float64(c.YearSeconds)
	return int(progress * float64(c.DaysPerYear))
}

// AbsDay returns the number of days since the start of the game.
func (c Calendar) AbsDay(t float64) int {
	return c.Year(t)*c.DaysPerYear + c.Day(t)
}

// Crossing counts the boundaries passed between two clock readings.
type Crossing struct {
	FromYear int // Year before the advance
	Years    int // Year boundaries crossed
	Days     int // Day boundaries crossed
}

// Empty reports whether no boundary was crossed.
func (c Crossing) Empty() bool {
	return c.Years == 0 && c.Days == 0
}

// Crossed compares two readings and reports how many year and day
// boundaries lie between them. Days are counted on the absolute day index
// so an advance over a year rollover still yields a positive count.
// A reading that goes backwards crosses nothing.
func (c Calendar) Crossed(before, after float64) Crossing {
	out := Crossing{FromYear: c.Year(before)}
	if after <= before {
		return out
	}
	out.Years = max(c.Year(after)-out.FromYear, 0)
	out.Days = max(c.AbsDay(after)-c.AbsDay(before), 0)
	return out
}

func wholeSeconds(t float64) int {
	if t <= 0 {
		return 0
	}
	return int(math.Floor(t))
}
