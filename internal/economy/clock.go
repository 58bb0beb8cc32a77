package economy

// Clock accumulates elapsed game seconds.
type Clock struct {
	calendar Calendar
	elapsed  float64
}

// NewClock creates a clock at zero using the given calendar.
func NewClock(cal Calendar) *Clock {
	return &Clock{calendar: cal}
}

// Advance moves the clock forward by dt seconds and returns the boundaries
// crossed. Non-positive deltas are ignored.
func (c *Clock) Advance(dt float64) Crossing {
	before := c.elapsed
	if dt > 0 {
		c.elapsed += dt
	}
	return c.calendar.Crossed(before, c.elapsed)
}

// Reset puts the clock back to zero.
func (c *Clock) Reset() {
	c.elapsed = 0
}

// Elapsed returns the accumulated seconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Year returns the current in-game year.
func (c *Clock) Year() int {
	return c.calendar.Year(c.elapsed)
}

// Day returns the current day of the year.
func (c *Clock) Day() int {
	return c.calendar.Day(c.elapsed)
}

// Calendar returns the calendar the clock derives years and days from.
func (c *Clock) Calendar() Calendar {
	return c.calendar
}
