package economy

import (
	"errors"
	"math"
	"testing"
)

// fixedSource replays a fixed list of normal samples, repeating the last one.
type fixedSource struct {
	samples []float64
	i       int
}

func (s *fixedSource) NormFloat64() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	v := s.samples[min(s.i, len(s.samples)-1)]
	s.i++
	return v
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalendarYearAndDay(t *testing.T) {
	cal := DefaultCalendar()

	tests := []struct {
		t          float64
		year, day  int
		absoluteDy int
	}{
		{0, 0, 0, 0},
		{0.99, 0, 0, 0},
		{1, 0, 18, 18},
		{10.5, 0, 182, 182},
		{19.5, 0, 346, 346},
		{20, 1, 0, 365},
		{20.5, 1, 0, 365},
		{41, 2, 18, 748},
	}

	for _, tc := range tests {
		if got := cal.Year(tc.t); got != tc.year {
			t.Errorf("Year(%v) = %d, expected %d", tc.t, got, tc.year)
		}
		if got := cal.Day(tc.t); got != tc.day {
			t.Errorf("Day(%v) = %d, expected %d", tc.t, got, tc.day)
		}
		if got := cal.AbsDay(tc.t); got != tc.absoluteDy {
			t.Errorf("AbsDay(%v) = %d, expected %d", tc.t, got, tc.absoluteDy)
		}
	}
}

func TestCalendarMonotonic(t *testing.T) {
	cal := DefaultCalendar()
	prevYear, prevAbs := 0, 0
	for i := 0; i <= 2000; i++ {
		ts := float64(i) * 0.037
		y, abs := cal.Year(ts), cal.AbsDay(ts)
		if y < prevYear || abs < prevAbs {
			t.Fatalf("calendar went backwards at t=%v", ts)
		}
		if d := cal.Day(ts); d < 0 || d >= cal.DaysPerYear {
			t.Fatalf("Day(%v) = %d out of range", ts, d)
		}
		prevYear, prevAbs = y, abs
	}
}

func TestCrossed(t *testing.T) {
	cal := DefaultCalendar()

	tests := []struct {
		name          string
		before, after float64
		years, days   int
	}{
		{"same second", 1.1, 1.9, 0, 0},
		{"one second", 1.9, 2.1, 0, 18},
		{"year rollover", 19.5, 20.5, 1, 19},
		{"stall over two years", 5, 45, 2, 730},
		{"backwards", 10, 5, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cal.Crossed(tc.before, tc.after)
			if c.Years != tc.years || c.Days != tc.days {
				t.Errorf("Crossed(%v, %v) = %+v, expected %d years %d days",
					tc.before, tc.after, c, tc.years, tc.days)
			}
		})
	}
}

func TestClockAdvance(t *testing.T) {
	c := NewClock(DefaultCalendar())
	c.Advance(19.5)

	cross := c.Advance(1.0)
	if cross.Years != 1 || cross.FromYear != 0 {
		t.Errorf("Advance over year end = %+v, expected one year from 0", cross)
	}
	if c.Year() != 1 || c.Day() != 0 {
		t.Errorf("clock at year %d day %d, expected 1/0", c.Year(), c.Day())
	}

	if cross := c.Advance(-3); !cross.Empty() || c.Elapsed() != 20.5 {
		t.Error("negative advance should be ignored")
	}

	c.Reset()
	if c.Elapsed() != 0 {
		t.Errorf("Elapsed() after reset = %v", c.Elapsed())
	}
}

func TestApplyYearlyInterest(t *testing.T) {
	tests := []struct {
		balance, expected float64
	}{
		{0, 0},
		{100, 101},
		{1000, 1010},
		{12.5, 12.625},
	}
	for _, tc := range tests {
		if got := ApplyYearlyInterest(tc.balance, 0.01); !almostEqual(got, tc.expected) {
			t.Errorf("ApplyYearlyInterest(%v) = %v, expected %v", tc.balance, got, tc.expected)
		}
	}
}

func TestReturnSampleClipped(t *testing.T) {
	m := DefaultReturnModel()
	src := &fixedSource{samples: []float64{1000, -1000, 0, 1}}

	want := []float64{0.10, -0.10, 0.0002, 0.0052}
	for i, w := range want {
		if got := m.Sample(src); !almostEqual(got, w) {
			t.Errorf("sample %d = %v, expected %v", i, got, w)
		}
	}
}

func TestDailyReturnBounds(t *testing.T) {
	m := DefaultReturnModel()
	src := NewSource(7)
	const balance = 500.0

	for i := 0; i < 5000; i++ {
		got := ApplyDailyReturn(balance, m.Sample(src))
		if got < balance*0.9-1e-9 || got > balance*1.1+1e-9 {
			t.Fatalf("daily return out of bounds: %v", got)
		}
	}
}

func TestCompoundIsSequential(t *testing.T) {
	m := DefaultReturnModel()
	src := &fixedSource{samples: []float64{1000, -1000, 1000}}

	got := m.Compound(100, 3, src)
	expected := 100 * 1.1 * 0.9 * 1.1
	if !almostEqual(got, expected) {
		t.Errorf("Compound() = %v, expected %v", got, expected)
	}
	if src.i != 3 {
		t.Errorf("expected 3 independent draws, got %d", src.i)
	}
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		name            string
		current, amount float64
		wantErr         error
		current2, isa2  float64
	}{
		{"covered", 150, 100, nil, 50, 100},
		{"exact", 200, 200, nil, 0, 200},
		{"short", 50, 100, ErrInsufficientFunds, 50, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			acc := Accounts{Current: tc.current}
			total := acc.NetWorth()

			err := acc.Deposit(tc.amount)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Deposit() error = %v, expected %v", err, tc.wantErr)
			}
			if acc.Current != tc.current2 || acc.ISA != tc.isa2 {
				t.Errorf("balances = %v/%v, expected %v/%v", acc.Current, acc.ISA, tc.current2, tc.isa2)
			}
			if acc.NetWorth() != total {
				t.Error("deposit should conserve net worth")
			}
		})
	}

	acc := Accounts{Current: 10}
	if err := acc.Deposit(0); err == nil {
		t.Error("zero deposit should fail")
	}
}

func TestSettle(t *testing.T) {
	m := DefaultModel()
	acc := Accounts{Current: 100, ISA: 100}
	src := &fixedSource{samples: []float64{1000}}

	ends := m.Settle(Crossing{FromYear: 3, Years: 2, Days: 2}, &acc, src)

	if len(ends) != 2 || ends[0].Year != 3 || ends[1].Year != 4 {
		t.Fatalf("year ends = %+v", ends)
	}
	if !almostEqual(ends[0].Interest, 1) || !almostEqual(ends[1].Interest, 1.01) {
		t.Errorf("interest credited = %v, %v", ends[0].Interest, ends[1].Interest)
	}
	if !almostEqual(acc.Current, 102.01) {
		t.Errorf("Current = %v, expected 102.01", acc.Current)
	}
	if !almostEqual(acc.ISA, 121) {
		t.Errorf("ISA = %v, expected 121", acc.ISA)
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		v        float64
		expected string
	}{
		{0, "£0.00"},
		{10, "£10.00"},
		{1234.567, "£1,234.57"},
		{999.999, "£1,000.00"},
		{1000000, "£1,000,000.00"},
		{-5.5, "-£5.50"},
	}
	for _, tc := range tests {
		if got := FormatMoney(tc.v); got != tc.expected {
			t.Errorf("FormatMoney(%v) = %q, expected %q", tc.v, got, tc.expected)
		}
	}

	if got := RoundMoney(101.005001); got != 101.01 {
		t.Errorf("RoundMoney() = %v", got)
	}
}
