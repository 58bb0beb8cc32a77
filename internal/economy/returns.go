package economy

import (
	"math/rand"

	"github.com/vovakirdan/isa-quest/internal/core"
)

// NormalSource produces standard normal samples.
// *rand.Rand satisfies it; tests inject fixed sequences.
type NormalSource interface {
	NormFloat64() float64
}

// NewSource returns a seeded normal source.
func NewSource(seed int64) NormalSource {
	return rand.New(rand.NewSource(seed))
}

// ReturnModel describes the clipped-normal daily return of the ISA.
type ReturnModel struct {
	Mean    float64 // Mean daily return
	StdDev  float64 // Standard deviation of the daily return
	Floor   float64 // Lowest allowed daily return
	Ceiling float64 // Highest allowed daily return
}

// DefaultReturnModel returns N(0.0002, 0.005) clipped to [-0.1, 0.1].
// A mean of 0.0002 a day is about 7.6% a year.
func DefaultReturnModel() ReturnModel {
	return ReturnModel{
		Mean:    0.0002,
		StdDev:  0.005,
		Floor:   -0.10,
		Ceiling: 0.10,
	}
}

// Sample draws one daily return.
func (m ReturnModel) Sample(src NormalSource) float64 {
	r := m.Mean + m.StdDev*src.NormFloat64()
	return core.ClampF(r, m.Floor, m.Ceiling)
}

// Compound applies n independent daily returns to balance in sequence.
func (m ReturnModel) Compound(balance float64, n int, src NormalSource) float64 {
	for i := 0; i < n; i++ {
		balance = ApplyDailyReturn(balance, m.Sample(src))
	}
	return balance
}

// ApplyDailyReturn grows balance by the daily return r.
func ApplyDailyReturn(balance, r float64) float64 {
	return balance + balance*r
}

// ApplyYearlyInterest credits one year of interest at rate.
func ApplyYearlyInterest(balance, rate float64) float64 {
	return balance + balance*rate
}
