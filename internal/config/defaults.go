package config

import (
	_ "embed"
)

//go:embed defaults/isa.yaml
var defaultISAYAML []byte

// DefaultISAConfig returns the default game configuration.
func DefaultISAConfig() ISAConfig {
	return ISAConfig{
		Clock: ClockConfig{
			YearSeconds: 20,
			DaysPerYear: 365,
		},
		Economy: EconomyConfig{
			StartingCurrent: 0,
			StartingISA:     0,
			InterestRate:    0.01,
			Returns: ReturnsConfig{
				Mean:    0.0002,
				StdDev:  0.005,
				Floor:   -0.10,
				Ceiling: 0.10,
			},
		},
		Terminal: TerminalConfig{
			Deposits: []float64{100, 200, 500, 1000},
		},
		World: WorldConfig{
			Width:       100,
			Height:      32,
			StartX:      50,
			StartY:      16,
			PlayerSpeed: 20,
			Terminal:    BoxConfig{X: 10, Y: 12, W: 3, H: 2},
			Walls: []BoxConfig{
				{X: 0, Y: 7, W: 50, H: 1},
				{X: 0, Y: 31, W: 50, H: 1},
				{X: 0, Y: 8, W: 1, H: 23},
			},
		},
		Coins: CoinConfig{
			Value: 10,
			Count: 50,
		},
	}
}
