// Package config provides YAML-based game configuration loading and
// market presets for ISA Quest.
package config

// ISAConfig contains all configuration for the game.
type ISAConfig struct {
	Clock    ClockConfig    `yaml:"clock"`
	Economy  EconomyConfig  `yaml:"economy"`
	Terminal TerminalConfig `yaml:"terminal"`
	World    WorldConfig    `yaml:"world"`
	Coins    CoinConfig     `yaml:"coins"`
}

// ClockConfig defines how real time maps onto the in-game calendar.
type ClockConfig struct {
	YearSeconds int `yaml:"year_seconds"` // Real seconds per in-game year
	DaysPerYear int `yaml:"days_per_year"`
}

// EconomyConfig defines starting balances and growth rates.
type EconomyConfig struct {
	StartingCurrent float64       `yaml:"starting_current"`
	StartingISA     float64       `yaml:"starting_isa"`
	InterestRate    float64       `yaml:"interest_rate"` // Yearly, current account
	Returns         ReturnsConfig `yaml:"returns"`
}

// ReturnsConfig defines the clipped-normal daily ISA return.
type ReturnsConfig struct {
	Mean    float64 `yaml:"mean"`
	StdDev  float64 `yaml:"stddev"`
	Floor   float64 `yaml:"floor"`
	Ceiling float64 `yaml:"ceiling"`
}

// TerminalConfig defines the deposit choices offered by the terminal.
type TerminalConfig struct {
	Deposits []float64 `yaml:"deposits"` // Amounts behind digits 1 to 4
}

// WorldConfig defines the room the player walks around.
type WorldConfig struct {
	Width       float64     `yaml:"width"`
	Height      float64     `yaml:"height"`
	StartX      float64     `yaml:"start_x"`
	StartY      float64     `yaml:"start_y"`
	PlayerSpeed float64     `yaml:"player_speed"` // Cells per second
	Terminal    BoxConfig   `yaml:"terminal"`
	Walls       []BoxConfig `yaml:"walls"`
}

// BoxConfig is a rectangle in world cells.
type BoxConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// CoinConfig defines the collectible coins.
type CoinConfig struct {
	Value float64 `yaml:"value"`
	Count int     `yaml:"count"` // Spawn attempts per year
}
