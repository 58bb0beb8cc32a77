package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadISA loads the game configuration.
// Search order: customPath -> ~/.isa/configs/isa.yaml -> ./configs/isa.yaml -> embedded default
func LoadISA(customPath string) (ISAConfig, error) {
	// Start from defaults so a partial file only overrides what it names
	cfg := DefaultISAConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("isa.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "isa.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultISAConfig()
	if err := yaml.Unmarshal(defaultISAYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultISAConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (ISAConfig, bool) {
	cfg := DefaultISAConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".isa", "configs", filename)
}

// Validate checks that the configuration describes a playable game.
func (c ISAConfig) Validate() error {
	var errs []error

	if c.Clock.YearSeconds <= 0 {
		errs = append(errs, errors.New("clock.year_seconds must be positive"))
	}
	if c.Clock.DaysPerYear <= 0 {
		errs = append(errs, errors.New("clock.days_per_year must be positive"))
	}
	if c.Economy.StartingCurrent < 0 || c.Economy.StartingISA < 0 {
		errs = append(errs, errors.New("economy starting balances must not be negative"))
	}
	if c.Economy.InterestRate < 0 {
		errs = append(errs, errors.New("economy.interest_rate must not be negative"))
	}
	r := c.Economy.Returns
	if r.StdDev < 0 {
		errs = append(errs, errors.New("economy.returns.stddev must not be negative"))
	}
	if r.Floor < -1 || r.Floor > r.Ceiling {
		errs = append(errs, fmt.Errorf("economy.returns range [%v, %v] is invalid", r.Floor, r.Ceiling))
	}
	if n := len(c.Terminal.Deposits); n == 0 || n > 4 {
		errs = append(errs, fmt.Errorf("terminal.deposits needs 1 to 4 amounts, got %d", n))
	}
	for _, d := range c.Terminal.Deposits {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("terminal.deposits: amount %v must be positive", d))
		}
	}
	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		errs = append(errs, errors.New("world size must be positive"))
	}
	if w.StartX < 0 || w.StartX > w.Width || w.StartY < 0 || w.StartY > w.Height {
		errs = append(errs, errors.New("world start position is outside the world"))
	}
	if w.PlayerSpeed <= 0 {
		errs = append(errs, errors.New("world.player_speed must be positive"))
	}
	if w.Terminal.W <= 0 || w.Terminal.H <= 0 {
		errs = append(errs, errors.New("world.terminal must have a positive size"))
	}
	if c.Coins.Value < 0 || c.Coins.Count < 0 {
		errs = append(errs, errors.New("coins value and count must not be negative"))
	}

	return errors.Join(errs...)
}
