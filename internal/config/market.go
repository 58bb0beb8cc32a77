package config

import "fmt"

// MarketPreset represents a named ISA market behaviour.
type MarketPreset string

const (
	MarketCalm     MarketPreset = "calm"
	MarketNormal   MarketPreset = "normal"
	MarketVolatile MarketPreset = "volatile"
	MarketFlat     MarketPreset = "flat"
)

// MarketPresets lists the presets in menu order.
var MarketPresets = []MarketPreset{MarketCalm, MarketNormal, MarketVolatile, MarketFlat}

// ParseMarketPreset converts a CLI value into a preset.
// The empty string means "use the config as loaded".
func ParseMarketPreset(s string) (MarketPreset, error) {
	switch p := MarketPreset(s); p {
	case "", MarketCalm, MarketNormal, MarketVolatile, MarketFlat:
		return p, nil
	default:
		return "", fmt.Errorf("unknown market preset %q (want calm, normal, volatile or flat)", s)
	}
}

// ApplyMarketPreset modifies the return model based on a market preset.
// Normal restores the default return model; flat disables randomness so
// the ISA only moves with the mean.
func ApplyMarketPreset(cfg *ISAConfig, preset MarketPreset) {
	def := DefaultISAConfig().Economy.Returns
	r := &cfg.Economy.Returns

	switch preset {
	case MarketCalm:
		r.Mean = def.Mean
		r.StdDev = def.StdDev / 2
	case MarketNormal:
		*r = def
	case MarketVolatile:
		r.Mean = def.Mean
		r.StdDev = def.StdDev * 4
	case MarketFlat:
		r.StdDev = 0
	}
}

// IsFlatPreset returns true if the preset removes market randomness.
func IsFlatPreset(preset MarketPreset) bool {
	return preset == MarketFlat
}
