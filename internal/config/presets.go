package config

import (
	"sort"

	"github.com/san-kum/bactogrowth/internal/growth"
)

var Presets = map[string]*Config{
	"classroom": {
		ElapsedMinutes: 24 * 60, DoublingMinutes: 20, InitialPopulation: 1, Samples: 24,
	},
	"slow": {
		ElapsedMinutes: 24 * 60, DoublingMinutes: 40, InitialPopulation: 1, Samples: 24,
	},
	"page": {
		ElapsedMinutes: 2 * 24 * 60, DoublingMinutes: 20, InitialPopulation: 1, Samples: 10,
	},
	"lab": {
		ElapsedMinutes: 24 * 60, DoublingMinutes: 20, InitialPopulation: 7, Samples: 72,
	},
}

// GetPreset returns the named preset completed with the defaults it does not
// set, or nil when no such preset exists.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.ElapsedMinutes = p.ElapsedMinutes
	cfg.DoublingMinutes = p.DoublingMinutes
	cfg.InitialPopulation = p.InitialPopulation
	if cfg.InitialPopulation == 0 {
		cfg.InitialPopulation = growth.DefaultInitialPopulation
	}
	if p.Samples > 0 {
		cfg.Samples = p.Samples
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
