package config

import "sort"

// Presets are named configurations for common data frequencies. Daily
// data matches the defaults; weekly data needs tighter windows because
// fewer observations cover the same span.
var Presets = map[string]*Config{
	"daily": {
		DetrendBandwidth: DefaultDetrendBandwidth,
		CSDWindow:        DefaultCSDWindow,
		TauLookback:      DefaultTauLookback,
	},
	"weekly": {
		DetrendBandwidth: 10,
		CSDWindow:        52,
		TauLookback:      26,
	},
	"fast": {
		DetrendBandwidth: 25,
		CSDWindow:        100,
		TauLookback:      50,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
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
