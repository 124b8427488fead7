package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/crashwatch/internal/series"
)

const (
	DefaultDetrendBandwidth = 50.0
	DefaultCSDWindow        = 250
	DefaultTauLookback      = 100
)

// Config holds the three analysis tunables. Status thresholds and the
// fit-acceptance bound are fixed design constants, not configuration.
type Config struct {
	DetrendBandwidth float64 `yaml:"detrend_bandwidth"`
	CSDWindow        int     `yaml:"csd_window"`
	TauLookback      int     `yaml:"tau_lookback"`
}

func DefaultConfig() *Config {
	return &Config{
		DetrendBandwidth: DefaultDetrendBandwidth,
		CSDWindow:        DefaultCSDWindow,
		TauLookback:      DefaultTauLookback,
	}
}

// Validate fails fast on misconfiguration so callers cannot confuse a
// bad setup with an insufficient-data result.
func (c *Config) Validate() error {
	if c.DetrendBandwidth <= 0 {
		return series.ErrBandwidth
	}
	if c.CSDWindow <= 1 {
		return series.ErrWindow
	}
	if c.TauLookback <= 0 {
		return series.ErrLookback
	}
	return nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
