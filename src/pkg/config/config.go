package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigLoader defines the interface for loading the tool configuration
type ConfigLoader interface {
	// Load loads the configuration from a YAML file
	Load(path string) (*Config, error)
	// Validate validates a configuration
	Validate(cfg *Config) error
}

// Loader handles loading configuration files
type Loader struct{}

// Ensure Loader implements ConfigLoader
var _ ConfigLoader = (*Loader)(nil)

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Limits: Limits{
			FormatLines:   100,
			InitLines:     100,
			ValidateLines: 100,
			PlanLines:     200,
			PlanChars:     0,
			CostLines:     100,
		},
	}
}

// Load loads the configuration from a YAML file, filling unset limits from
// the defaults.
func (l *Loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := l.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration
func (l *Loader) Validate(cfg *Config) error {
	limits := map[string]int{
		"formatLines":   cfg.Limits.FormatLines,
		"initLines":     cfg.Limits.InitLines,
		"validateLines": cfg.Limits.ValidateLines,
		"planLines":     cfg.Limits.PlanLines,
		"costLines":     cfg.Limits.CostLines,
	}
	for name, v := range limits {
		if v <= 0 {
			return fmt.Errorf("limit %s must be positive, got %d", name, v)
		}
	}
	if cfg.Limits.PlanChars < 0 {
		return fmt.Errorf("limit planChars must not be negative, got %d", cfg.Limits.PlanChars)
	}
	return nil
}
