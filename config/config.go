// Package config holds the tunable parameters of the classification
// engines: verification weights and threshold, status freshness bands,
// and logging. Load once at startup; the loaded values are read-only
// afterwards.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/company-monitor/logger"
	"github.com/jonesrussell/company-monitor/status"
	"github.com/jonesrussell/company-monitor/verification"
)

// Config holds all engine configuration.
type Config struct {
	Verification VerificationConfig `yaml:"verification"`
	Status       StatusConfig       `yaml:"status"`
	Logging      logger.Config      `yaml:"logging"`
}

// VerificationConfig tunes the identity verifier.
type VerificationConfig struct {
	Weights   map[string]float64 `yaml:"weights"`
	Threshold float64            `yaml:"threshold"`
}

// StatusConfig tunes the status rule engine's freshness bands.
type StatusConfig struct {
	Bands status.Bands `yaml:"bands"`
}

// Default returns the configuration matching the built-in constants.
func Default() Config {
	return Config{
		Verification: VerificationConfig{
			Weights:   verification.DefaultWeights(),
			Threshold: verification.DefaultThreshold,
		},
		Status: StatusConfig{
			Bands: status.DefaultBands(),
		},
	}
}

// Load reads a YAML config file over the defaults. A missing path returns
// the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that loaded values are usable.
func (c *Config) Validate() error {
	if c.Verification.Threshold < 0 || c.Verification.Threshold > 1 {
		return fmt.Errorf("verification threshold %.2f outside [0, 1]", c.Verification.Threshold)
	}
	for name, weight := range c.Verification.Weights {
		if weight < 0 || weight > 1 {
			return fmt.Errorf("verification weight %q = %.2f outside [0, 1]", name, weight)
		}
	}
	b := c.Status.Bands
	if b.FreshContentDays <= 0 || b.StaleContentDays <= b.FreshContentDays {
		return fmt.Errorf("status content bands must satisfy 0 < fresh (%d) < stale (%d)",
			b.FreshContentDays, b.StaleContentDays)
	}
	if b.CopyrightFreshYears < 0 || b.CopyrightStaleYears < b.CopyrightFreshYears {
		return fmt.Errorf("status copyright bands must satisfy 0 <= fresh (%d) <= stale (%d)",
			b.CopyrightFreshYears, b.CopyrightStaleYears)
	}
	return nil
}
