package mapping

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration picked up from the working directory.
const DefaultConfigFile = "config.yaml"

// filePerm is the mode of written configuration files.
const filePerm = 0o644

// DefaultConfig returns a configuration with no overrides and the default
// formatting patterns.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads, parses and validates a YAML configuration file.
// Every failure is a *ConfigError.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			cerr.Path = path
		}

		return nil, err
	}

	return cfg, nil
}

// Parse parses and validates YAML data into a Config. Validation warnings
// do not fail the parse and are kept in Config.Warnings.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("failed to parse YAML: %w", err)}
	}

	applyDefaults(&cfg)

	diags := Validate(&cfg)
	if err := diags.Error(); err != nil {
		return nil, &ConfigError{Err: err}
	}

	cfg.Warnings = diags.Warnings

	return &cfg, nil
}

// applyDefaults fills in formatting lists that were not given.
// An explicit empty list is kept.
func applyDefaults(cfg *Config) {
	f := &cfg.Formatting

	if f.CurrencyPatterns == nil {
		f.CurrencyPatterns = append([]string(nil), DefaultCurrencyPatterns...)
	}

	if f.PercentagePatterns == nil {
		f.PercentagePatterns = append([]string(nil), DefaultPercentagePatterns...)
	}

	if f.CountPatterns == nil {
		f.CountPatterns = append([]string(nil), DefaultCountPatterns...)
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write configuration file %s: %w", path, err)
	}

	return nil
}
