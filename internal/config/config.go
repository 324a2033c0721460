// Package config loads service configuration from a YAML file with
// environment overrides for deployment-specific values.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Institution identifies the servicing institution stamped into every
// generated document.
type Institution struct {
	BIC  string `yaml:"bic"`
	Name string `yaml:"name"`
}

// Recipient identifies the message recipient party.
type Recipient struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Config is the full service configuration.
type Config struct {
	Port   string `yaml:"port"`
	DBPath string `yaml:"db_path"`

	// ActiveVersion selects the schema revision used for generation.
	ActiveVersion string `yaml:"active_version"`
	// Schemas maps schema versions to XSD resource paths.
	Schemas map[string]string `yaml:"schemas"`

	Timezone          string      `yaml:"timezone"`
	ReportingCurrency string      `yaml:"reporting_currency"`
	Servicer          Institution `yaml:"servicer"`
	Recipient         Recipient   `yaml:"recipient"`

	FeatureFlags map[string]bool `yaml:"feature_flags"`
}

func defaults() *Config {
	return &Config{
		Port:          "8080",
		DBPath:        "camt-reporter.db",
		ActiveVersion: "camt.054.001.02",
		Schemas: map[string]string{
			"camt.054.001.02": "schemas/camt.054.001.02.xsd",
			"camt.054.001.08": "schemas/camt.054.001.08.xsd",
		},
		Timezone:          "Europe/Berlin",
		ReportingCurrency: "EUR",
	}
}

// Load reads the YAML file at path on top of defaults, then applies env
// overrides (PORT, DB_PATH). A missing file is not an error: defaults plus
// env apply.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}

	return cfg, nil
}

// Location resolves the configured civil timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
