package config

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// FileName is the conventional name of the config file.
const FileName = "csv2html.yaml"

// Config holds the settings of a conversion.
type Config struct {
	Title   string   `yaml:"title,omitempty"`
	Credit  bool     `yaml:"credit"` // invert the sign of the running balance
	Styles  []string `yaml:"styles,omitempty"`
	Scripts []string `yaml:"scripts,omitempty"`
}

// Load reads a csv2html.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the settings used when nothing is configured: a debit
// side ledger with no title and no extra assets.
func Default() *Config {
	return &Config{}
}

// Merge layers the given configs over dst in order. Set strings and a true
// Credit override earlier layers; styles and scripts accumulate.
func Merge(dst *Config, layers ...*Config) error {
	for _, l := range layers {
		if l == nil {
			continue
		}
		if err := mergo.Merge(dst, *l, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
			return fmt.Errorf("merging config: %w", err)
		}
	}
	return nil
}
