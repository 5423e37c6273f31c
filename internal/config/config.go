// Package config loads the optional YAML defaults file of ps71conv.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config holds defaults for the converter options. Command line flags take
// precedence over every field set here.
type Config struct {
	From      string         `yaml:"from,omitempty"`
	To        string         `yaml:"to,omitempty"`
	Format    string         `yaml:"format,omitempty"    validate:"omitempty,oneof=csv json yaml"`
	Aliases   map[string]int `yaml:"aliases,omitempty"   validate:"dive,keys,required,excludesall=:,endkeys,gt=0"`
	UTMEPSG   int            `yaml:"utm_epsg,omitempty"  validate:"omitempty,gt=0"`
	Precision *int           `yaml:"precision,omitempty" validate:"omitempty,min=0,max=12"`
	ErrCheck  bool           `yaml:"errcheck,omitempty"`
}

// Load reads, parses and validates the YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a YAML document. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// alias lookups are case-insensitive
	if len(cfg.Aliases) > 0 {
		aliases := make(map[string]int, len(cfg.Aliases))
		for name, code := range cfg.Aliases {
			aliases[strings.ToLower(name)] = code
		}
		cfg.Aliases = aliases
	}

	return &cfg, nil
}

// Alias returns the EPSG code registered under name.
func (c *Config) Alias(name string) (int, bool) {
	if c == nil {
		return 0, false
	}
	code, ok := c.Aliases[strings.ToLower(name)]
	return code, ok
}
