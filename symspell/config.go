package symspell

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config declares the construction parameters for an Index in a form
// suitable for loading from a file alongside the rest of an application's
// configuration.
type Config struct {
	MaxEditDistance int   `yaml:"maxEditDistance"`
	PrefixLength    int   `yaml:"prefixLength"`
	CountThreshold  int64 `yaml:"countThreshold"`
}

// DefaultConfig returns the same defaults as the reference SymSpell
// construction: edit distance 2, prefix length 7, count threshold 1.
func DefaultConfig() Config {
	return Config{
		MaxEditDistance: 2,
		PrefixLength:    7,
		CountThreshold:  1,
	}
}

// LoadConfig decodes a YAML document into a Config, starting from
// DefaultConfig so that a partial document only overrides what it sets.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("symspell: decode config: %w", err)
	}
	return cfg, nil
}

// NewIndexFromConfig builds an Index from a Config. It is equivalent to
// calling NewIndex with the Config's fields.
func NewIndexFromConfig(cfg Config, opts ...Option) (*Index, error) {
	return NewIndex(cfg.MaxEditDistance, cfg.PrefixLength, cfg.CountThreshold, opts...)
}
