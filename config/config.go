//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

// Package config loads cut-enumeration and NPN-collector options from
// a TOML file. No command-line flag overrides the loaded fields.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable of the cut-enumeration and NPN-collection
// pipeline.
type Config struct {
	// CutSize is the maximum cut size K, K >= 1.
	CutSize int `toml:"cut_size"`
	// MaxCutsNumber is the enumerator's soft per-node cap (a node stops
	// enumerating once it holds more than this many cuts); 0 means
	// unlimited.
	MaxCutsNumber int `toml:"max_cuts_number"`
	// LegacyMode selects the non-subsumption enumeration variant.
	LegacyMode bool `toml:"legacy_mode"`
	// CollectHeight enables min/max height collection during NPN
	// classification.
	CollectHeight bool `toml:"collect_height"`
	// TopNumber and ConesNumber parametrize GetEssentialCones.
	TopNumber   int `toml:"top_number"`
	ConesNumber int `toml:"cones_number"`
}

// Default returns the conservative baseline: a 4-input cut bound, no
// per-node cap, the canonical (non-legacy) enumerator, and heights
// off.
func Default() Config {
	return Config{
		CutSize:       4,
		MaxCutsNumber: 0,
		LegacyMode:    false,
		CollectHeight: false,
		TopNumber:     10,
		ConesNumber:   5,
	}
}

// Load reads a TOML file into a Config seeded with Default values, so
// a file needs only to override the fields it cares about.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the enumerator and collector cannot
// act on.
func (c Config) Validate() error {
	if c.CutSize < 1 {
		return fmt.Errorf("config: cut_size must be >= 1, got %d", c.CutSize)
	}
	if c.MaxCutsNumber < 0 {
		return fmt.Errorf("config: max_cuts_number must be >= 0, got %d", c.MaxCutsNumber)
	}
	return nil
}
