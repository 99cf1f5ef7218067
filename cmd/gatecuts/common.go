//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"

	"github.com/dreamer1977/gatecuts/config"
	"github.com/dreamer1977/gatecuts/gate"
	"github.com/dreamer1977/gatecuts/netlist"
)

// loadConfig reads fConfigPath if set, falling back to defaults.
func loadConfig() (config.Config, error) {
	if fConfigPath == "" {
		return config.Default(), nil
	}
	return config.Load(fConfigPath)
}

// loadNet parses the .bench netlist at path.
func loadNet(path string) (*gate.Net, map[string]gate.Id, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("gatecuts: %w", err)
	}
	defer f.Close()
	return netlist.Parse(f)
}
