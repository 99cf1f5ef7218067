//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreamer1977/gatecuts/cut"
	"github.com/dreamer1977/gatecuts/gate"
)

var cutsCmd = &cobra.Command{
	Use:   "cuts [netlist.bench]",
	Short: "enumerate K-feasible cuts for every gate",
	Args:  cobra.ExactArgs(1),
	RunE:  runCuts,
}

func init() {
	rootCmd.AddCommand(cutsCmd)
}

func runCuts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	net, _, err := loadNet(args[0])
	if err != nil {
		return err
	}

	enumerator := &cut.Enumerator{
		CutSize:       cfg.CutSize,
		MaxCutsNumber: cfg.MaxCutsNumber,
		Legacy:        cfg.LegacyMode,
	}
	storage, err := enumerator.Enumerate(net)
	if err != nil {
		return err
	}

	for _, id := range gate.TopoSort(net) {
		cuts, ok := storage[id]
		if !ok {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v %s:", id, net.Gate(id).Function())
		for _, c := range cuts {
			fmt.Fprintf(cmd.OutOrStdout(), " %v", c.Slice())
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	logger.Info().Int("gates", net.NGates()).Msg("cut enumeration done")
	return nil
}
