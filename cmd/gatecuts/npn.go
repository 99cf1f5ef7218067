//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	npncollector "github.com/dreamer1977/gatecuts/npn"
)

var fHistogramPath string

var npnCmd = &cobra.Command{
	Use:   "npn [netlist.bench]",
	Short: "classify K-feasible cuts into NPN equivalence classes",
	Args:  cobra.ExactArgs(1),
	RunE:  runNPN,
}

func init() {
	npnCmd.Flags().StringVar(&fHistogramPath, "histogram", "", "write the per-class CSV histogram to this path instead of stdout")
	rootCmd.AddCommand(npnCmd)
}

func runNPN(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	net, _, err := loadNet(args[0])
	if err != nil {
		return err
	}

	runID := uuid.New()
	collector := &npncollector.Collector{
		CutSize:       cfg.CutSize,
		MaxCutsNumber: cfg.MaxCutsNumber,
		Legacy:        cfg.LegacyMode,
		CollectHeight: cfg.CollectHeight,
	}
	result, err := collector.Collect(net)
	if err != nil {
		return err
	}
	logger.Info().Str("run", runID.String()).Int("classes", len(result.Classes)).Msg("npn classification done")

	if err := npncollector.PrintGateStatistics(cmd.OutOrStdout(), result); err != nil {
		return err
	}

	histOut := cmd.OutOrStdout()
	if fHistogramPath != "" {
		f, err := os.Create(fHistogramPath)
		if err != nil {
			return err
		}
		defer f.Close()
		histOut = f
	}
	return npncollector.PrintHistogramCSV(histOut, result)
}
