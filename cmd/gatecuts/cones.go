//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	npncollector "github.com/dreamer1977/gatecuts/npn"
	"github.com/dreamer1977/gatecuts/render"
)

var (
	fOutDir string
	fPNG    bool
)

var conesCmd = &cobra.Command{
	Use:   "cones [netlist.bench]",
	Short: "extract the most common cone shapes as DOT (and optionally PNG)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCones,
}

func init() {
	conesCmd.Flags().StringVar(&fOutDir, "out-dir", ".", "directory to write extracted cones into")
	conesCmd.Flags().BoolVar(&fPNG, "png", false, "also rasterize each cone to PNG")
	rootCmd.AddCommand(conesCmd)
}

func runCones(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	net, _, err := loadNet(args[0])
	if err != nil {
		return err
	}

	collector := &npncollector.Collector{
		CutSize:       cfg.CutSize,
		MaxCutsNumber: cfg.MaxCutsNumber,
		Legacy:        cfg.LegacyMode,
	}
	result, err := collector.Collect(net)
	if err != nil {
		return err
	}

	essential := result.GetEssentialCones(cfg.TopNumber, cfg.ConesNumber)
	if err := os.MkdirAll(fOutDir, 0o755); err != nil {
		return err
	}

	ctx := context.Background()
	for class, cones := range essential {
		for i, bound := range cones {
			base := fmt.Sprintf("class-%d-%s-%d", class, uuid.New().String()[:8], i)
			dot := render.ToDOT(bound.Net, render.Options{})

			dotPath := filepath.Join(fOutDir, base+".dot")
			if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
				return err
			}

			if fPNG {
				png, err := render.RenderPNG(ctx, dot)
				if err != nil {
					return err
				}
				if err := os.WriteFile(filepath.Join(fOutDir, base+".png"), png, 0o644); err != nil {
					return err
				}
			}
		}
	}
	logger.Info().Int("classes", len(essential)).Str("dir", fOutDir).Msg("essential cones written")
	return nil
}
