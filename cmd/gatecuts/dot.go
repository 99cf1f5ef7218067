//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreamer1977/gatecuts/gate"
	"github.com/dreamer1977/gatecuts/render"
	"github.com/dreamer1977/gatecuts/trace"
	"github.com/dreamer1977/gatecuts/walk"
)

var fTraceSubdir string

var dotCmd = &cobra.Command{
	Use:   "dot [netlist.bench]",
	Short: "print the whole netlist as Graphviz DOT",
	Args:  cobra.ExactArgs(1),
	RunE:  runDot,
}

func init() {
	dotCmd.Flags().StringVar(&fTraceSubdir, "trace", "", "dump a DOT snapshot per visited node under $GATECUTS_HOME/<subdir>")
	rootCmd.AddCommand(dotCmd)
}

func runDot(cmd *cobra.Command, args []string) error {
	net, _, err := loadNet(args[0])
	if err != nil {
		return err
	}

	if fTraceSubdir != "" {
		v, err := trace.New(net, fTraceSubdir, &noopVisitor{})
		if err != nil {
			return err
		}
		walk.New(net, v).Walk(true)
		logger.Info().Str("subdir", fTraceSubdir).Msg("trace snapshots written")
	}

	fmt.Fprint(cmd.OutOrStdout(), render.ToDOT(net, render.Options{}))
	return nil
}

// noopVisitor drives a plain topological walk with no side effects of
// its own, so `--trace` alone reproduces the walk order without
// running cut enumeration.
type noopVisitor struct{}

func (noopVisitor) OnNodeBegin(gate.Id) walk.Flag { return walk.Continue }
func (noopVisitor) OnNodeEnd(gate.Id) walk.Flag   { return walk.Continue }
