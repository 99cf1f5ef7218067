//
// Copyright (c) 2019-2021 Markku Rossi
//
// All rights reserved.
//

// Command gatecuts enumerates K-feasible cuts over a .bench netlist
// and classifies them into NPN equivalence classes.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logger zerolog.Logger

	fConfigPath string
	fVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gatecuts",
	Short: "K-feasible cut enumeration and NPN classification for gate netlists",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if fVerbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			Level(level).With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&fConfigPath, "config", "", "path to a gatecuts.toml options file")
	rootCmd.PersistentFlags().BoolVar(&fVerbose, "verbose", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("gatecuts failed")
	}
}
