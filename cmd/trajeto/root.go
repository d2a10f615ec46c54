package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// execute is the entry point to running the CLI.
func execute(ctx context.Context, version string) {
	rootCmd := &cobra.Command{
		Use:          "trajeto",
		Short:        "Find paths through mazes and transit networks.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newMazeCommand(ctx))
	rootCmd.AddCommand(newTransitCommand(ctx))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
