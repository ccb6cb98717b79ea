package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filmtop",
		Short: "filmtop - rank a film catalog by rating and cast strength",
		Long: `filmtop reads a semicolon-delimited film catalog, scores every film by
blending its own rating with the best-known ratings of its cast, and writes
the top films to a text file.

Defaults come from the nearest .filmtop.yaml; flags override it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newRankCommand())
	cmd.AddCommand(newActorsCommand())
	cmd.AddCommand(newConfigCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
