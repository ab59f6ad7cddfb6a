package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	iterations     int
	noLogTransform bool
	verbose        bool

	logger *slog.Logger
	runID  string
)

var rootCmd = &cobra.Command{
	Use:   "growdag",
	Short: "Grow a directed acyclic pathway inside a weighted gene interactome",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		runID = uuid.NewString()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&iterations, "k", "k", 0, "number of growth iterations to run (required)")
	rootCmd.PersistentFlags().BoolVarP(&noLogTransform, "no-log-transform", "n", false, "use raw interactome weights instead of the default log transform")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "emit debug-level logs")
	_ = rootCmd.MarkPersistentFlagRequired("k")

	rootCmd.AddCommand(filesCmd, folderCmd)
}
