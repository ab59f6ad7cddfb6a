package main

import "github.com/spf13/cobra"

var filesCmd = &cobra.Command{
	Use:   "files <interactome> <dag> <sources> <targets>",
	Short: "Grow a DAG from four explicit input files",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleFiles(args[0], args[1], args[2], args[3])
	},
}
