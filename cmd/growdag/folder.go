package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

var folderCmd = &cobra.Command{
	Use:   "folder <path>",
	Short: "Grow a DAG from a folder containing interactome.txt, dag.txt, sources.txt, targets.txt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		return handleFiles(
			filepath.Join(path, "interactome.txt"),
			filepath.Join(path, "dag.txt"),
			filepath.Join(path, "sources.txt"),
			filepath.Join(path, "targets.txt"),
		)
	},
}
