// Command growdag iteratively grows a directed acyclic pathway inside a
// larger weighted gene interactome, emitting each iteration's winning
// path and its cost.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
