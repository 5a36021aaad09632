// Package main is the entry point for the bwcalc CLI.
package main

import (
	"os"

	"bwcalc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
