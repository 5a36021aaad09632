package cmd

import (
	"fmt"
	"io"
)

const (
	programName = "Bandwidth Calculator (bwcalc)"
	author      = "Bryan C."
)

// Version is the program version, overridable at build time with -ldflags.
var Version = "1.0"

func printAbout(w io.Writer) {
	fmt.Fprintf(w, "%s\n", programName)
	fmt.Fprintf(w, "Version: %s\n", Version)
	fmt.Fprintf(w, "Author:  %s\n", author)
}
