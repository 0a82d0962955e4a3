// The hashcsv command parses a comma separated file, with # comments, and
// prints it as a table.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
)

func main() {
	cmd := newRootCommand(afero.NewOsFs())
	cmd.SetArgs(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "hashcsv: %v\n", err)
		os.Exit(1)
	}
}
