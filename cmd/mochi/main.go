// Command mochi is the CLI entrypoint: `mochi run <file>` executes a source
// file, `mochi repl` starts the interactive session, and bare `mochi` with
// no subcommand falls back to the REPL. Go-Mix's own main.go
// (_examples/akashmaji946-go-mix/main/main.go) hand-dispatches between these
// two modes on raw os.Args; this entrypoint adopts spf13/cobra for the same
// dispatch, the way both CWBudde-go-dws and conneroisu-gix structure their
// CLIs in the pack.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/mochi/cmd/mochi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
