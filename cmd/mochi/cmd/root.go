package cmd

import (
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "mochi",
	Short: "mochi is a small interpreter for the mochi expression language",
	Long: `mochi is a tree-walking interpreter: a lexer, a Pratt parser, and an
evaluator for a small dynamically-typed expression language with integers,
booleans, strings, functions, and closures.

Run a script with "mochi run <file>" or start an interactive session with
"mochi repl". With no subcommand, mochi starts the REPL.`,
	RunE: func(c *cobra.Command, args []string) error {
		return replCmd.RunE(c, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
}
