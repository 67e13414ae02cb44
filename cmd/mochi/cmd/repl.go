package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/akashmaji946/mochi/repl"
)

var replPrompt string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive mochi session",
	RunE: func(_ *cobra.Command, _ []string) error {
		repl.New(replPrompt, noColor).Start(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&replPrompt, "prompt", "mochi >>> ", "REPL prompt string")
}
