package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akashmaji946/mochi/environment"
	"github.com/akashmaji946/mochi/eval"
	"github.com/akashmaji946/mochi/lexer"
	"github.com/akashmaji946/mochi/object"
	"github.com/akashmaji946/mochi/parser"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a mochi source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	lex := lexer.New(string(content), filename)
	p := parser.New(lex)
	program := p.ParseProgram()

	for _, w := range p.Warnings {
		fmt.Fprint(os.Stderr, w.Render(!noColor))
	}
	if len(p.Errors) > 0 {
		for _, e := range p.Errors {
			fmt.Fprint(os.Stderr, e.Render(!noColor))
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors))
	}

	env := environment.New()
	result := eval.Eval(program, env)
	if result != nil && result.Type() == object.ErrorType {
		fmt.Fprintln(os.Stderr, result.Inspect())
		return fmt.Errorf("execution failed")
	}

	return nil
}
