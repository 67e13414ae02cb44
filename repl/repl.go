// Package repl implements the interactive read-eval-print loop: readline
// line editing and history, colored diagnostics, and the `:env`/`:help`/
// `:exit` sentinel commands. It mirrors Go-Mix's own repl.Repl
// (_examples/akashmaji946-go-mix/repl/repl.go) — banner, colored output
// sections, readline-driven main loop — retargeted at this language's
// lexer/parser/eval pipeline and carrying state (the Environment) across
// lines rather than recreating it per line.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/akashmaji946/mochi/environment"
	"github.com/akashmaji946/mochi/eval"
	"github.com/akashmaji946/mochi/lexer"
	"github.com/akashmaji946/mochi/object"
	"github.com/akashmaji946/mochi/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
   __  ______  ____  __  ______
  /  |/  / _ \/ /  |/ / / __/ /
 / /|_/ / // / / /|_/ / / _// _ \
/_/  /_/\___/_/_/  /_/ /_/ /_//_/
`

// Repl is an interactive session: banner text, prompt, and the persistent
// environment bindings accumulate across lines.
type Repl struct {
	Prompt  string
	NoColor bool
	env     *environment.Environment
}

// New creates a Repl with a fresh top-level environment.
func New(prompt string, noColor bool) *Repl {
	if prompt == "" {
		prompt = "mochi >>> "
	}
	return &Repl{Prompt: prompt, NoColor: noColor, env: environment.New()}
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 40)
	blueColor.Fprintln(w, line)
	greenColor.Fprintln(w, strings.TrimLeft(banner, "\n"))
	blueColor.Fprintln(w, line)
	cyanColor.Fprintln(w, "Welcome to mochi. Type code and press enter.")
	cyanColor.Fprintln(w, "Commands: :help  :env  :exit")
	blueColor.Fprintln(w, line)
}

// Start runs the main loop until the user exits or EOF (Ctrl+D) is reached.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt})
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Good bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		switch line {
		case ":exit":
			fmt.Fprintln(w, "Good bye!")
			return
		case ":help":
			r.printHelp(w)
			continue
		case ":env":
			r.printEnv(w)
			continue
		}

		r.eval(w, line)
	}
}

func (r *Repl) printHelp(w io.Writer) {
	cyanColor.Fprintln(w, ":help   show this message")
	cyanColor.Fprintln(w, ":env    dump the current environment")
	cyanColor.Fprintln(w, ":exit   quit the REPL")
}

// printEnv dumps the top-level environment's bindings as YAML, the
// supplemented `:env` command spec.md mentions only in passing.
func (r *Repl) printEnv(w io.Writer) {
	dump := make(map[string]string)
	for _, name := range r.env.Names() {
		val, _ := r.env.Get(name)
		dump[name] = val.Inspect()
	}
	out, err := yaml.Marshal(dump)
	if err != nil {
		redColor.Fprintf(w, "could not render environment: %v\n", err)
		return
	}
	yellowColor.Fprint(w, string(out))
}

func (r *Repl) eval(w io.Writer, line string) {
	lex := lexer.New(line, "")
	p := parser.New(lex)
	program := p.ParseProgram()

	warnColor, errColor := yellowColor, redColor
	if r.NoColor {
		warnColor, errColor = color.New(color.FgYellow), color.New(color.FgRed)
		warnColor.DisableColor()
		errColor.DisableColor()
	}

	for _, warning := range p.Warnings {
		warnColor.Fprint(w, warning.Render(!r.NoColor))
	}
	for _, parseErr := range p.Errors {
		errColor.Fprint(w, parseErr.Render(!r.NoColor))
	}
	if len(p.Errors) > 0 {
		return
	}

	result := eval.Eval(program, r.env)
	if result == nil {
		return
	}
	if result.Type() == object.NullType {
		return
	}
	if result.Type() == object.ErrorType {
		errColor.Fprintln(w, result.Inspect())
		return
	}
	yellowColor.Fprintln(w, result.Inspect())
}
