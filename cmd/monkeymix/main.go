/*
File    : monkeymix/cmd/monkeymix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the interpreter's command-line entry point, built on
Cobra rather than hand-rolled os.Args parsing: the retrieval pack's
conneroisu-gix module pulls in spf13/cobra for exactly this kind of
root-command-plus-flags CLI shape.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-mix/evaluator"
	"github.com/akashmaji946/go-mix/internal/diagnostics"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/object"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/repl"
	"github.com/spf13/cobra"
)

// Version is the interpreter's release identifier, stamped into the
// REPL banner and the --version output.
const Version = "v1.0.0"

const author = "akashmaji(@iisc.ac.in)"

const line = "----------------------------------------------------------------"

const banner = `
 ███╗   ███╗ ██████╗ ███╗   ██╗██╗  ██╗███████╗██╗   ██╗███╗   ███╗██╗██╗  ██╗
 ████╗ ████║██╔═══██╗████╗  ██║██║ ██╔╝██╔════╝╚██╗ ██╔╝████╗ ████║██║╚██╗██╔╝
 ██╔████╔██║██║   ██║██╔██╗ ██║█████╔╝ █████╗   ╚████╔╝ ██╔████╔██║██║ ╚███╔╝
 ██║╚██╔╝██║██║   ██║██║╚██╗██║██╔═██╗ ██╔══╝    ╚██╔╝  ██║╚██╔╝██║██║ ██╔██╗
 ██║ ╚═╝ ██║╚██████╔╝██║ ╚████║██║  ██╗███████╗   ██║   ██║ ╚═╝ ██║██║██╔╝ ██╗
 ╚═╝     ╚═╝ ╚═════╝ ╚═╝  ╚═══╝╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝     ╚═╝╚═╝╚═╝  ╚═╝
`

var logLevel string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "monkeymix [file]",
		Short:   "monkeymix is a tree-walking interpreter for a small expression-oriented language",
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diagnostics.Default().SetLevel(diagnostics.ParseLevel(logLevel))
			if len(args) == 1 {
				return runFile(args[0])
			}
			runREPL()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", os.Getenv(diagnostics.EnvLevelVar),
		"minimum log level (trace, debug, warn, error)")

	root.AddCommand(newRunCmd())
	return root
}

// newRunCmd is an explicit alias for `monkeymix <file>`, for callers who
// prefer a named subcommand over a bare positional argument.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run a source file and print its final value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diagnostics.Default().SetLevel(diagnostics.ParseLevel(logLevel))
			return runFile(args[0])
		},
	}
}

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	p := parser.New(lexer.New(string(source)))
	program := p.ParseProgram()
	if p.HasErrors() {
		for _, msg := range p.Errors {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("%s: %d parse error(s)", path, len(p.Errors))
	}

	env := object.NewEnvironment()
	eval := evaluator.New(os.Stdout)
	result := eval.Eval(program, env)
	if result == nil {
		return nil
	}
	fmt.Println(result.Inspect())
	if result.Type() == object.ERROR_OBJ {
		return fmt.Errorf("%s: runtime error", path)
	}
	return nil
}

func runREPL() {
	session := repl.New(banner, Version, author, line, repl.Prompt)
	session.Start(os.Stdin, os.Stdout)
}
