/*
File    : monkeymix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the interpreter.
Each line is lexed, parsed, and evaluated against a single Environment
that persists for the life of the session, so a `let` on one line is
observable on the next. The REPL uses the readline library for command
history and line editing, and colors output the way the teacher's REPL
does, repurposed onto this language's own result/error shapes.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/go-mix/evaluator"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/object"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Prompt is the line the spec requires before every input line.
const Prompt = ">> "

// Color definitions for REPL output, preserved from the teacher:
// - blueColor: decorative lines and separators
// - yellowColor: successful expression results
// - redColor: parse and runtime errors
// - greenColor: banner and success messages
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New builds a Repl with the given banner, version, author, separator
// line, and prompt string.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage instructions to
// writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type 'quit' or 'exit' to leave")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main REPL loop until the user quits, EOF is reached, or
// readline itself errors. reader is accepted for interface symmetry with
// the teacher's Start signature but is unused: readline owns stdin.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := object.NewEnvironment()
	eval := evaluator.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.execute(writer, line, eval, env)
	}
}

// execute lexes, parses, and evaluates a single input line against the
// session's persistent environment, printing either the accumulated
// parse errors or the evaluation result's inspect form.
func (r *Repl) execute(writer io.Writer, line string, eval *evaluator.Evaluator, env *object.Environment) {
	p := parser.New(lexer.New(line))
	program := p.ParseProgram()

	if p.HasErrors() {
		for _, msg := range p.Errors {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result := eval.Eval(program, env)
	if result == nil {
		return
	}
	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
