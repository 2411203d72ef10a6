/*
Package repl implements the interactive Read-Eval-Print Loop for
BxScript. Each line the user types is parsed and run as its own Program
against a persistent Interpreter (so `let`/`function` declarations from
one line remain visible to the next), with the interpreter's event loop
drained once after every line so an HTTP callback queued during
that line gets a chance to run before the next prompt.

Adapted from the teacher's repl/repl.go nearly verbatim for the Repl
struct shape (banner/version/author/line/license/prompt) and color
scheme; generalized from the teacher's persistent-evaluator-with-parser
coupling to BxScript's persistent root Environment plus a fresh Program
parse per line.
*/
package repl

import (
	"io"
	"strings"

	"github.com/burningli/bxscript/eval"
	"github.com/burningli/bxscript/eventloop"
	"github.com/burningli/bxscript/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given banner/version/author/separator
// line/license/prompt.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage instructions to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to BxScript!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type 'exit' or 'quit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against reader/writer until the user exits
// (`exit`, `quit`, or EOF). it and loop are supplied by the host and persist
// across every line of the session.
func (r *Repl) Start(reader io.Reader, writer io.Writer, it *eval.Interpreter, loop *eventloop.Loop) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, it, loop)
	}
}

// executeWithRecovery parses and evaluates one line, recovering from any
// panic escaping the evaluator so a single bad line never kills the
// session — unlike file mode, the REPL always returns to the prompt.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, it *eval.Interpreter, loop *eventloop.Loop) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p, err := parser.New(line)
	if err != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %s\n", err)
		return
	}
	prog, err := p.ParseProgram()
	if err != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %s\n", err)
		return
	}

	result, err := it.EvalProgram(prog, it.Global)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	if result != nil {
		yellowColor.Fprintf(writer, "%s\n", result.Display())
	}

	loop.Dispatch(it, 0)
}
