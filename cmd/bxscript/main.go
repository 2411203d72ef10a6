/*
Package main is the entry point for the BxScript interpreter.

Usage:

	bxscript                 Start interactive REPL mode
	bxscript <path-to-file>  Execute a BxScript file (.bx)
	bxscript --help          Display help information
	bxscript --version       Display version information
	bxscript --dump-ast <f>  Print a file's parsed AST without running it
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/burningli/bxscript/ast"
	"github.com/burningli/bxscript/eval"
	"github.com/burningli/bxscript/eventloop"
	"github.com/burningli/bxscript/gui"
	"github.com/burningli/bxscript/modloader"
	"github.com/burningli/bxscript/parser"
	"github.com/burningli/bxscript/repl"
	"github.com/burningli/bxscript/stdlib"
	"github.com/fatih/color"
)

var VERSION = "v1.0.0"
var AUTHOR = "BurNingLi"
var LICENCE = "MIT"
var PROMPT = "bx >>> "

var BANNER = `
 ____        ____            _       _
| __ ) __  _/ ___|  ___ _ __(_)_ __ | |_
|  _ \\ \/ /\___ \ / __| '__| | '_ \| __|
| |_) |>  <  ___) | (__| |  | | |_) | |_
|____//_/\_\____/ \___|_|  |_| .__/ \__|
                              |_|
`

var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		case "--dump-ast":
			if len(os.Args) < 3 {
				redColor.Fprintln(os.Stderr, "usage: bxscript --dump-ast <path-to-file>")
				os.Exit(1)
			}
			dumpAST(os.Args[2])
			return
		}
		runFile(os.Args[1])
		return
	}

	it, loop, _ := newInterpreter(".")
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout, it, loop)
}

func showHelp() {
	cyanColor.Println("BxScript - A Scripting Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  bxscript                    Start interactive REPL mode")
	yellowColor.Println("  bxscript <path-to-file>     Execute a BxScript file (.bx)")
	yellowColor.Println("  bxscript --help             Display this help message")
	yellowColor.Println("  bxscript --version          Display version information")
	yellowColor.Println("  bxscript --dump-ast <file>  Print a file's parsed AST without running it")
}

func showVersion() {
	cyanColor.Println("BxScript - A Scripting Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// newInterpreter wires together one interpreter's full runtime: its
// global environment with the builtin binders and stdlib bridge
// installed, a module loader resolving `std.*` imports against the
// running executable's lib/ directory and everything else against the
// current working directory (spec.md §4.7), an event loop for async host
// callbacks, and the GUI registration contract.
func newInterpreter(workDir string) (*eval.Interpreter, *eventloop.Loop, *gui.Registry) {
	it := eval.New()
	loop := eventloop.New()
	stdlib.Install(it.Global, loop)

	registry := gui.NewRegistry()
	_ = it.Global.Declare("form", registry.NativeForm())

	execDir := "."
	if exe, err := os.Executable(); err == nil {
		execDir = filepath.Dir(exe)
	}
	it.Loader = modloader.New(it, execDir, workDir)

	return it, loop, registry
}

// runFile executes a BxScript source file and drains the event loop
// afterward, so any HTTP callback the script queued still runs
// before the process exits (spec.md §6: the process lives until the
// event loop has no more active or queued work).
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	it, loop, registry := newInterpreter(".")
	executeFileWithRecovery(string(source), it, loop)

	loop.RunLoop(it)

	if registry.HasRegisteredForm() {
		cyanColor.Println("GUI forms registered; GUI runtime not built into this binary.")
	}
}

// dumpAST parses a file and prints its AST without evaluating it, a
// debugging aid replacing the teacher's PrintingVisitor demo.
func dumpAST(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	p, err := parser.New(string(source))
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", err)
		os.Exit(1)
	}
	prog, err := p.ParseProgram()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stdout, ast.Dump(prog))
}

func executeFileWithRecovery(source string, it *eval.Interpreter, loop *eventloop.Loop) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p, err := parser.New(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", err)
		os.Exit(1)
	}
	prog, err := p.ParseProgram()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", err)
		os.Exit(1)
	}

	result, err := it.EvalProgram(prog, it.Global)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	if result != nil && result.Kind().String() != "null" {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Display())
	}
}
