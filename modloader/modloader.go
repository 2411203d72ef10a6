/*
Package modloader implements spec.md §4.7's import resolution: dotted
import paths resolve to .bx files under either the executable's lib/
directory (for `std.*` imports) or the current working directory
(everything else), and a process-wide cache keyed by absolute path avoids
re-parsing and re-executing a module already loaded.

Grounded on the teacher's file-handling idiom (file/file.go's os.ReadFile
plus wrapped errors) generalized to BxScript's module semantics, which
go-mix has no equivalent of (it has no import statement at all).
*/
package modloader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/burningli/bxscript/ast"
	"github.com/burningli/bxscript/parser"
	"github.com/burningli/bxscript/value"
)

// Runner is the subset of eval.Interpreter a Loader needs to execute a
// freshly parsed module Program: kept as an interface so this package
// never imports eval directly (eval already depends on modloader.Loader
// through its own Loader interface, and Go forbids the cycle the other
// way).
//
// GlobalEnv gives a module access to the same root environment the
// importing script runs in (the builtin binder namespaces of spec.md
// §4.4 and any `__native_*` bridge bindings stdlib installs) without
// letting the module's own top-level declarations leak back into that
// root — Load runs each module in a fresh child of GlobalEnv, not the
// root itself.
type Runner interface {
	EvalProgram(prog *ast.Program, env value.Env) (value.Value, error)
	GlobalEnv() value.Env
}

type cacheEntry struct {
	program *ast.Program
	module  value.Value
}

// Loader resolves and caches BxScript modules. A single Loader instance
// should be shared by every import across one process's lifetime, since
// spec.md §4.7 specifies a process-wide cache.
type Loader struct {
	runner  Runner
	cache   map[string]*cacheEntry
	execDir string
	workDir string
}

// New creates a Loader that executes modules via runner. execDir is the
// directory `std.*` imports resolve under (normally the running
// executable's directory); workDir is the base for every other import
// (normally the process's current working directory).
func New(runner Runner, execDir, workDir string) *Loader {
	return &Loader{
		runner:  runner,
		cache:   make(map[string]*cacheEntry),
		execDir: execDir,
		workDir: workDir,
	}
}

// resolvePath implements spec.md §4.7's path resolution rule.
func (l *Loader) resolvePath(segments []string) (string, error) {
	if len(segments) == 0 {
		return "", fmt.Errorf("empty import path")
	}
	base := l.workDir
	rest := segments
	if segments[0] == "std" {
		base = filepath.Join(l.execDir, "lib")
		rest = segments[1:]
	}
	joined := filepath.Join(append([]string{base}, rest...)...)
	return joined + ".bx", nil
}

// Load implements eval.Loader: resolve path to a file, load it (parsing
// and executing on first reference, replaying the cache thereafter), and
// return the module's exported Object.
func (l *Loader) Load(segments []string) (value.Value, error) {
	path, err := l.resolvePath(segments)
	if err != nil {
		return nil, fmt.Errorf("cannot import '%s': %w", dottedPath(segments), err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot import '%s': %w", dottedPath(segments), err)
	}

	if entry, ok := l.cache[absPath]; ok {
		return entry.module, nil
	}

	src, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot import '%s': %w", dottedPath(segments), err)
	}

	p, err := parser.New(string(src))
	if err != nil {
		return nil, fmt.Errorf("cannot import '%s': %w", dottedPath(segments), err)
	}
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, fmt.Errorf("cannot import '%s': %w", dottedPath(segments), err)
	}

	moduleEnv := l.runner.GlobalEnv().NewChild()
	if _, err := l.runner.EvalProgram(prog, moduleEnv); err != nil {
		return nil, fmt.Errorf("cannot import '%s': %w", dottedPath(segments), err)
	}

	mod := value.NewObject()
	for _, name := range moduleEnv.OwnNames() {
		v, _ := moduleEnv.Lookup(name)
		mod.SetOwn(name, v)
	}

	l.cache[absPath] = &cacheEntry{program: prog, module: mod}
	return mod, nil
}

func dottedPath(segments []string) string {
	s := ""
	for i, seg := range segments {
		if i > 0 {
			s += "."
		}
		s += seg
	}
	return s
}
