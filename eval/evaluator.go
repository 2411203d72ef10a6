/*
Package eval implements the tree-walking evaluator for BxScript: statement
and expression dispatch over the ast package's node types, Return/Break/
Continue signal propagation (see Signal), try/throw/catch/finally,
prototype-aware member access delegated to the value package, and the
function-call convention of spec.md §4.3.

Grounded on the teacher's eval package (evaluator.go plus its per-concern
eval_*.go split), generalized from go-mix's struct/interpreter-typed value
model to BxScript's prototype-based one and from its Go-panic-free
ReturnValue unwrapping to the Signal struct threaded through every
statement-eval function's return.
*/
package eval

import (
	"github.com/burningli/bxscript/ast"
	"github.com/burningli/bxscript/environment"
	"github.com/burningli/bxscript/value"
)

// Loader resolves an `import a.b.c as X;` to the module's exported Object,
// per spec.md §4.7. The modloader package provides the concrete
// implementation; Interpreter depends only on this narrow interface so
// eval never imports modloader (which itself must import eval to execute
// a module's Program).
type Loader interface {
	Load(path []string) (value.Value, error)
}

// Interpreter holds the state shared across one program's evaluation: the
// root environment and the module loader used to resolve imports.
type Interpreter struct {
	Global *environment.Environment
	Loader Loader
}

// New creates an Interpreter with a fresh global environment and the
// built-in String/Number/Array/Object/Boolean/Function binder namespaces
// installed (spec.md §4.4).
func New() *Interpreter {
	it := &Interpreter{Global: environment.New()}
	it.installBuiltinBinders()
	return it
}

// GlobalEnv returns the root environment, satisfying modloader.Runner so
// a Loader can run each module in a fresh child of it rather than a
// disconnected environment that couldn't see the builtin binder
// namespaces or any stdlib bridge bindings.
func (it *Interpreter) GlobalEnv() value.Env { return it.Global }

// EvalProgram implements spec.md §4.3's "Program evaluation": resolve
// imports, hoist every top-level function declaration, then execute the
// body in order. The result is the value of the last executed top-level
// expression statement, or Null.
func (it *Interpreter) EvalProgram(prog *ast.Program, env value.Env) (value.Value, error) {
	for _, imp := range prog.Imports {
		if it.Loader == nil {
			return nil, runtimeErrorf("cannot import '%s': no module loader configured", importPath(imp))
		}
		mod, err := it.Loader.Load(imp.Path)
		if err != nil {
			return nil, err
		}
		if err := env.Declare(imp.Alias, mod); err != nil {
			return nil, asThrow(err)
		}
	}

	it.hoistFunctions(env, prog.Body)

	var result value.Value = value.Null{}
	for _, stmt := range prog.Body {
		val, sig, err := it.evalStatement(env, stmt)
		if err != nil {
			return nil, err
		}
		if !sig.isNone() {
			// A bare return/break/continue at top level has nowhere to
			// propagate to; treat its value as the program's result.
			if sig.Kind == SigReturn {
				return sig.Value, nil
			}
			return value.Null{}, nil
		}
		if _, ok := stmt.(*ast.ExpressionStmt); ok {
			result = val
		}
	}
	return result, nil
}

func importPath(imp *ast.Import) string {
	s := ""
	for i, seg := range imp.Path {
		if i > 0 {
			s += "."
		}
		s += seg
	}
	return s
}

// hoistFunctions implements "before any other statement in a program or
// module is executed, all function statements in that program are bound
// in the enclosing environment" (spec.md §4.2). It only walks the
// top-level statement list, matching the teacher's RegisterFunction pass.
func (it *Interpreter) hoistFunctions(env value.Env, body []ast.Statement) {
	for _, stmt := range body {
		fnStmt, ok := stmt.(*ast.FunctionStmt)
		if !ok {
			continue
		}
		fn := &value.Function{Literal: fnStmt.Fn, Closure: env}
		_ = env.Declare(fnStmt.Fn.Name, fn)
	}
}
