/*
Package stdlib implements spec.md §4.8's host function bridge: every
function here is a *value.NativeFunction that validates its argument
kinds before touching them and returns a *value.RuntimeError (never a Go
panic) on mismatch, so a bad call from script surfaces as a catchable
BxScript exception rather than crashing the interpreter.

Each domain module (math, json, http, fs, date, regex, os, crypto,
thread) installs its functions onto a private global identifier (e.g.
`__native_math`) rather than directly onto `std.math`; the matching
lib/<module>.bx script (loaded through modloader on `import std.<module>
as x`) re-exports the pieces script code is meant to see. This mirrors
the teacher's own split between std/builtins.go's registration table and
the bound names script code actually calls, adapted to BxScript having
no native package/import keyword of its own — only the Environment.

Grounded on std/builtins.go's Builtin{Name, Callback} table and the
per-module std/*.go registration functions (teacher), generalized from
the teacher's Go-native call signature to value.NativeFunction's
func([]Value) (Value, error).
*/
package stdlib

import (
	"github.com/burningli/bxscript/value"
)

func argErr(fn, want string) error {
	return &value.RuntimeError{Message: fn + " expects " + want}
}

func wantString(args []value.Value, i int, fn, want string) (string, error) {
	if i >= len(args) {
		return "", argErr(fn, want)
	}
	s, ok := args[i].(value.String)
	if !ok {
		return "", argErr(fn, want)
	}
	return string(s), nil
}

func wantNumber(args []value.Value, i int, fn, want string) (float64, error) {
	if i >= len(args) {
		return 0, argErr(fn, want)
	}
	n, ok := args[i].(value.Number)
	if !ok {
		return 0, argErr(fn, want)
	}
	return float64(n), nil
}

func optNumber(args []value.Value, i int, def float64) float64 {
	if i >= len(args) {
		return def
	}
	n, ok := args[i].(value.Number)
	if !ok {
		return def
	}
	return float64(n)
}

func native(name string, arity int, fn func(args []value.Value) (value.Value, error)) *value.NativeFunction {
	return &value.NativeFunction{Name: name, Arity: arity, Fn: fn}
}

// nativeNamespace declares name in env as a fresh Object whose own
// properties are fns, for a module's Install function to call once.
func nativeNamespace(env value.Env, name string, fns map[string]*value.NativeFunction) {
	ns := value.NewObject()
	for k, fn := range fns {
		ns.SetOwn(k, fn)
	}
	_ = env.Declare(name, ns)
}
