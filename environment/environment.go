/*
Package environment implements BxScript's lexical scope chain: a parent-
linked chain of variable bindings. Each lexical construct (a block, a
function call, a catch handler, a for-loop body) gets its own
Environment whose parent is the environment it was created inside of.

Declare binds a new name in the current scope only and fails if the name
is already bound there (spec.md §4.5: redeclaring a name in the same
scope is a runtime NameError, not a silent overwrite). Assign walks the
chain to find where a name was declared and updates it there, so closures
that mutate a captured variable affect the one binding everyone shares.
Lookup walks the same chain read-only.

Environment implements value.Env structurally, so the value package's
Get (prototype-method rebinding) can build a child scope and declare
`this` into it without importing this package.
*/
package environment

import (
	"fmt"

	"github.com/burningli/bxscript/value"
)

// NameError is returned by Declare on redeclaration and by Assign/Lookup
// on reference to an undeclared name.
type NameError struct {
	Message string
}

func (e *NameError) Error() string { return e.Message }

// Environment is one link in the lexical scope chain. A nil Parent marks
// the global (root) environment.
type Environment struct {
	vars   map[string]value.Value
	Parent *Environment
}

// New creates a root environment with no parent.
func New() *Environment {
	return &Environment{vars: make(map[string]value.Value)}
}

// NewChild creates a nested environment whose parent is e. It returns
// value.Env (rather than *Environment) to satisfy that package's narrow
// interface without value needing to import this package.
func (e *Environment) NewChild() value.Env {
	return &Environment{vars: make(map[string]value.Value), Parent: e}
}

// Declare binds name to v in this scope only. Redeclaring a name already
// bound in this exact scope is an error; shadowing a name bound in a
// parent scope is allowed and expected (that's how block scoping works).
func (e *Environment) Declare(name string, v value.Value) error {
	if _, exists := e.vars[name]; exists {
		return &NameError{Message: fmt.Sprintf("variable '%s' redefined in this scope", name)}
	}
	e.vars[name] = v
	return nil
}

// Assign updates name in the scope where it was declared, walking up the
// parent chain to find it. It errors if name was never declared anywhere
// in the chain.
func (e *Environment) Assign(name string, v value.Value) error {
	for env := e; env != nil; env = env.Parent {
		if _, exists := env.vars[name]; exists {
			env.vars[name] = v
			return nil
		}
	}
	return &NameError{Message: fmt.Sprintf("assignment to undeclared variable '%s'", name)}
}

// Lookup reads name, walking up the parent chain, and reports whether it
// was found anywhere in the chain.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.Parent {
		if v, exists := env.vars[name]; exists {
			return v, true
		}
	}
	return nil, false
}

// OwnNames returns the names declared directly in e, not consulting
// Parent. The module loader uses this to build a module's exported
// Object out of its top-level declarations (spec.md §4.7).
func (e *Environment) OwnNames() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	return names
}
