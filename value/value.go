/*
Package value implements the BxScript runtime value model: a small closed
set of kinds (Null, Bool, Number, String, Array, Object, Function,
NativeFunction), per-kind global mutable prototypes, and the polymorphic
get/set/equal/truthy operations spec.md §4.4 describes.

Functions/Get/Set need to rebind `this` into a fresh closure environment
when a prototype method is fetched off a receiver; to do that without
this package importing the environment package (which itself needs to
store value.Value), the Env interface below captures exactly the
operations Get needs, and *environment.Environment satisfies it
structurally.
*/
package value

import (
	"fmt"

	"github.com/burningli/bxscript/ast"
)

// Kind tags a runtime value's variant.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindFunction
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	case KindNativeFunction:
		return "native function"
	default:
		return "unknown"
	}
}

// Value is satisfied by every BxScript runtime value.
type Value interface {
	Kind() Kind
	// Display is the value's coercion to a display string, used by string
	// concatenation, Array/Object toString, and the REPL's echo.
	Display() string
	// Truthy is the value's boolean coercion, per spec.md §4.3.
	Truthy() bool
}

// Env is the subset of environment.Environment's API that Get needs to
// rebind `this` when handing back a prototype method, widened with
// OwnNames so the module loader can build a module's exported Object out
// of its top-level declarations without importing the environment
// package directly.
type Env interface {
	Declare(name string, v Value) error
	Assign(name string, v Value) error
	Lookup(name string) (Value, bool)
	NewChild() Env
	OwnNames() []string
}

// Null is BxScript's `null`. There is exactly one logical null value;
// Null{} is always comparable and falsy.
type Null struct{}

func (Null) Kind() Kind      { return KindNull }
func (Null) Display() string { return "null" }
func (Null) Truthy() bool    { return false }

// Bool is BxScript's `true`/`false`.
type Bool bool

func (Bool) Kind() Kind        { return KindBool }
func (b Bool) Display() string { return fmt.Sprintf("%t", bool(b)) }
func (b Bool) Truthy() bool    { return bool(b) }

// Number is BxScript's only numeric kind, a double.
type Number float64

func (Number) Kind() Kind { return KindNumber }

// Display renders a Number with trailing zeros stripped, e.g. 3 not 3.0,
// 3.5 not 3.500000 — matching spec.md's expectation that numbers print
// the way a user typed them, not Go's default float formatting.
func (n Number) Display() string {
	return formatNumber(float64(n))
}

func (n Number) Truthy() bool { return float64(n) != 0 }

func formatNumber(f float64) string {
	if f == float64(int64(f)) && !isNegativeZero(f) {
		return fmt.Sprintf("%d", int64(f))
	}
	s := fmt.Sprintf("%g", f)
	return s
}

func isNegativeZero(f float64) bool {
	return f == 0 && 1/f < 0
}

// String is BxScript's string kind.
type String string

func (String) Kind() Kind        { return KindString }
func (s String) Display() string { return string(s) }
func (s String) Truthy() bool    { return len(s) > 0 }

// Array is BxScript's array kind: an ordered, mutable, heterogeneous list.
type Array struct {
	Elements []Value
}

func NewArray(elements ...Value) *Array {
	return &Array{Elements: elements}
}

func (*Array) Kind() Kind { return KindArray }

func (a *Array) Display() string {
	s := "["
	for i, el := range a.Elements {
		if i > 0 {
			s += ", "
		}
		s += el.Display()
	}
	return s + "]"
}

func (a *Array) Truthy() bool { return len(a.Elements) > 0 }

// Object is BxScript's object kind: an insertion-ordered, mutable,
// string-keyed property map. It also backs every kind's Prototype.
type Object struct {
	keys  []string
	props map[string]Value
}

func NewObject() *Object {
	return &Object{props: make(map[string]Value)}
}

func (*Object) Kind() Kind { return KindObject }

// Display is the literal "[object Object]" spec.md §6 mandates for
// Object.toString, regardless of the object's own properties.
func (o *Object) Display() string { return "[object Object]" }

func (o *Object) Truthy() bool { return len(o.keys) > 0 }

// OwnKeys returns the object's own property names in insertion order.
func (o *Object) OwnKeys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// GetOwn returns the value stored directly on o (not consulting any
// prototype), and whether it was present.
func (o *Object) GetOwn(key string) (Value, bool) {
	v, ok := o.props[key]
	return v, ok
}

// SetOwn sets an own property, appending to the key order on first write.
func (o *Object) SetOwn(key string, v Value) {
	if _, exists := o.props[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.props[key] = v
}

// DeleteOwn removes an own property, reporting whether it was present.
func (o *Object) DeleteOwn(key string) bool {
	if _, ok := o.props[key]; !ok {
		return false
	}
	delete(o.props, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Function is a script-defined function value: an AST literal plus the
// environment it closed over. Prototype-method rebinding (spec.md §4.4)
// produces a new Function sharing Literal but with a fresh Closure that
// additionally binds `this`.
type Function struct {
	Literal *ast.FunctionLiteral
	Closure Env
}

func (*Function) Kind() Kind { return KindFunction }

// Display is the literal "[function]" spec.md §6 mandates for
// Function.toString.
func (*Function) Display() string { return "[function]" }
func (*Function) Truthy() bool    { return true }

// NativeFunction is a host-provided callable: stdlib functions and the
// built-in per-kind methods (String#indexOf and friends) that Get synthesizes
// on the fly.
type NativeFunction struct {
	Name  string
	Arity int // advisory; -1 means variadic/any arity
	Fn    func(args []Value) (Value, error)
}

func (*NativeFunction) Kind() Kind { return KindNativeFunction }

// Display is the literal "[native code]" spec.md §6 mandates for
// NativeFunction.toString.
func (*NativeFunction) Display() string { return "[native code]" }
func (*NativeFunction) Truthy() bool    { return true }
