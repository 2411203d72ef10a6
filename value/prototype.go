package value

// Global per-kind prototypes, per spec.md §4.4. Script code mutates these
// by assigning into e.g. `String.prototype`, so they are plain *Object
// values rather than immutable snapshots.
var (
	StringPrototype   = NewObject()
	NumberPrototype   = NewObject()
	BoolPrototype     = NewObject()
	ArrayPrototype    = NewObject()
	ObjectPrototype   = NewObject()
	FunctionPrototype = NewObject()
)

func prototypeFor(v Value) *Object {
	switch v.(type) {
	case String:
		return StringPrototype
	case Number:
		return NumberPrototype
	case Bool:
		return BoolPrototype
	case *Array:
		return ArrayPrototype
	case *Object:
		return ObjectPrototype
	case *Function, *NativeFunction:
		return FunctionPrototype
	default:
		return nil
	}
}

// bindMethod implements spec.md §4.4's rebinding rule: a Function value
// fetched off a prototype is rewrapped with a fresh closure environment
// that additionally binds `this` to receiver, so the method body can read
// `this`. NativeFunction values are returned unchanged.
func bindMethod(v Value, receiver Value) Value {
	fn, ok := v.(*Function)
	if !ok {
		return v
	}
	child := fn.Closure.NewChild()
	_ = child.Declare("this", receiver)
	return &Function{Literal: fn.Literal, Closure: child}
}
