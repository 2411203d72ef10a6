package eval

import (
	"strings"

	"github.com/burningli/bxscript/value"
)

// installBuiltinBinders implements spec.md §4.4: the standard-library
// binders String, Number, Array, Object, Boolean, Function are each a
// global Object with a `prototype` property pointing at their kind's
// Prototype, plus a handful of static methods. Script code extends a
// kind's behavior by writing to e.g. `String.prototype.foo = ...`.
func (it *Interpreter) installBuiltinBinders() {
	bindNamespace(it, "String", value.StringPrototype, map[string]*value.NativeFunction{
		"fromCharCode": nativeStringFromCharCode(),
	})
	bindNamespace(it, "Number", value.NumberPrototype, nil)
	bindNamespace(it, "Boolean", value.BoolPrototype, nil)
	bindNamespace(it, "Function", value.FunctionPrototype, nil)
	bindNamespace(it, "Array", value.ArrayPrototype, map[string]*value.NativeFunction{
		"isArray": nativeArrayIsArray(),
	})
	bindNamespace(it, "Object", value.ObjectPrototype, map[string]*value.NativeFunction{
		"keys":   nativeObjectKeys(),
		"remove": nativeObjectRemove(),
	})
}

func bindNamespace(it *Interpreter, name string, proto *value.Object, statics map[string]*value.NativeFunction) {
	ns := value.NewObject()
	ns.SetOwn("prototype", proto)
	for k, fn := range statics {
		ns.SetOwn(k, fn)
	}
	_ = it.Global.Declare(name, ns)
}

func nativeStringFromCharCode() *value.NativeFunction {
	return &value.NativeFunction{Name: "fromCharCode", Arity: -1, Fn: func(args []value.Value) (value.Value, error) {
		var sb strings.Builder
		for _, a := range args {
			n, ok := a.(value.Number)
			if !ok {
				return nil, &value.RuntimeError{Message: "fromCharCode expects numeric code points"}
			}
			sb.WriteRune(rune(int(n)))
		}
		return value.String(sb.String()), nil
	}}
}

func nativeArrayIsArray() *value.NativeFunction {
	return &value.NativeFunction{Name: "isArray", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		if len(args) < 1 {
			return value.Bool(false), nil
		}
		_, ok := args[0].(*value.Array)
		return value.Bool(ok), nil
	}}
}

func nativeObjectKeys() *value.NativeFunction {
	return &value.NativeFunction{Name: "keys", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		if len(args) < 1 {
			return nil, &value.RuntimeError{Message: "keys expects an object argument"}
		}
		o, ok := args[0].(*value.Object)
		if !ok {
			return nil, &value.RuntimeError{Message: "keys expects an object argument"}
		}
		keys := o.OwnKeys()
		elems := make([]value.Value, len(keys))
		for i, k := range keys {
			elems[i] = value.String(k)
		}
		return value.NewArray(elems...), nil
	}}
}

func nativeObjectRemove() *value.NativeFunction {
	return &value.NativeFunction{Name: "remove", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, &value.RuntimeError{Message: "remove expects (object, key)"}
		}
		o, ok := args[0].(*value.Object)
		if !ok {
			return nil, &value.RuntimeError{Message: "remove expects an object argument"}
		}
		key, ok := args[1].(value.String)
		if !ok {
			return nil, &value.RuntimeError{Message: "remove key must be a string"}
		}
		return value.Bool(o.DeleteOwn(string(key))), nil
	}}
}
