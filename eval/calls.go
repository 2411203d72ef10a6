package eval

import (
	"github.com/burningli/bxscript/ast"
	"github.com/burningli/bxscript/value"
)

// evalCallExpr implements spec.md §4.3's Call: arguments evaluate
// left-to-right before the callee is invoked. `this`-binding for method
// calls is already handled upstream by value.Get's prototype rebinding
// (bindMethod) when Callee is a Dot/Bracket expression resolving through a
// prototype; a plain own-property function call carries whatever `this`
// its closure environment already provides.
func (it *Interpreter) evalCallExpr(env value.Env, n *ast.CallExpr) (value.Value, error) {
	callee, err := it.evalExpression(env, n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := it.evalExpression(env, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *value.NativeFunction:
		result, err := fn.Fn(args)
		if err != nil {
			return nil, asThrow(err)
		}
		return result, nil
	case *value.Function:
		return it.CallFunction(fn, args)
	default:
		return nil, runtimeErrorf("value of kind %s is not callable", callee.Kind())
	}
}

// Call invokes any callable Value (script Function or NativeFunction)
// with a prepared argument vector, satisfying eventloop.Caller so the
// event loop can dispatch a queued callback without depending on either
// concrete callable kind itself.
func (it *Interpreter) Call(callback value.Value, args []value.Value) (value.Value, error) {
	switch fn := callback.(type) {
	case *value.NativeFunction:
		return fn.Fn(args)
	case *value.Function:
		return it.CallFunction(fn, args)
	default:
		return nil, runtimeErrorf("value of kind %s is not callable", callback.Kind())
	}
}

// CallFunction invokes a script Function value with a prepared argument
// vector: missing args bind to Null, extra args are dropped. Exported so
// stdlib NativeFunctions can call back into script functions (e.g. an
// Array#forEach-style higher-order helper or the event loop's task
// dispatch).
func (it *Interpreter) CallFunction(fn *value.Function, args []value.Value) (value.Value, error) {
	callEnv := fn.Closure.NewChild()
	for i, param := range fn.Literal.Params {
		var v value.Value = value.Null{}
		if i < len(args) {
			v = args[i]
		}
		_ = callEnv.Declare(param, v)
	}

	_, sig, err := it.evalBlock(callEnv, fn.Literal.Body)
	if err != nil {
		return nil, err
	}
	if sig.Kind == SigReturn {
		return sig.Value, nil
	}
	return value.Null{}, nil
}
