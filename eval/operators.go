package eval

import (
	"math"

	"github.com/burningli/bxscript/ast"
	"github.com/burningli/bxscript/value"
)

// applyBinaryOp implements every binary operator except And/Or, which
// short-circuit and so are evaluated directly in evalBinaryExpr. It is
// also reused by compound assignment (`+=` and friends).
func applyBinaryOp(op ast.BinaryOp, left, right value.Value) (value.Value, error) {
	switch op {
	case ast.OpAdd:
		if _, ok := left.(value.String); ok {
			return value.String(left.Display() + right.Display()), nil
		}
		if _, ok := right.(value.String); ok {
			return value.String(left.Display() + right.Display()), nil
		}
		l, r, err := bothNumbers(left, right, "+")
		if err != nil {
			return nil, err
		}
		return l + r, nil
	case ast.OpSub:
		l, r, err := bothNumbers(left, right, "-")
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case ast.OpMul:
		l, r, err := bothNumbers(left, right, "*")
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case ast.OpDiv:
		l, r, err := bothNumbers(left, right, "/")
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, runtimeErrorf("division by zero")
		}
		return l / r, nil
	case ast.OpMod:
		l, r, err := bothNumbers(left, right, "%")
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, runtimeErrorf("division by zero")
		}
		return value.Number(math.Mod(float64(l), float64(r))), nil
	case ast.OpEq:
		eq, err := value.Equal(left, right)
		if err != nil {
			return nil, asThrow(err)
		}
		return value.Bool(eq), nil
	case ast.OpNotEq:
		eq, err := value.Equal(left, right)
		if err != nil {
			return nil, asThrow(err)
		}
		return value.Bool(!eq), nil
	case ast.OpLess:
		l, r, err := bothNumbers(left, right, "<")
		if err != nil {
			return nil, err
		}
		return value.Bool(l < r), nil
	case ast.OpLessEq:
		l, r, err := bothNumbers(left, right, "<=")
		if err != nil {
			return nil, err
		}
		return value.Bool(l <= r), nil
	case ast.OpGreater:
		l, r, err := bothNumbers(left, right, ">")
		if err != nil {
			return nil, err
		}
		return value.Bool(l > r), nil
	case ast.OpGreaterEq:
		l, r, err := bothNumbers(left, right, ">=")
		if err != nil {
			return nil, err
		}
		return value.Bool(l >= r), nil
	default:
		return nil, runtimeErrorf("unhandled binary operator")
	}
}

func bothNumbers(left, right value.Value, op string) (value.Number, value.Number, error) {
	l, ok := left.(value.Number)
	if !ok {
		return 0, 0, runtimeErrorf("operator %s requires a number, got %s", op, left.Kind())
	}
	r, ok := right.(value.Number)
	if !ok {
		return 0, 0, runtimeErrorf("operator %s requires a number, got %s", op, right.Kind())
	}
	return l, r, nil
}

// getLValue reads the current value of an assignment/increment target
// without writing to it; shared by compound assignment and ++/--.
func (it *Interpreter) getLValue(env value.Env, target ast.Expression) (value.Value, error) {
	switch t := target.(type) {
	case *ast.Identifier:
		v, ok := env.Lookup(t.Name)
		if !ok {
			return nil, runtimeErrorf("variable undefined: '%s'", t.Name)
		}
		return v, nil
	case *ast.DotExpr:
		obj, err := it.evalExpression(env, t.Object)
		if err != nil {
			return nil, err
		}
		v, err := value.Get(obj, t.Property)
		if err != nil {
			return nil, asThrow(err)
		}
		return v, nil
	case *ast.BracketExpr:
		obj, err := it.evalExpression(env, t.Object)
		if err != nil {
			return nil, err
		}
		key, err := it.evalExpression(env, t.Key)
		if err != nil {
			return nil, err
		}
		v, err := value.Get(obj, key.Display())
		if err != nil {
			return nil, asThrow(err)
		}
		return v, nil
	default:
		return nil, runtimeErrorf("invalid assignment target")
	}
}

// setLValue writes v to an assignment/increment target; see getLValue.
func (it *Interpreter) setLValue(env value.Env, target ast.Expression, v value.Value) error {
	switch t := target.(type) {
	case *ast.Identifier:
		if err := env.Assign(t.Name, v); err != nil {
			return asThrow(err)
		}
		return nil
	case *ast.DotExpr:
		obj, err := it.evalExpression(env, t.Object)
		if err != nil {
			return err
		}
		if err := value.Set(obj, t.Property, v); err != nil {
			return asThrow(err)
		}
		return nil
	case *ast.BracketExpr:
		obj, err := it.evalExpression(env, t.Object)
		if err != nil {
			return err
		}
		key, err := it.evalExpression(env, t.Key)
		if err != nil {
			return err
		}
		if err := value.Set(obj, key.Display(), v); err != nil {
			return asThrow(err)
		}
		return nil
	default:
		return runtimeErrorf("invalid assignment target")
	}
}

func compoundOpFor(op ast.AssignOp) ast.BinaryOp {
	switch op {
	case ast.AssignAdd:
		return ast.OpAdd
	case ast.AssignSub:
		return ast.OpSub
	case ast.AssignMul:
		return ast.OpMul
	case ast.AssignDiv:
		return ast.OpDiv
	case ast.AssignMod:
		return ast.OpMod
	default:
		return ast.OpAdd
	}
}
