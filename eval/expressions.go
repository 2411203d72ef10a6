package eval

import (
	"github.com/burningli/bxscript/ast"
	"github.com/burningli/bxscript/value"
)

// evalExpression dispatches a single expression to its concrete handler.
func (it *Interpreter) evalExpression(env value.Env, expr ast.Expression) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.NullLiteral:
		return value.Null{}, nil
	case *ast.BoolLiteral:
		return value.Bool(n.Value), nil
	case *ast.NumberLiteral:
		return value.Number(n.Value), nil
	case *ast.StringLiteral:
		return value.String(n.Value), nil
	case *ast.Identifier:
		v, ok := env.Lookup(n.Name)
		if !ok {
			return nil, runtimeErrorf("variable undefined: '%s'", n.Name)
		}
		return v, nil
	case *ast.ThisExpr:
		v, ok := env.Lookup("this")
		if !ok {
			return value.Null{}, nil
		}
		return v, nil
	case *ast.ArrayLiteral:
		return it.evalArrayLiteral(env, n)
	case *ast.ObjectLiteral:
		return it.evalObjectLiteral(env, n)
	case *ast.FunctionLiteral:
		return &value.Function{Literal: n, Closure: env}, nil
	case *ast.UnaryExpr:
		return it.evalUnaryExpr(env, n)
	case *ast.BinaryExpr:
		return it.evalBinaryExpr(env, n)
	case *ast.AssignExpr:
		return it.evalAssignExpr(env, n)
	case *ast.DotExpr:
		obj, err := it.evalExpression(env, n.Object)
		if err != nil {
			return nil, err
		}
		v, err := value.Get(obj, n.Property)
		if err != nil {
			return nil, asThrow(err)
		}
		return v, nil
	case *ast.BracketExpr:
		obj, err := it.evalExpression(env, n.Object)
		if err != nil {
			return nil, err
		}
		key, err := it.evalExpression(env, n.Key)
		if err != nil {
			return nil, err
		}
		v, err := value.Get(obj, key.Display())
		if err != nil {
			return nil, asThrow(err)
		}
		return v, nil
	case *ast.CallExpr:
		return it.evalCallExpr(env, n)
	case *ast.SequenceExpr:
		var last value.Value = value.Null{}
		for _, el := range n.Elements {
			v, err := it.evalExpression(env, el)
			if err != nil {
				return nil, err
			}
			last = v
		}
		return last, nil
	case *ast.TernaryExpr:
		cond, err := it.evalExpression(env, n.Cond)
		if err != nil {
			return nil, err
		}
		if cond.Truthy() {
			return it.evalExpression(env, n.Then)
		}
		return it.evalExpression(env, n.Else)
	case *ast.DeleteExpr:
		return it.evalDeleteExpr(env, n)
	default:
		return nil, runtimeErrorf("unhandled expression type %T", expr)
	}
}

func (it *Interpreter) evalArrayLiteral(env value.Env, n *ast.ArrayLiteral) (value.Value, error) {
	elements := make([]value.Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := it.evalExpression(env, el)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}
	return value.NewArray(elements...), nil
}

func (it *Interpreter) evalObjectLiteral(env value.Env, n *ast.ObjectLiteral) (value.Value, error) {
	obj := value.NewObject()
	for _, prop := range n.Properties {
		key, err := it.objectPropertyKey(env, prop)
		if err != nil {
			return nil, err
		}
		v, err := it.evalExpression(env, prop.Value)
		if err != nil {
			return nil, err
		}
		obj.SetOwn(key, v)
	}
	return obj, nil
}

func (it *Interpreter) objectPropertyKey(env value.Env, prop ast.ObjectProperty) (string, error) {
	if prop.Computed {
		v, err := it.evalExpression(env, prop.Key)
		if err != nil {
			return "", err
		}
		return v.Display(), nil
	}
	switch k := prop.Key.(type) {
	case *ast.Identifier:
		return k.Name, nil
	case *ast.StringLiteral:
		return k.Value, nil
	default:
		return "", runtimeErrorf("invalid object literal key")
	}
}

// evalBinaryExpr handles And/Or's short-circuit evaluation directly;
// every other operator defers to applyBinaryOp once both operands are
// evaluated.
func (it *Interpreter) evalBinaryExpr(env value.Env, n *ast.BinaryExpr) (value.Value, error) {
	left, err := it.evalExpression(env, n.Left)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case ast.OpAnd:
		if !left.Truthy() {
			return left, nil
		}
		return it.evalExpression(env, n.Right)
	case ast.OpOr:
		if left.Truthy() {
			return left, nil
		}
		return it.evalExpression(env, n.Right)
	}
	right, err := it.evalExpression(env, n.Right)
	if err != nil {
		return nil, err
	}
	v, err := applyBinaryOp(n.Op, left, right)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (it *Interpreter) evalAssignExpr(env value.Env, n *ast.AssignExpr) (value.Value, error) {
	rhs, err := it.evalExpression(env, n.Value)
	if err != nil {
		return nil, err
	}
	if n.Op == ast.AssignPlain {
		if err := it.setLValue(env, n.Target, rhs); err != nil {
			return nil, err
		}
		return rhs, nil
	}

	old, err := it.getLValue(env, n.Target)
	if err != nil {
		return nil, err
	}
	newVal, err := applyBinaryOp(compoundOpFor(n.Op), old, rhs)
	if err != nil {
		return nil, err
	}
	if err := it.setLValue(env, n.Target, newVal); err != nil {
		return nil, err
	}
	return newVal, nil
}

func (it *Interpreter) evalUnaryExpr(env value.Env, n *ast.UnaryExpr) (value.Value, error) {
	switch n.Op {
	case ast.UnaryMinus:
		v, err := it.evalExpression(env, n.Operand)
		if err != nil {
			return nil, err
		}
		num, ok := v.(value.Number)
		if !ok {
			return nil, runtimeErrorf("unary - requires a number, got %s", v.Kind())
		}
		return -num, nil
	case ast.UnaryPlus:
		v, err := it.evalExpression(env, n.Operand)
		if err != nil {
			return nil, err
		}
		num, ok := v.(value.Number)
		if !ok {
			return nil, runtimeErrorf("unary + requires a number, got %s", v.Kind())
		}
		return num, nil
	case ast.UnaryNot:
		v, err := it.evalExpression(env, n.Operand)
		if err != nil {
			return nil, err
		}
		return value.Bool(!v.Truthy()), nil
	case ast.UnaryPreIncrement, ast.UnaryPreDecrement, ast.UnaryPostIncrement, ast.UnaryPostDecrement:
		old, err := it.getLValue(env, n.Operand)
		if err != nil {
			return nil, err
		}
		oldNum, ok := old.(value.Number)
		if !ok {
			return nil, runtimeErrorf("++/-- requires a number operand, got %s", old.Kind())
		}
		delta := value.Number(1)
		if n.Op == ast.UnaryPreDecrement || n.Op == ast.UnaryPostDecrement {
			delta = -1
		}
		newVal := oldNum + delta
		if err := it.setLValue(env, n.Operand, newVal); err != nil {
			return nil, err
		}
		if n.Op == ast.UnaryPreIncrement || n.Op == ast.UnaryPreDecrement {
			return newVal, nil
		}
		return oldNum, nil
	default:
		return nil, runtimeErrorf("unhandled unary operator")
	}
}

// evalDeleteExpr removes an own property from an Object or Array target,
// per spec.md §4.2's DeleteExpr (Dot or Bracket target only).
func (it *Interpreter) evalDeleteExpr(env value.Env, n *ast.DeleteExpr) (value.Value, error) {
	var objExpr ast.Expression
	var keyExpr ast.Expression
	var literalKey string
	hasLiteralKey := false

	switch t := n.Target.(type) {
	case *ast.DotExpr:
		objExpr = t.Object
		literalKey = t.Property
		hasLiteralKey = true
	case *ast.BracketExpr:
		objExpr = t.Object
		keyExpr = t.Key
	default:
		return nil, runtimeErrorf("invalid delete target")
	}

	obj, err := it.evalExpression(env, objExpr)
	if err != nil {
		return nil, err
	}
	key := literalKey
	if !hasLiteralKey {
		keyVal, err := it.evalExpression(env, keyExpr)
		if err != nil {
			return nil, err
		}
		key = keyVal.Display()
	}

	switch o := obj.(type) {
	case *value.Object:
		return value.Bool(o.DeleteOwn(key)), nil
	case *value.Array:
		idx, ok := arrayIndex(key)
		if !ok || idx >= len(o.Elements) {
			return value.Bool(false), nil
		}
		o.Elements = append(o.Elements[:idx], o.Elements[idx+1:]...)
		return value.Bool(true), nil
	default:
		return nil, runtimeErrorf("cannot delete a property of a %s value", obj.Kind())
	}
}

func arrayIndex(key string) (int, bool) {
	n := 0
	if key == "" {
		return 0, false
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
