package eval

import (
	"github.com/burningli/bxscript/ast"
	"github.com/burningli/bxscript/value"
)

// evalStatement dispatches a single statement to its concrete handler.
func (it *Interpreter) evalStatement(env value.Env, stmt ast.Statement) (value.Value, Signal, error) {
	switch n := stmt.(type) {
	case *ast.Block:
		return it.evalBlock(env, n)
	case *ast.ExpressionStmt:
		v, err := it.evalExpression(env, n.Expr)
		return v, Signal{}, err
	case *ast.VariableStmt:
		return it.evalVariableStmt(env, n)
	case *ast.IfStmt:
		return it.evalIfStmt(env, n)
	case *ast.ForStmt:
		return it.evalForStmt(env, n)
	case *ast.ForInStmt:
		return it.evalForInStmt(env, n)
	case *ast.WhileStmt:
		return it.evalForStmt(env, &ast.ForStmt{Cond: n.Cond, Body: n.Body})
	case *ast.ReturnStmt:
		return it.evalReturnStmt(env, n)
	case *ast.BreakStmt:
		return value.Null{}, Signal{Kind: SigBreak}, nil
	case *ast.ContinueStmt:
		return value.Null{}, Signal{Kind: SigContinue}, nil
	case *ast.ThrowStmt:
		v, err := it.evalExpression(env, n.Expr)
		if err != nil {
			return nil, Signal{}, err
		}
		return nil, Signal{}, &ThrownError{Value: v}
	case *ast.TryStmt:
		return it.evalTryStmt(env, n)
	case *ast.FunctionStmt:
		// Already bound by hoisting; re-evaluating here would shadow a
		// closure captured by an earlier statement, so this is a no-op.
		return value.Null{}, Signal{}, nil
	case *ast.ImportStmt:
		return value.Null{}, Signal{}, runtimeErrorf("import is only valid at the top of a program")
	default:
		return value.Null{}, Signal{}, runtimeErrorf("unhandled statement type %T", stmt)
	}
}

// evalStatementList hoists every top-level FunctionStmt, then executes
// stmts in order, stopping at the first error or non-normal signal.
func (it *Interpreter) evalStatementList(env value.Env, stmts []ast.Statement) (value.Value, Signal, error) {
	it.hoistFunctions(env, stmts)

	var result value.Value = value.Null{}
	for _, stmt := range stmts {
		v, sig, err := it.evalStatement(env, stmt)
		if err != nil {
			return nil, Signal{}, err
		}
		if !sig.isNone() {
			return v, sig, nil
		}
		result = v
	}
	return result, Signal{}, nil
}

// evalBlock implements spec.md §4.3's "Block. Creates a fresh child
// environment; executes statements; returns the first non-normal signal
// encountered or the last value."
func (it *Interpreter) evalBlock(env value.Env, n *ast.Block) (value.Value, Signal, error) {
	child := env.NewChild()
	return it.evalStatementList(child, n.Statements)
}

func (it *Interpreter) evalVariableStmt(env value.Env, n *ast.VariableStmt) (value.Value, Signal, error) {
	var v value.Value = value.Null{}
	if n.Init != nil {
		var err error
		v, err = it.evalExpression(env, n.Init)
		if err != nil {
			return nil, Signal{}, err
		}
	}
	if err := env.Declare(n.Name, v); err != nil {
		return nil, Signal{}, asThrow(err)
	}
	return v, Signal{}, nil
}

func (it *Interpreter) evalIfStmt(env value.Env, n *ast.IfStmt) (value.Value, Signal, error) {
	cond, err := it.evalExpression(env, n.Cond)
	if err != nil {
		return nil, Signal{}, err
	}
	if cond.Truthy() {
		return it.evalBlock(env, n.Then)
	}
	if n.Else != nil {
		return it.evalStatement(env, n.Else)
	}
	return value.Null{}, Signal{}, nil
}

// evalForStmt implements spec.md §4.3's For/While semantics: Init is
// executed once in a scope shared across iterations; each iteration's
// Body runs in its own fresh child scope of that loop scope so that `let`
// inside the body does not collide across iterations.
func (it *Interpreter) evalForStmt(env value.Env, n *ast.ForStmt) (value.Value, Signal, error) {
	loopEnv := env.NewChild()
	if n.Init != nil {
		if _, _, err := it.evalStatement(loopEnv, n.Init); err != nil {
			return nil, Signal{}, err
		}
	}

	var result value.Value = value.Null{}
	for {
		if n.Cond != nil {
			cond, err := it.evalExpression(loopEnv, n.Cond)
			if err != nil {
				return nil, Signal{}, err
			}
			if !cond.Truthy() {
				break
			}
		}

		bodyEnv := loopEnv.NewChild()
		v, sig, err := it.evalStatementList(bodyEnv, n.Body.Statements)
		if err != nil {
			return nil, Signal{}, err
		}
		switch sig.Kind {
		case SigBreak:
			return result, Signal{}, nil
		case SigReturn:
			return v, sig, nil
		case SigContinue:
			// fall through to Update
		default:
			result = v
		}

		if n.Update != nil {
			if _, err := it.evalExpression(loopEnv, n.Update); err != nil {
				return nil, Signal{}, err
			}
		}
	}
	return result, Signal{}, nil
}

// evalForInStmt implements spec.md §4.3's ForIn: enumerate an Object's own
// keys as Strings, or an Array's indices as Numbers, in insertion order.
func (it *Interpreter) evalForInStmt(env value.Env, n *ast.ForInStmt) (value.Value, Signal, error) {
	iterable, err := it.evalExpression(env, n.Iterable)
	if err != nil {
		return nil, Signal{}, err
	}

	var items []value.Value
	switch coll := iterable.(type) {
	case *value.Object:
		for _, k := range coll.OwnKeys() {
			items = append(items, value.String(k))
		}
	case *value.Array:
		for i := range coll.Elements {
			items = append(items, value.Number(i))
		}
	default:
		return nil, Signal{}, runtimeErrorf("for-in requires an Object or Array, got %s", iterable.Kind())
	}

	loopEnv := env.NewChild()
	if err := loopEnv.Declare(n.Name, value.Null{}); err != nil {
		return nil, Signal{}, asThrow(err)
	}
	var result value.Value = value.Null{}
	for _, item := range items {
		if err := loopEnv.Assign(n.Name, item); err != nil {
			return nil, Signal{}, asThrow(err)
		}

		bodyEnv := loopEnv.NewChild()
		v, sig, err := it.evalStatementList(bodyEnv, n.Body.Statements)
		if err != nil {
			return nil, Signal{}, err
		}
		switch sig.Kind {
		case SigBreak:
			return result, Signal{}, nil
		case SigReturn:
			return v, sig, nil
		case SigContinue:
		default:
			result = v
		}
	}
	return result, Signal{}, nil
}

func (it *Interpreter) evalReturnStmt(env value.Env, n *ast.ReturnStmt) (value.Value, Signal, error) {
	if n.Expr == nil {
		return value.Null{}, Signal{Kind: SigReturn, Value: value.Null{}}, nil
	}
	v, err := it.evalExpression(env, n.Expr)
	if err != nil {
		return nil, Signal{}, err
	}
	return value.Null{}, Signal{Kind: SigReturn, Value: v}, nil
}

// evalTryStmt implements spec.md §4.3's Throw/Try: finally always runs,
// and if finally itself raises or produces a control-flow signal, that
// supersedes whatever the try/catch phase produced.
func (it *Interpreter) evalTryStmt(env value.Env, n *ast.TryStmt) (value.Value, Signal, error) {
	val, sig, err := it.evalBlock(env, n.Body)
	if err != nil {
		te := asThrow(err)
		catchEnv := env.NewChild()
		if declErr := catchEnv.Declare(n.CatchParam, te.Value); declErr != nil {
			return nil, Signal{}, asThrow(declErr)
		}
		val, sig, err = it.evalStatementList(catchEnv, n.Catch.Statements)
	}

	if n.Finally != nil {
		fVal, fSig, fErr := it.evalBlock(env, n.Finally)
		if fErr != nil {
			return nil, Signal{}, fErr
		}
		if !fSig.isNone() {
			return fVal, fSig, nil
		}
	}

	return val, sig, err
}
