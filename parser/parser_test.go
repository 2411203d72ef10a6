package parser

import (
	"testing"

	"github.com/burningli/bxscript/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := New(src)
	require.NoError(t, err)
	prog, err := p.ParseProgram()
	require.NoError(t, err)
	return prog
}

func TestParser_VariableDeclaration(t *testing.T) {
	prog := parseProgram(t, `let x = 1 + 2;`)
	require.Len(t, prog.Body, 1)
	vs, ok := prog.Body[0].(*ast.VariableStmt)
	require.True(t, ok)
	assert.Equal(t, "x", vs.Name)
	bin, ok := vs.Init.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
}

func TestParser_MultiBindingLetDesugarsToBlock(t *testing.T) {
	prog := parseProgram(t, `let a = 1, b = 2;`)
	require.Len(t, prog.Body, 1)
	blk, ok := prog.Body[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, blk.Statements, 2)
}

func TestParser_OperatorPrecedence(t *testing.T) {
	prog := parseProgram(t, `let r = 2 + 3 * 4;`)
	vs := prog.Body[0].(*ast.VariableStmt)
	top, ok := vs.Init.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, top.Op)
	assert.IsType(t, &ast.NumberLiteral{}, top.Left)
	mul, ok := top.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, mul.Op)
}

func TestParser_TernaryIsRightAssociative(t *testing.T) {
	prog := parseProgram(t, `let r = a ? b : c ? d : e;`)
	vs := prog.Body[0].(*ast.VariableStmt)
	top, ok := vs.Init.(*ast.TernaryExpr)
	require.True(t, ok)
	assert.IsType(t, &ast.Identifier{}, top.Cond)
	_, ok = top.Else.(*ast.TernaryExpr)
	assert.True(t, ok)
}

func TestParser_AssignmentIsRightAssociative(t *testing.T) {
	prog := parseProgram(t, `a = b = 5;`)
	es := prog.Body[0].(*ast.ExpressionStmt)
	outer, ok := es.Expr.(*ast.AssignExpr)
	require.True(t, ok)
	_, ok = outer.Value.(*ast.AssignExpr)
	assert.True(t, ok)
}

func TestParser_CompoundAssignment(t *testing.T) {
	prog := parseProgram(t, `a += 1;`)
	es := prog.Body[0].(*ast.ExpressionStmt)
	assign := es.Expr.(*ast.AssignExpr)
	assert.Equal(t, ast.AssignAdd, assign.Op)
}

func TestParser_IfElseIfChain(t *testing.T) {
	prog := parseProgram(t, `
		if (a) { b; } else if (c) { d; } else { e; }
	`)
	top := prog.Body[0].(*ast.IfStmt)
	elseIf, ok := top.Else.(*ast.IfStmt)
	require.True(t, ok)
	_, ok = elseIf.Else.(*ast.Block)
	assert.True(t, ok)
}

func TestParser_ForLoop(t *testing.T) {
	prog := parseProgram(t, `
		for (let i = 0; i < 10; i = i + 1) { sum = sum + i; }
	`)
	forStmt := prog.Body[0].(*ast.ForStmt)
	require.NotNil(t, forStmt.Init)
	require.NotNil(t, forStmt.Cond)
	require.NotNil(t, forStmt.Update)
	assert.IsType(t, &ast.VariableStmt{}, forStmt.Init)
}

func TestParser_ForIn(t *testing.T) {
	prog := parseProgram(t, `
		for (let k in obj) { x = k; }
	`)
	forIn := prog.Body[0].(*ast.ForInStmt)
	assert.Equal(t, "k", forIn.Name)
	assert.IsType(t, &ast.Identifier{}, forIn.Iterable)
}

func TestParser_WhileDesugarsToForStmt(t *testing.T) {
	prog := parseProgram(t, `while (true) { x = x + 1; }`)
	forStmt, ok := prog.Body[0].(*ast.ForStmt)
	require.True(t, ok)
	assert.Nil(t, forStmt.Init)
	assert.Nil(t, forStmt.Update)
	assert.IsType(t, &ast.BoolLiteral{}, forStmt.Cond)
}

func TestParser_TryCatchFinally(t *testing.T) {
	prog := parseProgram(t, `
		try { throw 1; } catch (e) { x = e; } finally { y = 1; }
	`)
	tryStmt := prog.Body[0].(*ast.TryStmt)
	assert.Equal(t, "e", tryStmt.CatchParam)
	require.NotNil(t, tryStmt.Catch)
	require.NotNil(t, tryStmt.Finally)
}

func TestParser_TryCatchWithoutFinally(t *testing.T) {
	prog := parseProgram(t, `try { x; } catch (e) { y; }`)
	tryStmt := prog.Body[0].(*ast.TryStmt)
	assert.Nil(t, tryStmt.Finally)
}

func TestParser_FunctionDeclarationAndCall(t *testing.T) {
	prog := parseProgram(t, `
		function add(a, b) { return a + b; }
		let r = add(1, 2);
	`)
	require.Len(t, prog.Body, 2)
	fnStmt := prog.Body[0].(*ast.FunctionStmt)
	assert.Equal(t, "add", fnStmt.Fn.Name)
	assert.Equal(t, []string{"a", "b"}, fnStmt.Fn.Params)

	vs := prog.Body[1].(*ast.VariableStmt)
	call := vs.Init.(*ast.CallExpr)
	assert.Len(t, call.Args, 2)
}

func TestParser_AnonymousFunctionExpression(t *testing.T) {
	prog := parseProgram(t, `let f = function(x) { return x; };`)
	vs := prog.Body[0].(*ast.VariableStmt)
	fn := vs.Init.(*ast.FunctionLiteral)
	assert.Equal(t, "", fn.Name)
	assert.Equal(t, []string{"x"}, fn.Params)
}

func TestParser_MemberAndCallChain(t *testing.T) {
	prog := parseProgram(t, `a.b[c].d(1, 2);`)
	es := prog.Body[0].(*ast.ExpressionStmt)
	call, ok := es.Expr.(*ast.CallExpr)
	require.True(t, ok)
	dot, ok := call.Callee.(*ast.DotExpr)
	require.True(t, ok)
	assert.Equal(t, "d", dot.Property)
	_, ok = dot.Object.(*ast.BracketExpr)
	assert.True(t, ok)
}

func TestParser_ArrayAndObjectLiterals(t *testing.T) {
	prog := parseProgram(t, `let o = { a: 1, b: [1, 2, 3] };`)
	vs := prog.Body[0].(*ast.VariableStmt)
	obj := vs.Init.(*ast.ObjectLiteral)
	require.Len(t, obj.Properties, 2)
	assert.False(t, obj.Properties[0].Computed)
	arr, ok := obj.Properties[1].Value.(*ast.ArrayLiteral)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 3)
}

func TestParser_ComputedObjectKey(t *testing.T) {
	prog := parseProgram(t, `let o = { [k]: 1 };`)
	vs := prog.Body[0].(*ast.VariableStmt)
	obj := vs.Init.(*ast.ObjectLiteral)
	require.Len(t, obj.Properties, 1)
	assert.True(t, obj.Properties[0].Computed)
}

func TestParser_PreAndPostIncrement(t *testing.T) {
	prog := parseProgram(t, `++x; y++;`)
	pre := prog.Body[0].(*ast.ExpressionStmt).Expr.(*ast.UnaryExpr)
	assert.Equal(t, ast.UnaryPreIncrement, pre.Op)
	post := prog.Body[1].(*ast.ExpressionStmt).Expr.(*ast.UnaryExpr)
	assert.Equal(t, ast.UnaryPostIncrement, post.Op)
}

func TestParser_UnaryPlusProducesUnaryExpr(t *testing.T) {
	prog := parseProgram(t, `+x;`)
	u := prog.Body[0].(*ast.ExpressionStmt).Expr.(*ast.UnaryExpr)
	assert.Equal(t, ast.UnaryPlus, u.Op)
}

func TestParser_DeleteExpression(t *testing.T) {
	prog := parseProgram(t, `delete o.k;`)
	del := prog.Body[0].(*ast.ExpressionStmt).Expr.(*ast.DeleteExpr)
	assert.IsType(t, &ast.DotExpr{}, del.Target)
}

func TestParser_ImportStatement(t *testing.T) {
	prog := parseProgram(t, `import std.math as m; let x = m.pi;`)
	require.Len(t, prog.Imports, 1)
	assert.Equal(t, []string{"std", "math"}, prog.Imports[0].Path)
	assert.Equal(t, "m", prog.Imports[0].Alias)
}

func TestParser_ReturnOutsideFunctionIsError(t *testing.T) {
	p, err := New(`return 1;`)
	require.NoError(t, err)
	_, err = p.ParseProgram()
	assert.Error(t, err)
}

func TestParser_BreakOutsideLoopIsError(t *testing.T) {
	p, err := New(`break;`)
	require.NoError(t, err)
	_, err = p.ParseProgram()
	assert.Error(t, err)
}

func TestParser_ContinueInsideNestedFunctionInsideLoopIsError(t *testing.T) {
	p, err := New(`for (;;) { function f() { continue; } }`)
	require.NoError(t, err)
	_, err = p.ParseProgram()
	assert.Error(t, err)
}

func TestParser_SequenceExpressionInForUpdate(t *testing.T) {
	prog := parseProgram(t, `for (let i = 0; i < 1; i = i + 1, j = j - 1) { x; }`)
	forStmt := prog.Body[0].(*ast.ForStmt)
	seq, ok := forStmt.Update.(*ast.SequenceExpr)
	require.True(t, ok)
	assert.Len(t, seq.Elements, 2)
}

func TestParser_TrailingDotFloatLiteral(t *testing.T) {
	prog := parseProgram(t, `let x = 1.;`)
	vs := prog.Body[0].(*ast.VariableStmt)
	num := vs.Init.(*ast.NumberLiteral)
	assert.Equal(t, float64(1), num.Value)
}

func TestParser_InvalidAssignmentTargetIsError(t *testing.T) {
	p, err := New(`1 = 2;`)
	require.NoError(t, err)
	_, err = p.ParseProgram()
	assert.Error(t, err)
}

func TestParser_UnterminatedBlockIsError(t *testing.T) {
	p, err := New(`if (a) { b;`)
	require.NoError(t, err)
	_, err = p.ParseProgram()
	assert.Error(t, err)
}
