package parser

import (
	"github.com/burningli/bxscript/ast"
	"github.com/burningli/bxscript/token"
)

// parseExpression parses a full top-level expression, including the comma
// sequence operator (spec.md §4.2 level 14). Most callers inside statement
// grammar want parseAssignment instead, since `,` is only a top-level
// expression-statement/for-clause operator.
func (p *Parser) parseExpression() (ast.Expression, error) {
	line, col := p.curPos()
	first, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if !p.cur.Is(",") {
		return first, nil
	}
	elements := []ast.Expression{first}
	for p.cur.Is(",") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		elements = append(elements, next)
	}
	seq := &ast.SequenceExpr{Elements: elements}
	seq.SetPos(line, col)
	return seq, nil
}

// parseAssignment implements level 13 (right-associative). The left side
// must already be Identifier/Dot/Bracket; that is checked here rather than
// re-parsed, since the grammar only knows it's an assignment once it sees
// the operator.
func (p *Parser) parseAssignment() (ast.Expression, error) {
	line, col := p.curPos()
	left, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	op, ok := assignOps[p.cur.Lexeme]
	if p.cur.Kind != token.Symbol || !ok {
		return left, nil
	}
	if !isAssignable(left) {
		return nil, p.errorf(p.cur, "invalid assignment target")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	expr := &ast.AssignExpr{Op: op, Target: left, Value: value}
	expr.SetPos(line, col)
	return expr, nil
}

var assignOps = map[string]ast.AssignOp{
	"=":  ast.AssignPlain,
	"+=": ast.AssignAdd,
	"-=": ast.AssignSub,
	"*=": ast.AssignMul,
	"/=": ast.AssignDiv,
	"%=": ast.AssignMod,
}

func isAssignable(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.DotExpr, *ast.BracketExpr:
		return true
	default:
		return false
	}
}

// parseTernary implements level 12, right-associative `cond ? then : else`.
func (p *Parser) parseTernary() (ast.Expression, error) {
	line, col := p.curPos()
	cond, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if !p.cur.Is("?") {
		return cond, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	then, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if err := p.expect(":"); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	expr := &ast.TernaryExpr{Cond: cond, Then: then, Else: elseExpr}
	expr.SetPos(line, col)
	return expr, nil
}

func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	line, col := p.curPos()
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Is("||") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		expr := &ast.BinaryExpr{Op: ast.OpOr, Left: left, Right: right}
		expr.SetPos(line, col)
		left = expr
	}
	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	line, col := p.curPos()
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur.Is("&&") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		expr := &ast.BinaryExpr{Op: ast.OpAnd, Left: left, Right: right}
		expr.SetPos(line, col)
		left = expr
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	line, col := p.curPos()
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.cur.Is("==") || p.cur.Is("!=") {
		op := ast.OpEq
		if p.cur.Lexeme == "!=" {
			op = ast.OpNotEq
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		expr := &ast.BinaryExpr{Op: op, Left: left, Right: right}
		expr.SetPos(line, col)
		left = expr
	}
	return left, nil
}

func (p *Parser) parseRelational() (ast.Expression, error) {
	line, col := p.curPos()
	left, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.cur.Lexeme {
		case "<":
			op = ast.OpLess
		case "<=":
			op = ast.OpLessEq
		case ">":
			op = ast.OpGreater
		case ">=":
			op = ast.OpGreaterEq
		default:
			return left, nil
		}
		if p.cur.Kind != token.Symbol {
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseShift()
		if err != nil {
			return nil, err
		}
		expr := &ast.BinaryExpr{Op: op, Left: left, Right: right}
		expr.SetPos(line, col)
		left = expr
	}
}

// parseShift implements level 7. The lexer never emits `<<`/`>>` (spec.md
// §9 notes shift is reserved); this level is a pass-through kept for
// grammar-layer parity with spec.md's precedence table.
func (p *Parser) parseShift() (ast.Expression, error) {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	line, col := p.curPos()
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur.Is("+") || p.cur.Is("-") {
		op := ast.OpAdd
		if p.cur.Lexeme == "-" {
			op = ast.OpSub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		expr := &ast.BinaryExpr{Op: op, Left: left, Right: right}
		expr.SetPos(line, col)
		left = expr
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	line, col := p.curPos()
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Is("*") || p.cur.Is("/") || p.cur.Is("%") {
		var op ast.BinaryOp
		switch p.cur.Lexeme {
		case "*":
			op = ast.OpMul
		case "/":
			op = ast.OpDiv
		case "%":
			op = ast.OpMod
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr := &ast.BinaryExpr{Op: op, Left: left, Right: right}
		expr.SetPos(line, col)
		left = expr
	}
	return left, nil
}

// parseUnary implements level 4: prefix `!`, unary `+`/`-`, prefix
// `++`/`--`, and `delete`.
func (p *Parser) parseUnary() (ast.Expression, error) {
	line, col := p.curPos()
	switch {
	case p.cur.Is("!"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr := &ast.UnaryExpr{Op: ast.UnaryNot, Operand: operand}
		expr.SetPos(line, col)
		return expr, nil
	case p.cur.Is("-"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr := &ast.UnaryExpr{Op: ast.UnaryMinus, Operand: operand}
		expr.SetPos(line, col)
		return expr, nil
	case p.cur.Is("+"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr := &ast.UnaryExpr{Op: ast.UnaryPlus, Operand: operand}
		expr.SetPos(line, col)
		return expr, nil
	case p.cur.Is("++"), p.cur.Is("--"):
		op := ast.UnaryPreIncrement
		if p.cur.Lexeme == "--" {
			op = ast.UnaryPreDecrement
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if !isAssignable(operand) {
			return nil, p.errorf(p.cur, "invalid operand for prefix %v", op)
		}
		expr := &ast.UnaryExpr{Op: op, Operand: operand}
		expr.SetPos(line, col)
		return expr, nil
	case p.cur.Is("delete"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		target, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		switch target.(type) {
		case *ast.DotExpr, *ast.BracketExpr:
		default:
			return nil, p.errorf(p.cur, "'delete' target must be a property access")
		}
		expr := &ast.DeleteExpr{Target: target}
		expr.SetPos(line, col)
		return expr, nil
	default:
		return p.parsePostfix()
	}
}

// parsePostfix implements level 3, postfix `++`/`--` on an l-value.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	line, col := p.curPos()
	operand, err := p.parseCallMemberChain()
	if err != nil {
		return nil, err
	}
	if p.cur.Is("++") || p.cur.Is("--") {
		if !isAssignable(operand) {
			return nil, p.errorf(p.cur, "invalid operand for postfix %s", p.cur.Lexeme)
		}
		op := ast.UnaryPostIncrement
		if p.cur.Lexeme == "--" {
			op = ast.UnaryPostDecrement
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr := &ast.UnaryExpr{Op: op, Operand: operand}
		expr.SetPos(line, col)
		return expr, nil
	}
	return operand, nil
}

// parseCallMemberChain implements level 2: a primary followed by any
// sequence of `.identifier`, `[expr]`, `(args...)`.
func (p *Parser) parseCallMemberChain() (ast.Expression, error) {
	line, col := p.curPos()
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.cur.Is("."):
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.cur.Kind != token.Identifier && p.cur.Kind != token.Keyword {
				return nil, p.errorf(p.cur, "expected property name after '.'")
			}
			prop := p.cur.Lexeme
			if err := p.advance(); err != nil {
				return nil, err
			}
			dot := &ast.DotExpr{Object: expr, Property: prop}
			dot.SetPos(line, col)
			expr = dot
		case p.cur.Is("["):
			if err := p.advance(); err != nil {
				return nil, err
			}
			key, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expect("]"); err != nil {
				return nil, err
			}
			br := &ast.BracketExpr{Object: expr, Key: key}
			br.SetPos(line, col)
			expr = br
		case p.cur.Is("("):
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			call := &ast.CallExpr{Callee: expr, Args: args}
			call.SetPos(line, col)
			expr = call
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArgs() ([]ast.Expression, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for !p.cur.Is(")") {
		arg, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Is(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return args, nil
}

// parsePrimary implements level 1: literal, identifier, `this`, grouped
// expression, object literal, array literal, anonymous function.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	line, col := p.curPos()
	switch {
	case p.cur.Is("null"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		n := &ast.NullLiteral{}
		n.SetPos(line, col)
		return n, nil
	case p.cur.Is("true"), p.cur.Is("false"):
		value := p.cur.Lexeme == "true"
		if err := p.advance(); err != nil {
			return nil, err
		}
		b := &ast.BoolLiteral{Value: value}
		b.SetPos(line, col)
		return b, nil
	case p.cur.Is("this"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		t := &ast.ThisExpr{}
		t.SetPos(line, col)
		return t, nil
	case p.cur.Kind == token.Integer || p.cur.Kind == token.Float:
		return p.parseNumberLiteral()
	case p.cur.Kind == token.String:
		s := &ast.StringLiteral{Value: p.cur.Lexeme}
		s.SetPos(line, col)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return s, nil
	case p.cur.Kind == token.Identifier:
		id := &ast.Identifier{Name: p.cur.Lexeme}
		id.SetPos(line, col)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return id, nil
	case p.cur.Is("("):
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return inner, nil
	case p.cur.Is("["):
		return p.parseArrayLiteral()
	case p.cur.Is("{"):
		return p.parseObjectLiteral()
	case p.cur.Is("function"):
		return p.parseFunctionLiteral(false)
	default:
		return nil, p.errorf(p.cur, "unexpected token in expression")
	}
}

func (p *Parser) parseNumberLiteral() (ast.Expression, error) {
	line, col := p.curPos()
	value, err := parseNumber(p.cur.Lexeme)
	if err != nil {
		return nil, p.errorf(p.cur, "%s", err)
	}
	n := &ast.NumberLiteral{Value: value}
	n.SetPos(line, col)
	if err := p.advance(); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	line, col := p.curPos()
	if err := p.expect("["); err != nil {
		return nil, err
	}
	arr := &ast.ArrayLiteral{}
	arr.SetPos(line, col)
	for !p.cur.Is("]") {
		el, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, el)
		if p.cur.Is(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect("]"); err != nil {
		return nil, err
	}
	return arr, nil
}

func (p *Parser) parseObjectLiteral() (ast.Expression, error) {
	line, col := p.curPos()
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	obj := &ast.ObjectLiteral{}
	obj.SetPos(line, col)
	for !p.cur.Is("}") {
		prop, err := p.parseObjectProperty()
		if err != nil {
			return nil, err
		}
		obj.Properties = append(obj.Properties, prop)
		if p.cur.Is(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect("}"); err != nil {
		return nil, err
	}
	return obj, nil
}

func (p *Parser) parseObjectProperty() (ast.ObjectProperty, error) {
	line, col := p.curPos()
	if p.cur.Is("[") {
		if err := p.advance(); err != nil {
			return ast.ObjectProperty{}, err
		}
		key, err := p.parseAssignment()
		if err != nil {
			return ast.ObjectProperty{}, err
		}
		if err := p.expect("]"); err != nil {
			return ast.ObjectProperty{}, err
		}
		if err := p.expect(":"); err != nil {
			return ast.ObjectProperty{}, err
		}
		value, err := p.parseAssignment()
		if err != nil {
			return ast.ObjectProperty{}, err
		}
		return ast.ObjectProperty{Key: key, Value: value, Computed: true}, nil
	}
	if p.cur.Kind != token.Identifier && p.cur.Kind != token.Keyword && p.cur.Kind != token.String {
		return ast.ObjectProperty{}, p.errorf(p.cur, "expected property key")
	}
	keyLexeme := p.cur.Lexeme
	key := &ast.StringLiteral{Value: keyLexeme}
	key.SetPos(line, col)
	if err := p.advance(); err != nil {
		return ast.ObjectProperty{}, err
	}
	if err := p.expect(":"); err != nil {
		return ast.ObjectProperty{}, err
	}
	value, err := p.parseAssignment()
	if err != nil {
		return ast.ObjectProperty{}, err
	}
	return ast.ObjectProperty{Key: key, Value: value}, nil
}

// parseFunctionLiteral parses `function [name](params) { body }`. named is
// true at statement position, where a name is required; anonymous function
// expressions may omit it.
func (p *Parser) parseFunctionLiteral(named bool) (*ast.FunctionLiteral, error) {
	line, col := p.curPos()
	if err := p.advance(); err != nil { // consume 'function'
		return nil, err
	}
	var name string
	if p.cur.Kind == token.Identifier {
		name = p.cur.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else if named {
		return nil, p.errorf(p.cur, "expected function name")
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var params []string
	for !p.cur.Is(")") {
		if p.cur.Kind != token.Identifier {
			return nil, p.errorf(p.cur, "expected parameter name")
		}
		params = append(params, p.cur.Lexeme)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Is(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	p.pushContext(context{inFunction: true, inLoop: false})
	body, err := p.parseBlock()
	p.popContext()
	if err != nil {
		return nil, err
	}
	fn := &ast.FunctionLiteral{Name: name, Params: params, Body: body}
	fn.SetPos(line, col)
	return fn, nil
}
