package parser

import (
	"github.com/burningli/bxscript/ast"
	"github.com/burningli/bxscript/token"
)

// parseStatement dispatches on the current token's lexeme, per spec.md
// §4.2's "statements dispatch on the first token" contract.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.cur.Is("let"):
		return p.parseVariableStmt()
	case p.cur.Is("if"):
		return p.parseIfStmt()
	case p.cur.Is("for"):
		return p.parseForStmt()
	case p.cur.Is("while"):
		return p.parseWhileStmt()
	case p.cur.Is("return"):
		return p.parseReturnStmt()
	case p.cur.Is("break"):
		return p.parseBreakStmt()
	case p.cur.Is("continue"):
		return p.parseContinueStmt()
	case p.cur.Is("throw"):
		return p.parseThrowStmt()
	case p.cur.Is("try"):
		return p.parseTryStmt()
	case p.cur.Is("function"):
		return p.parseFunctionStmt()
	case p.cur.Is("{"):
		return p.parseBlock()
	case p.cur.Is(";"):
		return nil, p.advance() // empty statement
	default:
		return p.parseExpressionStmt()
	}
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	line, col := p.curPos()
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	blk := &ast.Block{}
	blk.SetPos(line, col)
	for !p.cur.Is("}") {
		if p.cur.Kind == token.EndOfFile {
			return nil, p.errorf(p.cur, "unterminated block, expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			blk.Statements = append(blk.Statements, stmt)
		}
	}
	if err := p.expect("}"); err != nil {
		return nil, err
	}
	return blk, nil
}

func (p *Parser) parseVariableStmt() (ast.Statement, error) {
	// `let a = 1, b, c = 2;` desugars to a Block of individual VariableStmts
	// when more than one binding is declared; a single binding returns the
	// VariableStmt directly so the common case stays a flat statement.
	line, col := p.curPos()
	if err := p.advance(); err != nil { // consume 'let'
		return nil, err
	}
	var stmts []ast.Statement
	for {
		if p.cur.Kind != token.Identifier {
			return nil, p.errorf(p.cur, "expected identifier after 'let'")
		}
		name := p.cur.Lexeme
		nameLine, nameCol := p.curPos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		var init ast.Expression
		if p.cur.Is("=") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			var err error
			init, err = p.parseAssignment()
			if err != nil {
				return nil, err
			}
		}
		vs := &ast.VariableStmt{Name: name, Init: init}
		vs.SetPos(nameLine, nameCol)
		stmts = append(stmts, vs)
		if p.cur.Is(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	if len(stmts) == 1 {
		return stmts[0], nil
	}
	blk := &ast.Block{Statements: stmts}
	blk.SetPos(line, col)
	return blk, nil
}

func (p *Parser) parseIfStmt() (ast.Statement, error) {
	line, col := p.curPos()
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Cond: cond, Then: then}
	stmt.SetPos(line, col)
	if p.cur.Is("else") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Is("if") {
			elseIf, err := p.parseIfStmt()
			if err != nil {
				return nil, err
			}
			stmt.Else = elseIf
		} else {
			elseBlock, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			stmt.Else = elseBlock
		}
	}
	return stmt, nil
}

func (p *Parser) parseForStmt() (ast.Statement, error) {
	line, col := p.curPos()
	if err := p.advance(); err != nil { // consume 'for'
		return nil, err
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}

	// `for (let v in expr) body` and the C-style `for (let v = ...; ...)`
	// both start with `let IDENT`; branch on whether `in` follows the name.
	if p.cur.Is("let") {
		if err := p.advance(); err != nil { // consume 'let'
			return nil, err
		}
		if p.cur.Kind != token.Identifier {
			return nil, p.errorf(p.cur, "expected identifier after 'let'")
		}
		name := p.cur.Lexeme
		nameLine, nameCol := p.curPos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Is("in") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			iterable, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			p.pushContext(context{inFunction: p.curCtx().inFunction, inLoop: true})
			body, err := p.parseBlock()
			p.popContext()
			if err != nil {
				return nil, err
			}
			stmt := &ast.ForInStmt{Name: name, Iterable: iterable, Body: body}
			stmt.SetPos(line, col)
			return stmt, nil
		}
		var init ast.Expression
		if p.cur.Is("=") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			var err error
			init, err = p.parseAssignment()
			if err != nil {
				return nil, err
			}
		}
		vs := &ast.VariableStmt{Name: name, Init: init}
		vs.SetPos(nameLine, nameCol)
		return p.finishForStmt(line, col, vs)
	}

	var initStmt ast.Statement
	if !p.cur.Is(";") {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		es := &ast.ExpressionStmt{Expr: expr}
		es.SetPos(line, col)
		initStmt = es
	}
	return p.finishForStmt(line, col, initStmt)
}

// finishForStmt parses the `; cond ; update) body` tail of a for-loop once
// its init clause (possibly nil) has already been parsed.
func (p *Parser) finishForStmt(line, col int, initStmt ast.Statement) (ast.Statement, error) {
	if err := p.expect(";"); err != nil {
		return nil, err
	}

	var cond ast.Expression
	if !p.cur.Is(";") {
		var err error
		cond, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}

	var update ast.Expression
	if !p.cur.Is(")") {
		var err error
		update, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}

	p.pushContext(context{inFunction: p.curCtx().inFunction, inLoop: true})
	body, err := p.parseBlock()
	p.popContext()
	if err != nil {
		return nil, err
	}

	stmt := &ast.ForStmt{Init: initStmt, Cond: cond, Update: update, Body: body}
	stmt.SetPos(line, col)
	return stmt, nil
}

// parseWhileStmt desugars `while (test) body` to a ForStmt with no
// init/update, per spec.md §4.2.
func (p *Parser) parseWhileStmt() (ast.Statement, error) {
	line, col := p.curPos()
	if err := p.advance(); err != nil { // consume 'while'
		return nil, err
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	p.pushContext(context{inFunction: p.curCtx().inFunction, inLoop: true})
	body, err := p.parseBlock()
	p.popContext()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ForStmt{Cond: cond, Body: body}
	stmt.SetPos(line, col)
	return stmt, nil
}

func (p *Parser) parseReturnStmt() (ast.Statement, error) {
	line, col := p.curPos()
	if !p.curCtx().inFunction {
		return nil, p.errorf(p.cur, "'return' outside a function")
	}
	if err := p.advance(); err != nil { // consume 'return'
		return nil, err
	}
	stmt := &ast.ReturnStmt{}
	stmt.SetPos(line, col)
	if !p.cur.Is(";") {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Expr = expr
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseBreakStmt() (ast.Statement, error) {
	line, col := p.curPos()
	if !p.curCtx().inLoop {
		return nil, p.errorf(p.cur, "'break' outside a loop")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	stmt := &ast.BreakStmt{}
	stmt.SetPos(line, col)
	return stmt, nil
}

func (p *Parser) parseContinueStmt() (ast.Statement, error) {
	line, col := p.curPos()
	if !p.curCtx().inLoop {
		return nil, p.errorf(p.cur, "'continue' outside a loop")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	stmt := &ast.ContinueStmt{}
	stmt.SetPos(line, col)
	return stmt, nil
}

func (p *Parser) parseThrowStmt() (ast.Statement, error) {
	line, col := p.curPos()
	if err := p.advance(); err != nil { // consume 'throw'
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	stmt := &ast.ThrowStmt{Expr: expr}
	stmt.SetPos(line, col)
	return stmt, nil
}

// parseTryStmt requires `catch`, with `finally` optional, per spec.md §4.2.
func (p *Parser) parseTryStmt() (ast.Statement, error) {
	line, col := p.curPos()
	if err := p.advance(); err != nil { // consume 'try'
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.expect("catch"); err != nil {
		return nil, err
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	if p.cur.Kind != token.Identifier {
		return nil, p.errorf(p.cur, "expected identifier in catch clause")
	}
	param := p.cur.Lexeme
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	catchBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.TryStmt{Body: body, CatchParam: param, Catch: catchBlock}
	stmt.SetPos(line, col)
	if p.cur.Is("finally") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		finallyBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Finally = finallyBlock
	}
	return stmt, nil
}

func (p *Parser) parseFunctionStmt() (ast.Statement, error) {
	line, col := p.curPos()
	fn, err := p.parseFunctionLiteral(true)
	if err != nil {
		return nil, err
	}
	stmt := &ast.FunctionStmt{Fn: fn}
	stmt.SetPos(line, col)
	return stmt, nil
}

func (p *Parser) parseExpressionStmt() (ast.Statement, error) {
	line, col := p.curPos()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	stmt := &ast.ExpressionStmt{Expr: expr}
	stmt.SetPos(line, col)
	return stmt, nil
}
