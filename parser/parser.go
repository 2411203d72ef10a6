/*
Package parser implements a hand-written recursive-descent parser over the
token package, producing an ast.Program. It keeps a single-token lookahead
(cur/peek) filled by calling the lexer's NextToken, and a small parse-context
stack used to reject return/break/continue outside their enclosing
constructs at parse time.
*/
package parser

import (
	"fmt"

	"github.com/burningli/bxscript/ast"
	"github.com/burningli/bxscript/lexer"
	"github.com/burningli/bxscript/token"
)

// ParseError is a fatal syntax error: line/column, the offending lexeme, and
// a human message, per spec.md §4.2.
type ParseError struct {
	Line    int
	Column  int
	Lexeme  string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s (near %q)", e.Line, e.Column, e.Message, e.Lexeme)
}

type context struct {
	inFunction bool
	inLoop     bool
}

// Parser converts a token stream into an AST. Create one with New and call
// ParseProgram once.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	contexts []context
}

// New creates a Parser over src.
func New(src string) (*Parser, error) {
	p := &Parser{lex: lexer.New(src), contexts: []context{{}}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	p.cur = p.peek
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

func (p *Parser) curCtx() *context {
	return &p.contexts[len(p.contexts)-1]
}

func (p *Parser) pushContext(c context) {
	p.contexts = append(p.contexts, c)
}

func (p *Parser) popContext() {
	p.contexts = p.contexts[:len(p.contexts)-1]
}

func (p *Parser) errorf(tok token.Token, format string, args ...any) error {
	return &ParseError{Line: tok.Line, Column: tok.Column, Lexeme: tok.Lexeme, Message: fmt.Sprintf(format, args...)}
}

// expect checks that cur matches lexeme (Keyword or Symbol) and advances
// past it; otherwise it returns a ParseError.
func (p *Parser) expect(lexeme string) error {
	if !p.cur.Is(lexeme) {
		return p.errorf(p.cur, "expected %q", lexeme)
	}
	return p.advance()
}

func (p *Parser) curPos() (int, int) {
	return p.cur.Line, p.cur.Column
}

// ParseProgram parses the whole token stream into a Program. Imports must
// appear before any other statement, matching spec.md §4.2's statement
// ordering contract for `import`.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.cur.Is("import") {
		imp, err := p.parseImport()
		if err != nil {
			return nil, err
		}
		prog.Imports = append(prog.Imports, imp)
	}
	for p.cur.Kind != token.EndOfFile {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			prog.Body = append(prog.Body, stmt)
		}
	}
	return prog, nil
}

func (p *Parser) parseImport() (*ast.Import, error) {
	line, col := p.curPos()
	if err := p.advance(); err != nil { // consume 'import'
		return nil, err
	}
	var path []string
	for {
		if p.cur.Kind != token.Identifier && p.cur.Kind != token.Keyword {
			return nil, p.errorf(p.cur, "expected identifier in import path")
		}
		path = append(path, p.cur.Lexeme)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Is(".") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect("as"); err != nil {
		return nil, err
	}
	if p.cur.Kind != token.Identifier {
		return nil, p.errorf(p.cur, "expected alias identifier after 'as'")
	}
	alias := p.cur.Lexeme
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	imp := &ast.Import{Path: path, Alias: alias}
	imp.SetPos(line, col)
	return imp, nil
}
