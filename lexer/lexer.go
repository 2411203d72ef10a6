/*
Package lexer streams tokens on demand from UTF-8 BxScript source. It tracks
line/column as it goes and supports a single-token pushback buffer; the
parser keeps its own cur/peek lookahead and does not use it.
*/
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/burningli/bxscript/token"
)

// LexError is a fatal lexical error: an unterminated string or an unknown
// character. Per spec.md §4.1 these abort the whole compilation unit rather
// than becoming a script-catchable exception.
type LexError struct {
	Message string
	Line    int
	Column  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Lexer scans BxScript source text into a Token stream.
type Lexer struct {
	input        string
	position     int // byte offset of ch
	readPosition int // byte offset of the next rune to read
	line         int
	column       int
	ch           rune

	pushedBack []token.Token
}

// New creates a Lexer over input, positioned at its first character.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	l.readChar()
}

// Pushback returns a single token to the front of the stream so the next
// NextToken call yields it again. Only one level of pushback is guaranteed,
// matching spec.md §4.1's "supports single-char pushback" contract scaled to
// whole tokens, which is all the parser ever needs.
func (l *Lexer) Pushback(t token.Token) {
	l.pushedBack = append(l.pushedBack, t)
}

// EndOfFile reports whether the lexer has exhausted the input (ignoring any
// pushed-back tokens waiting to be redelivered).
func (l *Lexer) EndOfFile() bool {
	return len(l.pushedBack) == 0 && l.ch == 0
}

// NextToken returns the next token from the input, consuming it.
func (l *Lexer) NextToken() (token.Token, error) {
	if n := len(l.pushedBack); n > 0 {
		t := l.pushedBack[n-1]
		l.pushedBack = l.pushedBack[:n-1]
		return t, nil
	}
	l.skipWhitespaceAndComments()

	line, col := l.line, l.column+1
	if l.ch == 0 {
		return token.New(token.EndOfFile, "", line, col), nil
	}

	switch {
	case isIdentStart(l.ch):
		lex := l.readIdentifier()
		return token.New(token.LookupIdentifier(lex), lex, line, col), nil
	case isDigit(l.ch):
		lex, kind := l.readNumber()
		return token.New(kind, lex, line, col), nil
	case l.ch == '"':
		lex, err := l.readString()
		if err != nil {
			return token.Token{}, err
		}
		return token.New(token.String, lex, line, col), nil
	default:
		return l.readSymbol(line, col)
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.advance()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.advance()
			}
			continue
		}
		break
	}
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_' || ch == '$'
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentPart(l.ch) {
		l.advance()
	}
	return l.input[start:l.position]
}

// readNumber reads `digit+ ('.' digit*)?`. A trailing '.' with no fractional
// digits is permitted and still yields Float, per spec.md §4.1.
func (l *Lexer) readNumber() (string, token.Kind) {
	start := l.position
	for isDigit(l.ch) {
		l.advance()
	}
	kind := token.Integer
	if l.ch == '.' {
		kind = token.Float
		l.advance()
		for isDigit(l.ch) {
			l.advance()
		}
	}
	return l.input[start:l.position], kind
}

// readString reads a "-delimited string literal. Only \" is a recognized
// escape (it decodes to a literal quote); every other backslash sequence is
// preserved as both characters, per spec.md §4.1.
func (l *Lexer) readString() (string, error) {
	startLine, startCol := l.line, l.column+1
	l.advance() // consume opening quote
	var b strings.Builder
	for {
		if l.ch == 0 {
			return "", &LexError{Message: "unterminated string literal", Line: startLine, Column: startCol}
		}
		if l.ch == '"' {
			l.advance()
			return b.String(), nil
		}
		if l.ch == '\\' && l.peekChar() == '"' {
			b.WriteRune('"')
			l.advance()
			l.advance()
			continue
		}
		b.WriteRune(l.ch)
		l.advance()
	}
}

// compoundOps lists two-character operators formed by greedy maximal munch,
// per spec.md §4.1.
var compoundOps = map[rune]map[rune]string{
	'=': {'=': "=="},
	'!': {'=': "!="},
	'<': {'=': "<="},
	'>': {'=': ">="},
	'&': {'&': "&&"},
	'|': {'|': "||"},
	'+': {'+': "++", '=': "+="},
	'-': {'-': "--", '=': "-="},
	'*': {'=': "*="},
	'/': {'=': "/="},
	'%': {'=': "%="},
}

const singleCharSymbols = "{}()[].,;+-*/%=&|!<>:?"

func (l *Lexer) readSymbol(line, col int) (token.Token, error) {
	ch := l.ch
	if next, ok := compoundOps[ch]; ok {
		if lex, ok := next[l.peekChar()]; ok {
			l.advance()
			l.advance()
			return token.New(token.Symbol, lex, line, col), nil
		}
	}
	if strings.ContainsRune(singleCharSymbols, ch) {
		l.advance()
		return token.New(token.Symbol, string(ch), line, col), nil
	}
	l.advance()
	return token.Token{}, &LexError{Message: fmt.Sprintf("unexpected character %q", ch), Line: line, Column: col}
}
