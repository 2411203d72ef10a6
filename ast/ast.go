/*
Package ast defines the BxScript abstract syntax tree: two closed tagged
unions (Expression, Statement) and a Program root that owns the top-level
import and statement lists, per spec.md §3.
*/
package ast

// Node is implemented by every AST node for position reporting and the
// debug-dump visitor (used by the CLI's --dump-ast flag).
type Node interface {
	Line() int
	Column() int
	node()
}

// Expression is implemented by every expression-sort AST node.
type Expression interface {
	Node
	expressionNode()
}

// Statement is implemented by every statement-sort AST node.
type Statement interface {
	Node
	statementNode()
}

// pos is embedded by every concrete node to supply source position.
type pos struct {
	LineNo int
	ColNo  int
}

func (p pos) Line() int   { return p.LineNo }
func (p pos) Column() int { return p.ColNo }
func (pos) node()         {}

// SetPos stamps a node's source position. The parser calls this right after
// constructing a node, since composite literals outside this package cannot
// name the unexported pos type directly.
func (p *pos) SetPos(line, col int) {
	p.LineNo = line
	p.ColNo = col
}

// Program is the root of a parsed compilation unit: an ordered sequence of
// imports followed by an ordered sequence of top-level statements.
type Program struct {
	pos
	Imports []*Import
	Body    []Statement
}

// Import is `import a.b.c as alias;`. Path holds the dotted segments in
// order; Alias is always present (spec.md §4.2 requires it).
type Import struct {
	pos
	Path  []string
	Alias string
}
