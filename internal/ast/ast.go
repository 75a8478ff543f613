// Package ast defines the syntax tree produced by the parser.
//
// Node variants are grouped by concern the way CWBudde-go-dws splits
// internal/ast into control_flow.go, declarations.go, functions.go, etc.,
// rather than one monolithic file. Every node is immutable after
// construction, per the language's Lifecycles invariant.
package ast

import "github.com/rwnicholas/WitcherScript/internal/token"

// Node is the common interface implemented by every syntax tree element.
type Node interface {
	Pos() token.Position
	String() string
}

// Statement is a top-level or block-level syntax production.
type Statement interface {
	Node
	stmtNode()
}

// Expression produces a Value when evaluated.
type Expression interface {
	Node
	exprNode()
}

// Program is the list of statements produced by parsing one source file.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	return p.Statements[0].Pos()
}

func (p *Program) String() string {
	out := ""
	for _, s := range p.Statements {
		out += s.String() + "\n"
	}
	return out
}
