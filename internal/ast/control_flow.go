package ast

import (
	"strings"

	"github.com/rwnicholas/WitcherScript/internal/token"
)

func blockString(stmts []Statement) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, "; ")
}

// If is `igni cond { then } (elixir { else })?`.
type If struct {
	Token     token.Token // the `igni` keyword
	Condition Expression
	Then      []Statement
	Else      []Statement // nil when no `elixir` clause
}

func (i *If) Pos() token.Position { return i.Token.Pos }
func (i *If) stmtNode()           {}
func (i *If) String() string {
	s := "igni " + i.Condition.String() + " { " + blockString(i.Then) + " }"
	if i.Else != nil {
		s += " elixir { " + blockString(i.Else) + " }"
	}
	return s
}

// While is `quen cond { body }`.
type While struct {
	Token     token.Token // the `quen` keyword
	Condition Expression
	Body      []Statement
}

func (w *While) Pos() token.Position { return w.Token.Pos }
func (w *While) stmtNode()           {}
func (w *While) String() string {
	return "quen " + w.Condition.String() + " { " + blockString(w.Body) + " }"
}

// For is `yrden loopVar -> iterable { body }`.
type For struct {
	Token    token.Token // the `yrden` keyword
	LoopVar  string
	Iterable Expression
	Body     []Statement
}

func (f *For) Pos() token.Position { return f.Token.Pos }
func (f *For) stmtNode()           {}
func (f *For) String() string {
	return "yrden " + f.LoopVar + " -> " + f.Iterable.String() + " { " + blockString(f.Body) + " }"
}

// Return is `hunt expr?`.
type Return struct {
	Token token.Token // the `hunt` keyword
	Value Expression  // nil when bare `hunt`
}

func (r *Return) Pos() token.Position { return r.Token.Pos }
func (r *Return) stmtNode()           {}
func (r *Return) String() string {
	if r.Value == nil {
		return "hunt"
	}
	return "hunt " + r.Value.String()
}

// ExprStmt wraps an expression used in statement position.
type ExprStmt struct {
	Token      token.Token
	Expression Expression
}

func (e *ExprStmt) Pos() token.Position { return e.Token.Pos }
func (e *ExprStmt) stmtNode()           {}
func (e *ExprStmt) String() string      { return e.Expression.String() }
