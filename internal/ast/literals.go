package ast

import (
	"strconv"
	"strings"

	"github.com/rwnicholas/WitcherScript/internal/token"
)

// NumberLit is a numeric literal; the language has no separate integer type,
// every number is stored and evaluated as a float64.
type NumberLit struct {
	Token token.Token
	Value float64
}

func (n *NumberLit) Pos() token.Position { return n.Token.Pos }
func (n *NumberLit) exprNode()           {}
func (n *NumberLit) String() string      { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// TextLit is a string literal.
type TextLit struct {
	Token token.Token
	Value string
}

func (t *TextLit) Pos() token.Position { return t.Token.Pos }
func (t *TextLit) exprNode()           {}
func (t *TextLit) String() string      { return strconv.Quote(t.Value) }

// BoolLit is `truth` or `falsehood`.
type BoolLit struct {
	Token token.Token
	Value bool
}

func (b *BoolLit) Pos() token.Position { return b.Token.Pos }
func (b *BoolLit) exprNode()           {}
func (b *BoolLit) String() string {
	if b.Value {
		return "truth"
	}
	return "falsehood"
}

// Ident is a bare identifier reference.
type Ident struct {
	Token token.Token
	Name  string
}

func (i *Ident) Pos() token.Position { return i.Token.Pos }
func (i *Ident) exprNode()           {}
func (i *Ident) String() string      { return i.Name }

// ArrayLit is a `[elem, elem, ...]` bestiary literal.
type ArrayLit struct {
	Token    token.Token
	Elements []Expression
}

func (a *ArrayLit) Pos() token.Position { return a.Token.Pos }
func (a *ArrayLit) exprNode()           {}
func (a *ArrayLit) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
