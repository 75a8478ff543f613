package ast

import (
	"strings"

	"github.com/rwnicholas/WitcherScript/internal/token"
)

// FuncDef is `aard name(params) { body }`. Functions resolve free names
// against globals at call time, not at definition — there is no closure
// capture, so FuncDef carries no environment reference, only its own
// parameter list and body.
type FuncDef struct {
	Token  token.Token // the `aard` keyword
	Name   string
	Params []string
	Body   []Statement
}

func (f *FuncDef) Pos() token.Position { return f.Token.Pos }
func (f *FuncDef) stmtNode()           {}
func (f *FuncDef) String() string {
	return "aard " + f.Name + "(" + strings.Join(f.Params, ", ") + ") { " + blockString(f.Body) + " }"
}

// Call is `name(args)`. Per the Parser's postfix rules, a call is only
// admitted immediately after an identifier primary — function values
// cannot be produced or invoked through arbitrary expressions.
type Call struct {
	Token token.Token // the `(` token
	Name  string
	Args  []Expression
}

func (c *Call) Pos() token.Position { return c.Token.Pos }
func (c *Call) exprNode()           {}
func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}
