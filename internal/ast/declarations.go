package ast

import "github.com/rwnicholas/WitcherScript/internal/token"

// VarDecl is `contract name = expr` or `mutation name = expr`.
//
// IsConstant records which keyword introduced the declaration but, per the
// Design Notes, the evaluator does not enforce immutability for `mutation` —
// the flag is parsed and carried for a future enforcement pass, never read
// by the evaluator today.
type VarDecl struct {
	Token       token.Token // the `contract`/`mutation` keyword
	Name        string
	Initializer Expression
	IsConstant  bool
}

func (v *VarDecl) Pos() token.Position { return v.Token.Pos }
func (v *VarDecl) stmtNode()           {}
func (v *VarDecl) String() string {
	kw := "contract"
	if v.IsConstant {
		kw = "mutation"
	}
	return kw + " " + v.Name + " = " + v.Initializer.String()
}

// Assign is `name = value`, recognized only when the postfix chain's base
// is a bare identifier.
type Assign struct {
	Token token.Token // the `=` token
	Name  string
	Value Expression
}

func (a *Assign) Pos() token.Position { return a.Token.Pos }
func (a *Assign) exprNode()           {}
func (a *Assign) String() string      { return a.Name + " = " + a.Value.String() }

// IndexAssign is `target[index] = value`.
type IndexAssign struct {
	Token  token.Token // the `=` token
	Target Expression
	Index  Expression
	Value  Expression
}

func (a *IndexAssign) Pos() token.Position { return a.Token.Pos }
func (a *IndexAssign) exprNode()           {}
func (a *IndexAssign) String() string {
	return a.Target.String() + "[" + a.Index.String() + "] = " + a.Value.String()
}

// IndexAccess is `target[index]`.
type IndexAccess struct {
	Token  token.Token // the `[` token
	Target Expression
	Index  Expression
}

func (a *IndexAccess) Pos() token.Position { return a.Token.Pos }
func (a *IndexAccess) exprNode()           {}
func (a *IndexAccess) String() string {
	return a.Target.String() + "[" + a.Index.String() + "]"
}
