package ast

import "github.com/rwnicholas/WitcherScript/internal/token"

// BinOp is a binary operator application: `left OP right`.
type BinOp struct {
	Token    token.Token // the operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinOp) Pos() token.Position { return b.Token.Pos }
func (b *BinOp) exprNode()           {}
func (b *BinOp) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// UnaryOp is a prefix operator application: `OP operand`.
type UnaryOp struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (u *UnaryOp) Pos() token.Position { return u.Token.Pos }
func (u *UnaryOp) exprNode()           {}
func (u *UnaryOp) String() string {
	return "(" + u.Operator + u.Operand.String() + ")"
}
