package ast

import (
	"strconv"

	"github.com/rwnicholas/WitcherScript/internal/token"
)

// Import is `grimoire "path"`.
type Import struct {
	Token token.Token // the `grimoire` keyword
	Path  string
}

func (g *Import) Pos() token.Position { return g.Token.Pos }
func (g *Import) stmtNode()           {}
func (g *Import) String() string      { return "grimoire " + strconv.Quote(g.Path) }
