package cerr

import (
	"github.com/rwnicholas/WitcherScript/internal/lexer"
	"github.com/rwnicholas/WitcherScript/internal/parser"
	"github.com/rwnicholas/WitcherScript/internal/runtime"
)

// FromError builds a Report from whichever of the pipeline's error types
// err actually is, falling back to a position-less report for anything
// else (e.g. a plain os.ReadFile failure).
func FromError(err error, file, source string) *Report {
	switch e := err.(type) {
	case *lexer.Error:
		return New(file, source, e.Pos.Line, e.Pos.Column, e.Message)
	case *parser.Error:
		return New(file, source, e.Pos.Line, e.Pos.Column, e.Message)
	case *runtime.RuntimeError:
		return New(file, source, e.Line, e.Column, e.Message)
	default:
		return New(file, source, 0, 0, err.Error())
	}
}
