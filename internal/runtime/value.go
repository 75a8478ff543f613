// Package runtime holds WitcherScript's value model and execution
// environment: the tagged Value union, the globals+frame-stack
// Environment, and the error kinds a running program can raise.
//
// Modeled on CWBudde-go-dws's internal/interp/runtime package: Value types
// as small structs behind a common interface, Type()/String() on each, a
// pointer receiver for anything requiring shared-mutable identity. The
// nested-scope Environment of that package is deliberately NOT carried
// over — this language has no lexical block scoping (see Environment in
// environment.go), so Environment here is a flat globals map plus a frame
// stack rather than an outer-chain.
package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rwnicholas/WitcherScript/internal/ast"
)

// Value is the runtime representation of any WitcherScript datum.
type Value interface {
	Type() string
	String() string
	Truthy() bool
}

// Number is an IEEE-754 double; WitcherScript has no separate integer type.
type Number struct {
	Value float64
}

func (n *Number) Type() string { return "number" }

func (n *Number) String() string {
	if n.Value == float64(int64(n.Value)) {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Number) Truthy() bool { return n.Value != 0 }

// Text is an immutable string.
type Text struct {
	Value string
}

func (t *Text) Type() string   { return "text" }
func (t *Text) String() string { return t.Value }
func (t *Text) Truthy() bool   { return t.Value != "" }

// Bool is truth/falsehood.
type Bool struct {
	Value bool
}

func (b *Bool) Type() string { return "truth" }
func (b *Bool) String() string {
	if b.Value {
		return "truth"
	}
	return "falsehood"
}
func (b *Bool) Truthy() bool { return b.Value }

// Bestiary is the language's ordered, mutable sequence type. It is always
// handled through a pointer so that aliases observe each other's
// mutations, mirroring the teacher's *ArrayValue shared-identity pattern.
type Bestiary struct {
	Elements []Value
}

func (b *Bestiary) Type() string { return "bestiary" }

func (b *Bestiary) String() string {
	parts := make([]string, len(b.Elements))
	for i, e := range b.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (b *Bestiary) Truthy() bool { return len(b.Elements) > 0 }

// Function is a first-class handle over a user-defined aard. It captures
// no environment: free names inside Body resolve against globals at call
// time, never against the frame that was active when the Function value
// was created.
type Function struct {
	Name   string
	Params []string
	Body   []ast.Statement
}

func (f *Function) Type() string   { return "function" }
func (f *Function) String() string { return fmt.Sprintf("<aard %s/%d>", f.Name, len(f.Params)) }
func (f *Function) Truthy() bool   { return true }

// Unit is the absence of a value, yielded by statements and by medallion.
type Unit struct{}

func (Unit) Type() string   { return "unit" }
func (Unit) String() string { return "" }
func (Unit) Truthy() bool   { return false }

var TheUnit = Unit{}
