package builtins

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rwnicholas/WitcherScript/internal/runtime"
)

// NewDefaultRegistry returns a Registry carrying the fixed seven built-ins
// the language specifies. out is where medallion writes (nil defaults to
// discarding output); in is where sigh reads a line from (nil defaults to
// always returning an empty line).
func NewDefaultRegistry(out io.Writer, in io.Reader) *Registry {
	if out == nil {
		out = io.Discard
	}
	r := NewRegistry()
	reader := bufio.NewReader(in)

	r.Register("medallion", medallion(out), CategoryIO, "prints space-joined textual forms followed by a newline")
	r.Register("sigh", sigh(out, in, reader), CategoryIO, "reads one line from standard input, with an optional prompt")
	r.Register("witcher_speed", witcherSpeed, CategoryText, "repeats text n times")
	r.Register("monster_count", monsterCount, CategorySeq, "element or character count")
	r.Register("add_to_bestiary", addToBestiary, CategorySeq, "appends a value in place, returning the same sequence")
	r.Register("hunter_instinct", hunterInstinct, CategoryReflect, "names the runtime kind of a value")
	r.Register("potion_effect", potionEffect, CategoryMath, "equivalent to a + b")

	return r
}

func medallion(out io.Writer) Func {
	return func(args []runtime.Value) (runtime.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return runtime.TheUnit, nil
	}
}

func sigh(out io.Writer, in io.Reader, reader *bufio.Reader) Func {
	return func(args []runtime.Value) (runtime.Value, error) {
		if len(args) > 1 {
			return nil, runtime.NewRuntimeError(runtime.ArityMismatch, fmt.Sprintf("sigh() expects at most 1 argument, got %d", len(args)))
		}
		if len(args) == 1 {
			fmt.Fprint(out, args[0].String())
		}
		if in == nil {
			return &runtime.Text{Value: ""}, nil
		}
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return &runtime.Text{Value: ""}, nil
		}
		return &runtime.Text{Value: strings.TrimRight(line, "\r\n")}, nil
	}
}

func witcherSpeed(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, runtime.NewRuntimeError(runtime.ArityMismatch, fmt.Sprintf("witcher_speed() expects exactly 2 arguments, got %d", len(args)))
	}
	text, ok := args[0].(*runtime.Text)
	if !ok {
		return nil, runtime.NewRuntimeError(runtime.TypeMismatch, fmt.Sprintf("witcher_speed() expects text as its first argument, got %s", args[0].Type()))
	}
	n, ok := args[1].(*runtime.Number)
	if !ok {
		return nil, runtime.NewRuntimeError(runtime.TypeMismatch, fmt.Sprintf("witcher_speed() expects number as its second argument, got %s", args[1].Type()))
	}
	count := int(n.Value)
	if count < 0 {
		count = 0
	}
	return &runtime.Text{Value: strings.Repeat(text.Value, count)}, nil
}

func monsterCount(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, runtime.NewRuntimeError(runtime.ArityMismatch, fmt.Sprintf("monster_count() expects exactly 1 argument, got %d", len(args)))
	}
	switch v := args[0].(type) {
	case *runtime.Bestiary:
		return &runtime.Number{Value: float64(len(v.Elements))}, nil
	case *runtime.Text:
		return &runtime.Number{Value: float64(len([]rune(v.Value)))}, nil
	default:
		return nil, runtime.NewRuntimeError(runtime.TypeMismatch, fmt.Sprintf("monster_count() expects bestiary or text, got %s", args[0].Type()))
	}
}

func addToBestiary(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, runtime.NewRuntimeError(runtime.ArityMismatch, fmt.Sprintf("add_to_bestiary() expects exactly 2 arguments, got %d", len(args)))
	}
	seq, ok := args[0].(*runtime.Bestiary)
	if !ok {
		return nil, runtime.NewRuntimeError(runtime.TypeMismatch, fmt.Sprintf("add_to_bestiary() expects a bestiary as its first argument, got %s", args[0].Type()))
	}
	seq.Elements = append(seq.Elements, args[1])
	return seq, nil
}

func hunterInstinct(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, runtime.NewRuntimeError(runtime.ArityMismatch, fmt.Sprintf("hunter_instinct() expects exactly 1 argument, got %d", len(args)))
	}
	switch v := args[0].(type) {
	case *runtime.Bool:
		if v.Value {
			return &runtime.Text{Value: "truth"}, nil
		}
		return &runtime.Text{Value: "falsehood"}, nil
	case *runtime.Number:
		return &runtime.Text{Value: "number"}, nil
	case *runtime.Text:
		return &runtime.Text{Value: "text"}, nil
	case *runtime.Bestiary:
		return &runtime.Text{Value: "bestiary"}, nil
	default:
		return &runtime.Text{Value: "unknown"}, nil
	}
}

func potionEffect(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, runtime.NewRuntimeError(runtime.ArityMismatch, fmt.Sprintf("potion_effect() expects exactly 2 arguments, got %d", len(args)))
	}
	return Add(args[0], args[1])
}

// Add implements the `+` operator's semantics, shared between the
// evaluator's BinOp handling and potion_effect so the two never drift.
func Add(left, right runtime.Value) (runtime.Value, error) {
	if _, ok := left.(*runtime.Text); ok {
		return &runtime.Text{Value: left.String() + right.String()}, nil
	}
	if _, ok := right.(*runtime.Text); ok {
		return &runtime.Text{Value: left.String() + right.String()}, nil
	}
	ln, lok := left.(*runtime.Number)
	rn, rok := right.(*runtime.Number)
	if !lok || !rok {
		return nil, runtime.NewRuntimeError(runtime.TypeMismatch, fmt.Sprintf("cannot add %s and %s", left.Type(), right.Type()))
	}
	return &runtime.Number{Value: ln.Value + rn.Value}, nil
}
