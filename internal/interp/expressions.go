package interp

import (
	"fmt"
	"math"
	"strings"

	"github.com/rwnicholas/WitcherScript/internal/ast"
	"github.com/rwnicholas/WitcherScript/internal/interp/builtins"
	"github.com/rwnicholas/WitcherScript/internal/runtime"
	"github.com/rwnicholas/WitcherScript/internal/token"
)

func (e *Evaluator) evalExpr(expr ast.Expression) (runtime.Value, error) {
	switch x := expr.(type) {
	case *ast.NumberLit:
		return &runtime.Number{Value: x.Value}, nil

	case *ast.TextLit:
		return &runtime.Text{Value: x.Value}, nil

	case *ast.BoolLit:
		return &runtime.Bool{Value: x.Value}, nil

	case *ast.Ident:
		v, ok := e.env.Get(x.Name)
		if !ok {
			return nil, runtime.NewRuntimeError(runtime.UndefinedName, fmt.Sprintf("undefined name %q", x.Name)).WithPos(x.Token.Pos.Line, x.Token.Pos.Column)
		}
		return v, nil

	case *ast.ArrayLit:
		elements := make([]runtime.Value, len(x.Elements))
		for i, el := range x.Elements {
			v, err := e.evalExpr(el)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return &runtime.Bestiary{Elements: elements}, nil

	case *ast.BinOp:
		return e.evalBinOp(x)

	case *ast.UnaryOp:
		return e.evalUnaryOp(x)

	case *ast.Assign:
		v, err := e.evalExpr(x.Value)
		if err != nil {
			return nil, err
		}
		e.env.Set(x.Name, v)
		return v, nil

	case *ast.IndexAssign:
		return e.evalIndexAssign(x)

	case *ast.IndexAccess:
		return e.evalIndexAccess(x)

	case *ast.Call:
		return e.evalCall(x)

	default:
		return nil, fmt.Errorf("interp: unhandled expression node %T", expr)
	}
}

func (e *Evaluator) evalBinOp(x *ast.BinOp) (runtime.Value, error) {
	left, err := e.evalExpr(x.Left)
	if err != nil {
		return nil, err
	}

	// and/or short-circuit and return an operand value, not necessarily boolean.
	switch x.Operator {
	case "and":
		if !left.Truthy() {
			return left, nil
		}
		return e.evalExpr(x.Right)
	case "or":
		if left.Truthy() {
			return left, nil
		}
		return e.evalExpr(x.Right)
	}

	right, err := e.evalExpr(x.Right)
	if err != nil {
		return nil, err
	}

	pos := x.Token.Pos
	switch x.Operator {
	case "+":
		v, err := builtins.Add(left, right)
		if err != nil {
			return nil, annotatePos(err, pos.Line, pos.Column)
		}
		return v, nil
	case "-", "*", "/", "%":
		v, err := e.evalArith(x.Operator, left, right)
		if err != nil {
			return nil, annotatePos(err, pos.Line, pos.Column)
		}
		return v, nil
	case "<", ">", "<=", ">=":
		v, err := e.evalCompare(x.Operator, left, right)
		if err != nil {
			return nil, annotatePos(err, pos.Line, pos.Column)
		}
		return v, nil
	case "==":
		return &runtime.Bool{Value: structuralEquals(left, right)}, nil
	case "!=":
		return &runtime.Bool{Value: !structuralEquals(left, right)}, nil
	default:
		return nil, fmt.Errorf("interp: unknown binary operator %q", x.Operator)
	}
}

func (e *Evaluator) evalArith(op string, left, right runtime.Value) (runtime.Value, error) {
	ln, lok := left.(*runtime.Number)
	rn, rok := right.(*runtime.Number)
	if !lok || !rok {
		return nil, runtime.NewRuntimeError(runtime.TypeMismatch, fmt.Sprintf("cannot apply %q to %s and %s", op, left.Type(), right.Type()))
	}
	switch op {
	case "-":
		return &runtime.Number{Value: ln.Value - rn.Value}, nil
	case "*":
		return &runtime.Number{Value: ln.Value * rn.Value}, nil
	case "/":
		if rn.Value == 0 {
			return nil, runtime.NewRuntimeError(runtime.DivisionByZero, "Division by zero")
		}
		return &runtime.Number{Value: ln.Value / rn.Value}, nil
	case "%":
		if rn.Value == 0 {
			return nil, runtime.NewRuntimeError(runtime.DivisionByZero, "Division by zero")
		}
		return &runtime.Number{Value: pythonMod(ln.Value, rn.Value)}, nil
	}
	return nil, fmt.Errorf("interp: unknown arithmetic operator %q", op)
}

func (e *Evaluator) evalCompare(op string, left, right runtime.Value) (runtime.Value, error) {
	var cmp int
	switch l := left.(type) {
	case *runtime.Number:
		r, ok := right.(*runtime.Number)
		if !ok {
			return nil, runtime.NewRuntimeError(runtime.TypeMismatch, fmt.Sprintf("cannot compare %s with %s", left.Type(), right.Type()))
		}
		cmp = cmpFloat(l.Value, r.Value)
	case *runtime.Text:
		r, ok := right.(*runtime.Text)
		if !ok {
			return nil, runtime.NewRuntimeError(runtime.TypeMismatch, fmt.Sprintf("cannot compare %s with %s", left.Type(), right.Type()))
		}
		cmp = strings.Compare(l.Value, r.Value)
	default:
		return nil, runtime.NewRuntimeError(runtime.TypeMismatch, fmt.Sprintf("cannot compare %s with %s", left.Type(), right.Type()))
	}

	var result bool
	switch op {
	case "<":
		result = cmp < 0
	case ">":
		result = cmp > 0
	case "<=":
		result = cmp <= 0
	case ">=":
		result = cmp >= 0
	}
	return &runtime.Bool{Value: result}, nil
}

// pythonMod implements floored-division modulo, matching Python's `%`
// (the result takes the sign of the divisor, unlike Go's truncated
// math.Mod): -5 % 3 == 1, not -2.
func pythonMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// structuralEquals implements `==`/`!=`: typed and structural, never
// erroring — values of different kinds simply compare unequal.
func structuralEquals(left, right runtime.Value) bool {
	switch l := left.(type) {
	case *runtime.Number:
		r, ok := right.(*runtime.Number)
		return ok && l.Value == r.Value
	case *runtime.Text:
		r, ok := right.(*runtime.Text)
		return ok && l.Value == r.Value
	case *runtime.Bool:
		r, ok := right.(*runtime.Bool)
		return ok && l.Value == r.Value
	case *runtime.Bestiary:
		r, ok := right.(*runtime.Bestiary)
		if !ok || len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !structuralEquals(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	case runtime.Unit:
		_, ok := right.(runtime.Unit)
		return ok
	default:
		return false
	}
}

func (e *Evaluator) evalUnaryOp(x *ast.UnaryOp) (runtime.Value, error) {
	operand, err := e.evalExpr(x.Operand)
	if err != nil {
		return nil, err
	}
	switch x.Token.Type {
	case token.NOT:
		return &runtime.Bool{Value: !operand.Truthy()}, nil
	case token.MINUS:
		n, ok := operand.(*runtime.Number)
		if !ok {
			return nil, runtime.NewRuntimeError(runtime.TypeMismatch, fmt.Sprintf("unary '-' requires a number, got %s", operand.Type())).WithPos(x.Token.Pos.Line, x.Token.Pos.Column)
		}
		return &runtime.Number{Value: -n.Value}, nil
	default:
		return nil, fmt.Errorf("interp: unknown unary operator %q", x.Operator)
	}
}

func (e *Evaluator) evalIndexAccess(x *ast.IndexAccess) (runtime.Value, error) {
	target, err := e.evalExpr(x.Target)
	if err != nil {
		return nil, err
	}
	idxVal, err := e.evalExpr(x.Index)
	if err != nil {
		return nil, err
	}

	switch t := target.(type) {
	case *runtime.Bestiary:
		i, err := boundsCheckedIndex(idxVal, len(t.Elements))
		if err != nil {
			return nil, annotatePos(err, x.Token.Pos.Line, x.Token.Pos.Column)
		}
		return t.Elements[i], nil
	case *runtime.Text:
		runes := []rune(t.Value)
		i, err := boundsCheckedIndex(idxVal, len(runes))
		if err != nil {
			return nil, annotatePos(err, x.Token.Pos.Line, x.Token.Pos.Column)
		}
		return &runtime.Text{Value: string(runes[i])}, nil
	default:
		return nil, runtime.NewRuntimeError(runtime.TypeMismatch, fmt.Sprintf("cannot index into %s", target.Type())).WithPos(x.Token.Pos.Line, x.Token.Pos.Column)
	}
}

func (e *Evaluator) evalIndexAssign(x *ast.IndexAssign) (runtime.Value, error) {
	target, err := e.evalExpr(x.Target)
	if err != nil {
		return nil, err
	}
	seq, ok := target.(*runtime.Bestiary)
	if !ok {
		return nil, runtime.NewRuntimeError(runtime.TypeMismatch, fmt.Sprintf("cannot assign into %s", target.Type())).WithPos(x.Token.Pos.Line, x.Token.Pos.Column)
	}
	idxVal, err := e.evalExpr(x.Index)
	if err != nil {
		return nil, err
	}
	i, err := boundsCheckedIndex(idxVal, len(seq.Elements))
	if err != nil {
		return nil, annotatePos(err, x.Token.Pos.Line, x.Token.Pos.Column)
	}
	value, err := e.evalExpr(x.Value)
	if err != nil {
		return nil, err
	}
	seq.Elements[i] = value
	return value, nil
}

func boundsCheckedIndex(idxVal runtime.Value, length int) (int, error) {
	n, ok := idxVal.(*runtime.Number)
	if !ok {
		return 0, runtime.NewRuntimeError(runtime.TypeMismatch, fmt.Sprintf("index must be a number, got %s", idxVal.Type()))
	}
	i := int(n.Value)
	if i < 0 || i >= length {
		return 0, runtime.NewRuntimeError(runtime.InvalidIndex, fmt.Sprintf("Invalid index %d", i))
	}
	return i, nil
}

func annotatePos(err error, line, col int) error {
	if rtErr, ok := err.(*runtime.RuntimeError); ok {
		return rtErr.WithPos(line, col)
	}
	return err
}

func (e *Evaluator) evalCall(x *ast.Call) (runtime.Value, error) {
	args := make([]runtime.Value, len(x.Args))
	for i, a := range x.Args {
		v, err := e.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if fn, ok := e.builtins.Lookup(x.Name); ok {
		v, err := fn(args)
		if err != nil {
			return nil, annotatePos(err, x.Token.Pos.Line, x.Token.Pos.Column)
		}
		return v, nil
	}

	callee, ok := e.env.Get(x.Name)
	if !ok {
		return nil, runtime.NewRuntimeError(runtime.UndefinedName, fmt.Sprintf("undefined name %q", x.Name)).WithPos(x.Token.Pos.Line, x.Token.Pos.Column)
	}
	fn, ok := callee.(*runtime.Function)
	if !ok {
		return nil, runtime.NewRuntimeError(runtime.NotCallable, fmt.Sprintf("%q is not callable", x.Name)).WithPos(x.Token.Pos.Line, x.Token.Pos.Column)
	}
	if len(args) != len(fn.Params) {
		return nil, runtime.NewRuntimeError(runtime.ArityMismatch,
			fmt.Sprintf("%s() expects %d argument(s), got %d", x.Name, len(fn.Params), len(args))).WithPos(x.Token.Pos.Line, x.Token.Pos.Column)
	}

	e.env.PushFrame()
	defer e.env.PopFrame()
	for i, p := range fn.Params {
		e.env.Bind(p, args[i])
	}

	result, oc, err := e.execStatements(fn.Body)
	if err != nil {
		return nil, err
	}
	if oc == outcomeReturning {
		return result, nil
	}
	return runtime.TheUnit, nil
}
