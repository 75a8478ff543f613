package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rwnicholas/WitcherScript/internal/runtime"
)

func runCapture(t *testing.T, source string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	e := New(Config{Stdout: &out})
	err := e.Run(source)
	return out.String(), err
}

func TestPrintHelloWitcher(t *testing.T) {
	out, err := runCapture(t, `medallion("Hello, Witcher!")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hello, Witcher!\n" {
		t.Fatalf("got %q", out)
	}
}

func TestForLoopSumsBestiary(t *testing.T) {
	out, err := runCapture(t, `
contract n = 5
contract s = 0
yrden i -> [1,2,3,4,5] {
	s = s + i
}
medallion(s)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "15\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRecursiveFactorial(t *testing.T) {
	out, err := runCapture(t, `
aard fact(n) {
	igni n <= 1 {
		hunt 1
	} elixir {
		hunt n * fact(n - 1)
	}
}
medallion(fact(5))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "120\n" {
		t.Fatalf("got %q", out)
	}
}

func TestAddToBestiaryThenCount(t *testing.T) {
	out, err := runCapture(t, `
contract xs = [1,2,3]
add_to_bestiary(xs, 4)
medallion(monster_count(xs))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "4\n" {
		t.Fatalf("got %q", out)
	}
}

func TestStringConcatWithNumber(t *testing.T) {
	out, err := runCapture(t, `medallion("answer: " + 42)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "answer: 42\n" {
		t.Fatalf("got %q", out)
	}
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := runCapture(t, `contract x = 10 / 0`)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "Division by zero") {
		t.Fatalf("expected division-by-zero message, got %v", err)
	}
	rtErr, ok := err.(*runtime.RuntimeError)
	if !ok || rtErr.Kind != runtime.DivisionByZero {
		t.Fatalf("expected DivisionByZero kind, got %v", err)
	}
}

func TestFramesEmptyAfterRun(t *testing.T) {
	e := New(DefaultConfig())
	if err := e.Run(`
aard id(x) { hunt x }
contract y = id(5)`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Env().InFrame() {
		t.Fatalf("expected no active frame after top-level run completes")
	}
}

func TestFramePoppedOnRuntimeFaultInsideCall(t *testing.T) {
	e := New(DefaultConfig())
	err := e.Run(`
aard boom() { hunt 1 / 0 }
boom()`)
	if err == nil {
		t.Fatalf("expected error")
	}
	if e.Env().InFrame() {
		t.Fatalf("expected frame popped even after a runtime fault inside the call")
	}
}

func TestNoBlockScopeLeaksLoopBodyBindingIntoEnclosing(t *testing.T) {
	out, err := runCapture(t, `
yrden beast -> ["griffin"] {
	contract found = beast
}
medallion(found)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "griffin\n" {
		t.Fatalf("expected loop-body binding visible after loop ends (no block scope), got %q", out)
	}
}

func TestAndOrReturnOperandValue(t *testing.T) {
	out, err := runCapture(t, `
medallion(0 or "fallback")
medallion(truth and "second")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "fallback\nsecond\n" {
		t.Fatalf("got %q", out)
	}
}

func TestIndexOutOfRangeIsRuntimeError(t *testing.T) {
	_, err := runCapture(t, `
contract xs = [1,2,3]
xs[5] = 9`)
	if err == nil {
		t.Fatalf("expected error")
	}
	rtErr, ok := err.(*runtime.RuntimeError)
	if !ok || rtErr.Kind != runtime.InvalidIndex {
		t.Fatalf("expected InvalidIndex kind, got %v", err)
	}
}

func TestEmptyBestiaryLoopRunsZeroTimes(t *testing.T) {
	out, err := runCapture(t, `
contract visits = 0
yrden x -> [] {
	visits = visits + 1
}
medallion(visits)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n" {
		t.Fatalf("got %q", out)
	}
}

func TestUndefinedNameError(t *testing.T) {
	_, err := runCapture(t, `medallion(ghost)`)
	rtErr, ok := err.(*runtime.RuntimeError)
	if !ok || rtErr.Kind != runtime.UndefinedName {
		t.Fatalf("expected UndefinedName kind, got %v", err)
	}
}

func TestArityMismatchOnUserFunction(t *testing.T) {
	_, err := runCapture(t, `
aard takesOne(x) { hunt x }
takesOne(1, 2)`)
	rtErr, ok := err.(*runtime.RuntimeError)
	if !ok || rtErr.Kind != runtime.ArityMismatch {
		t.Fatalf("expected ArityMismatch kind, got %v", err)
	}
}

func TestNotNotDoubleNegation(t *testing.T) {
	out, err := runCapture(t, `medallion(not not truth)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "truth\n" {
		t.Fatalf("got %q", out)
	}
}

func TestBangIsEquivalentToNot(t *testing.T) {
	out, err := runCapture(t, `medallion(!truth)
medallion(!falsehood)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "falsehood\ntruth\n" {
		t.Fatalf("got %q", out)
	}
}

func TestModuloPreservesFraction(t *testing.T) {
	out, err := runCapture(t, `medallion(5.5 % 2)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1.5\n" {
		t.Fatalf("got %q", out)
	}
}

func TestModuloUsesFlooredSign(t *testing.T) {
	out, err := runCapture(t, `medallion(-5 % 3)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n" {
		t.Fatalf("got %q", out)
	}
}
