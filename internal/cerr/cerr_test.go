package cerr

import (
	"strings"
	"testing"

	"github.com/rwnicholas/WitcherScript/internal/runtime"
)

func TestFormatIncludesHeaderAndCaret(t *testing.T) {
	r := New("script.witcher", "contract x = 10 / 0", 1, 18, "Division by zero")
	out := r.Format()
	if !strings.Contains(out, "script.witcher:1:18: Division by zero") {
		t.Fatalf("missing header in %q", out)
	}
	if !strings.Contains(out, "contract x = 10 / 0") {
		t.Fatalf("missing source line in %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("missing caret in %q", out)
	}
}

func TestFormatWithoutFileOmitsFileName(t *testing.T) {
	r := New("", "medallion(ghost)", 1, 11, `undefined name "ghost"`)
	out := r.Format()
	if strings.HasPrefix(out, "script") {
		t.Fatalf("unexpected file prefix in %q", out)
	}
	if !strings.HasPrefix(out, "1:11:") {
		t.Fatalf("expected line:column prefix, got %q", out)
	}
}

func TestFromErrorUnwrapsRuntimeError(t *testing.T) {
	rtErr := runtime.NewRuntimeError(runtime.DivisionByZero, "Division by zero").WithPos(3, 9)
	r := FromError(rtErr, "f.witcher", "")
	if r.Line != 3 || r.Column != 9 || r.Message != "Division by zero" {
		t.Fatalf("unexpected report: %+v", r)
	}
}
