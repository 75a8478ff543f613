package runtime

import "testing"

func TestGlobalGetSet(t *testing.T) {
	env := NewEnvironment()
	env.Set("toxicity", &Number{Value: 10})
	v, ok := env.Get("toxicity")
	if !ok {
		t.Fatalf("expected toxicity to resolve")
	}
	if n := v.(*Number); n.Value != 10 {
		t.Fatalf("expected 10, got %v", n.Value)
	}
}

func TestUndefinedNameMisses(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Get("ghost"); ok {
		t.Fatalf("expected miss for undefined name")
	}
}

func TestFrameShadowsGlobalOnWrite(t *testing.T) {
	env := NewEnvironment()
	env.Set("x", &Number{Value: 1})
	env.PushFrame()
	env.Set("x", &Number{Value: 2})
	v, _ := env.Get("x")
	if v.(*Number).Value != 2 {
		t.Fatalf("expected frame write to shadow, got %v", v)
	}
	env.PopFrame()
	v, _ = env.Get("x")
	if v.(*Number).Value != 1 {
		t.Fatalf("expected global untouched after frame pop, got %v", v)
	}
}

func TestSetWritesGlobalWhenNoFrameActive(t *testing.T) {
	env := NewEnvironment()
	env.Set("y", &Number{Value: 42})
	if env.InFrame() {
		t.Fatalf("expected no active frame")
	}
	v, ok := env.Get("y")
	if !ok || v.(*Number).Value != 42 {
		t.Fatalf("expected global y=42, got %v ok=%v", v, ok)
	}
}

func TestBindRequiresActiveFrame(t *testing.T) {
	env := NewEnvironment()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic binding with no active frame")
		}
	}()
	env.Bind("p", &Number{Value: 1})
}

func TestSetGlobalVisibleFromInsideFrame(t *testing.T) {
	env := NewEnvironment()
	env.PushFrame()
	env.SetGlobal("g", &Text{Value: "hi"})
	v, ok := env.Get("g")
	if !ok || v.(*Text).Value != "hi" {
		t.Fatalf("expected global g visible from inside frame via fallback, got %v ok=%v", v, ok)
	}
}

func TestNoOuterScopeChaining(t *testing.T) {
	env := NewEnvironment()
	env.Set("loopVar", &Number{Value: 1})
	env.PushFrame()
	// Frame does not see the prior top-level assignment of loopVar as a
	// distinct enclosing scope - it is global, so it resolves via fallback,
	// but a fresh frame-local assignment must not touch globals.
	env.Bind("local", &Number{Value: 99})
	if _, ok := env.Get("loopVar"); !ok {
		t.Fatalf("expected global loopVar visible from within frame")
	}
	env.PopFrame()
	if _, ok := env.Get("local"); ok {
		t.Fatalf("expected frame-local binding to disappear after pop")
	}
}
