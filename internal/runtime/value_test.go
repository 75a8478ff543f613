package runtime

import "testing"

func TestNumberStringDropsTrailingZero(t *testing.T) {
	n := &Number{Value: 5}
	if n.String() != "5" {
		t.Fatalf("expected %q, got %q", "5", n.String())
	}
}

func TestNumberStringKeepsFraction(t *testing.T) {
	n := &Number{Value: 2.5}
	if n.String() != "2.5" {
		t.Fatalf("expected %q, got %q", "2.5", n.String())
	}
}

func TestTruthiness(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"zero", &Number{Value: 0}, false},
		{"nonzero", &Number{Value: 1}, true},
		{"emptyText", &Text{Value: ""}, false},
		{"nonEmptyText", &Text{Value: "x"}, true},
		{"falsehood", &Bool{Value: false}, false},
		{"truth", &Bool{Value: true}, true},
		{"emptyBestiary", &Bestiary{}, false},
		{"nonEmptyBestiary", &Bestiary{Elements: []Value{&Number{Value: 1}}}, true},
		{"unit", TheUnit, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.Truthy(); got != c.want {
				t.Fatalf("Truthy() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestBestiaryAliasing(t *testing.T) {
	b := &Bestiary{Elements: []Value{&Number{Value: 1}}}
	alias := b
	alias.Elements = append(alias.Elements, &Number{Value: 2})
	if len(b.Elements) != 2 {
		t.Fatalf("expected mutation through alias to be visible, got %d elements", len(b.Elements))
	}
}

func TestBestiaryString(t *testing.T) {
	b := &Bestiary{Elements: []Value{&Number{Value: 1}, &Text{Value: "x"}}}
	if got, want := b.String(), "[1, x]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
