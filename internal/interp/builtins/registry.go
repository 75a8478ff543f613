// Package builtins holds WitcherScript's fixed table of built-in
// functions — the Pantheon — looked up before any user definition.
//
// Modeled on CWBudde-go-dws's internal/interp/builtins.Registry, with two
// deliberate departures: no sync.RWMutex (the language's concurrency
// model in §5 is strictly single-threaded, so the lock the teacher needs
// for a library consumed from multiple goroutines would be dead weight
// here), and functions return (runtime.Value, error) rather than folding
// failures into an error-shaped Value — the evaluator's error channel is
// a real Go error from top to bottom, per the language's RuntimeError
// design.
package builtins

import (
	"sort"

	"github.com/rwnicholas/WitcherScript/internal/runtime"
)

// Category groups related built-ins for introspection/documentation.
type Category string

const (
	CategoryIO      Category = "io"
	CategoryText    Category = "text"
	CategorySeq     Category = "sequence"
	CategoryReflect Category = "reflection"
	CategoryMath    Category = "math"
)

// Func is the signature every built-in implements.
type Func func(args []runtime.Value) (runtime.Value, error)

// Info describes one registered built-in.
type Info struct {
	Name        string
	Function    Func
	Category    Category
	Description string
}

// Registry is the built-in lookup table, keyed by exact (case-sensitive)
// name — WitcherScript identifiers are case-sensitive, unlike the
// teacher's case-insensitive DWScript names.
type Registry struct {
	functions map[string]*Info
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{functions: make(map[string]*Info)}
}

// Register adds or replaces a built-in.
func (r *Registry) Register(name string, fn Func, category Category, description string) {
	r.functions[name] = &Info{Name: name, Function: fn, Category: category, Description: description}
}

// Lookup finds a built-in by exact name.
func (r *Registry) Lookup(name string) (Func, bool) {
	info, ok := r.functions[name]
	if !ok {
		return nil, false
	}
	return info.Function, true
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.functions[name]
	return ok
}

// AllFunctions returns every registered built-in, sorted by name.
func (r *Registry) AllFunctions() []*Info {
	result := make([]*Info, 0, len(r.functions))
	for _, info := range r.functions {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Default returns a Registry pre-populated with the Pantheon fixed by
// the language — callers needing a custom reader/writer should build one
// with NewDefaultRegistry instead.
func Default() *Registry {
	return NewDefaultRegistry(nil, nil)
}
