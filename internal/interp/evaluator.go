// Package interp walks the syntax tree produced by the parser against a
// mutable Environment, dispatching the Pantheon of built-ins and user
// functions, and splicing grimoire imports into the current globals.
//
// Modeled on CWBudde-go-dws's internal/interp/evaluator package in
// structure (a single Evaluator type exposing Run/RunProgram entry points
// plus one dispatch method per node variety) but not in mechanism: this
// evaluator has no class/interface/generics machinery to fall back to a
// CoreEvaluator for, and it threads a distinct non-local-return signal
// through every statement-execution path rather than only tracking
// values, per the language's own Design Notes on modeling `hunt` as a
// StepOutcome rather than reusing the error channel.
package interp

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rwnicholas/WitcherScript/internal/ast"
	"github.com/rwnicholas/WitcherScript/internal/interp/builtins"
	"github.com/rwnicholas/WitcherScript/internal/lexer"
	"github.com/rwnicholas/WitcherScript/internal/parser"
	"github.com/rwnicholas/WitcherScript/internal/runtime"
)

// outcome tags whether a statement sequence completed normally or is
// unwinding toward an enclosing call via `hunt`.
type outcome int

const (
	outcomeNormal outcome = iota
	outcomeReturning
)

// Config mirrors the teacher's Config/DefaultConfig pattern, letting an
// embedder wire standard streams without reaching into Evaluator fields
// directly.
type Config struct {
	Stdout io.Writer
	Stdin  io.Reader
}

// DefaultConfig writes nowhere and reads nothing, matching a headless
// embedding that supplies its own streams via New.
func DefaultConfig() Config {
	return Config{Stdout: io.Discard, Stdin: nil}
}

// Evaluator holds the process-wide state a running program accumulates:
// globals/frames (via Environment), the Pantheon, and the set of
// absolute paths currently or previously imported.
type Evaluator struct {
	env      *runtime.Environment
	builtins *builtins.Registry
	imported map[string]bool
	baseDir  string
}

// New returns an Evaluator with a fresh Environment and the default
// Pantheon wired to stdout/stdin supplied via cfg.
func New(cfg Config) *Evaluator {
	return &Evaluator{
		env:      runtime.NewEnvironment(),
		builtins: builtins.NewDefaultRegistry(cfg.Stdout, cfg.Stdin),
		imported: make(map[string]bool),
	}
}

// Env exposes the Environment for embedders inspecting globals between
// REPL lines.
func (e *Evaluator) Env() *runtime.Environment { return e.env }

// SetBaseDir fixes the directory grimoire paths are resolved relative to
// (typically the directory of the entry script). Defaults to the process
// working directory when unset.
func (e *Evaluator) SetBaseDir(dir string) { e.baseDir = dir }

// Run parses and evaluates source text top to bottom, returning the
// first RuntimeError encountered (or the underlying lex/parse error).
func (e *Evaluator) Run(source string) error {
	prog, err := parser.ParseSource(source)
	if err != nil {
		return err
	}
	return e.RunProgram(prog)
}

// RunProgram evaluates an already-parsed program.
func (e *Evaluator) RunProgram(prog *ast.Program) error {
	_, _, err := e.execStatements(prog.Statements)
	return err
}

// execStatements runs stmts in order, stopping early on an error or a
// `hunt` unwind. The returned outcome and Value propagate to the caller
// untouched so a nested block passes non-local return straight through
// without introducing a scope of its own.
func (e *Evaluator) execStatements(stmts []ast.Statement) (runtime.Value, outcome, error) {
	result := runtime.Value(runtime.TheUnit)
	for _, stmt := range stmts {
		v, oc, err := e.execStatement(stmt)
		if err != nil {
			return nil, outcomeNormal, err
		}
		if oc == outcomeReturning {
			return v, oc, nil
		}
		result = v
	}
	return result, outcomeNormal, nil
}

func (e *Evaluator) execStatement(stmt ast.Statement) (runtime.Value, outcome, error) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		v, err := e.evalExpr(s.Initializer)
		if err != nil {
			return nil, outcomeNormal, err
		}
		e.env.Set(s.Name, v)
		return runtime.TheUnit, outcomeNormal, nil

	case *ast.If:
		cond, err := e.evalExpr(s.Condition)
		if err != nil {
			return nil, outcomeNormal, err
		}
		if cond.Truthy() {
			return e.execStatements(s.Then)
		}
		if s.Else != nil {
			return e.execStatements(s.Else)
		}
		return runtime.TheUnit, outcomeNormal, nil

	case *ast.While:
		for {
			cond, err := e.evalExpr(s.Condition)
			if err != nil {
				return nil, outcomeNormal, err
			}
			if !cond.Truthy() {
				break
			}
			v, oc, err := e.execStatements(s.Body)
			if err != nil {
				return nil, outcomeNormal, err
			}
			if oc == outcomeReturning {
				return v, oc, nil
			}
		}
		return runtime.TheUnit, outcomeNormal, nil

	case *ast.For:
		return e.execFor(s)

	case *ast.FuncDef:
		fn := &runtime.Function{Name: s.Name, Params: s.Params, Body: s.Body}
		e.env.Set(s.Name, fn)
		return runtime.TheUnit, outcomeNormal, nil

	case *ast.Return:
		if s.Value == nil {
			return runtime.TheUnit, outcomeReturning, nil
		}
		v, err := e.evalExpr(s.Value)
		if err != nil {
			return nil, outcomeNormal, err
		}
		return v, outcomeReturning, nil

	case *ast.Import:
		if err := e.runImport(s); err != nil {
			return nil, outcomeNormal, err
		}
		return runtime.TheUnit, outcomeNormal, nil

	case *ast.ExprStmt:
		v, err := e.evalExpr(s.Expression)
		if err != nil {
			return nil, outcomeNormal, err
		}
		return v, outcomeNormal, nil

	default:
		return nil, outcomeNormal, fmt.Errorf("interp: unhandled statement node %T", stmt)
	}
}

func (e *Evaluator) execFor(s *ast.For) (runtime.Value, outcome, error) {
	iterable, err := e.evalExpr(s.Iterable)
	if err != nil {
		return nil, outcomeNormal, err
	}
	seq, ok := iterable.(*runtime.Bestiary)
	if !ok {
		return nil, outcomeNormal, runtime.NewRuntimeError(runtime.TypeMismatch,
			fmt.Sprintf("yrden requires a bestiary, got %s", iterable.Type())).WithPos(s.Token.Pos.Line, s.Token.Pos.Column)
	}
	// Index by position so mutation of seq during iteration (permitted by
	// the language) is observed on subsequent iterations.
	for i := 0; i < len(seq.Elements); i++ {
		e.env.Set(s.LoopVar, seq.Elements[i])
		v, oc, err := e.execStatements(s.Body)
		if err != nil {
			return nil, outcomeNormal, err
		}
		if oc == outcomeReturning {
			return v, oc, nil
		}
	}
	return runtime.TheUnit, outcomeNormal, nil
}

func (e *Evaluator) runImport(s *ast.Import) error {
	path := s.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.baseDir, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return runtime.NewRuntimeError(runtime.GrimoireNotFound, fmt.Sprintf("grimoire not found: %s", s.Path)).WithPos(s.Token.Pos.Line, s.Token.Pos.Column)
	}
	if e.imported[abs] {
		return runtime.NewRuntimeError(runtime.CircularImport, fmt.Sprintf("circular import: %s", s.Path)).WithPos(s.Token.Pos.Line, s.Token.Pos.Column)
	}

	source, err := readSource(abs)
	if err != nil {
		return runtime.NewRuntimeError(runtime.GrimoireNotFound, fmt.Sprintf("grimoire not found: %s", s.Path)).WithPos(s.Token.Pos.Line, s.Token.Pos.Column)
	}
	e.imported[abs] = true

	toks, err := lexer.Tokenize(source)
	if err != nil {
		return err
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		return err
	}

	savedBase := e.baseDir
	e.baseDir = filepath.Dir(abs)
	savedFrames := e.env.DetachFrames()
	_, _, err = e.execStatements(prog.Statements)
	e.env.AttachFrames(savedFrames)
	e.baseDir = savedBase
	return err
}
