package runtime

// Environment is the process-wide name store: a globals map plus a stack
// of call frames. There is deliberately no outer-chain here, unlike the
// teacher's nested-scope Environment — per the language's Design Notes,
// blocks, loops, and conditionals introduce no scope of their own, so
// lookups only ever consult the top frame (if any is active) and then
// globals, never an intermediate chain of enclosing scopes.
type Environment struct {
	globals map[string]Value
	frames  []map[string]Value
}

// NewEnvironment returns an Environment with empty globals and no active
// frame.
func NewEnvironment() *Environment {
	return &Environment{globals: make(map[string]Value)}
}

// PushFrame activates a new call frame. Every PushFrame must be matched by
// a PopFrame on all exit paths, including a runtime fault.
func (e *Environment) PushFrame() {
	e.frames = append(e.frames, make(map[string]Value))
}

// PopFrame deactivates the innermost call frame.
func (e *Environment) PopFrame() {
	e.frames = e.frames[:len(e.frames)-1]
}

// InFrame reports whether a call frame is currently active.
func (e *Environment) InFrame() bool {
	return len(e.frames) > 0
}

// topFrame returns the innermost frame, or nil if none is active.
func (e *Environment) topFrame() map[string]Value {
	if len(e.frames) == 0 {
		return nil
	}
	return e.frames[len(e.frames)-1]
}

// Get resolves name against the innermost frame first, then globals.
func (e *Environment) Get(name string) (Value, bool) {
	if frame := e.topFrame(); frame != nil {
		if v, ok := frame[name]; ok {
			return v, true
		}
	}
	v, ok := e.globals[name]
	return v, ok
}

// Set writes name to the innermost active frame, or to globals when no
// frame is active. It never walks an outer chain: this is the one
// assignment target, by design.
func (e *Environment) Set(name string, v Value) {
	if frame := e.topFrame(); frame != nil {
		frame[name] = v
		return
	}
	e.globals[name] = v
}

// SetGlobal writes name directly into globals, bypassing any active
// frame. The importer does not call it: it routes grimoire definitions
// into globals with DetachFrames/AttachFrames.
func (e *Environment) SetGlobal(name string, v Value) {
	e.globals[name] = v
}

// DetachFrames removes and returns the active frame stack, leaving
// globals as the only resolution target. Used by the importer so that a
// grimoire's top-level definitions land in globals even when the
// `grimoire` directive itself appears inside an active call frame.
func (e *Environment) DetachFrames() []map[string]Value {
	frames := e.frames
	e.frames = nil
	return frames
}

// AttachFrames restores a frame stack previously removed by DetachFrames.
func (e *Environment) AttachFrames(frames []map[string]Value) {
	e.frames = frames
}

// Bind introduces name into the innermost frame (used for parameter
// binding at call entry); it panics if no frame is active, since binding
// only ever happens during a call.
func (e *Environment) Bind(name string, v Value) {
	frame := e.topFrame()
	if frame == nil {
		panic("runtime: Bind called with no active frame")
	}
	frame[name] = v
}
