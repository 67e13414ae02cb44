// Package environment implements the lexical scope chain the evaluator binds
// variables in: a name-to-value map per scope with a parent pointer, the
// same shape as Go-Mix's scope.Scope
// (_examples/akashmaji946-go-mix/scope/scope.go) and the original's
// objects/environment.rs, trimmed to the binding/lookup/assignment
// operations this language actually needs (no const/let-type bookkeeping:
// that belongs to a static type checker this interpreter doesn't have).
package environment

import "github.com/akashmaji946/mochi/object"

// Environment is one frame of the scope chain. A nil Parent marks the global
// (root) environment.
type Environment struct {
	store  map[string]object.Object
	Parent *Environment
}

// New creates a root environment with no parent.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosed creates a child environment nested inside parent, the frame a
// function call pushes so its own bindings shadow the enclosing ones. Blocks
// do not push a frame; they evaluate in the environment they appear in.
func NewEnclosed(parent *Environment) *Environment {
	return &Environment{store: make(map[string]object.Object), Parent: parent}
}

// Get looks up name in this frame and, if not found, walks up the parent
// chain. The bool result is false if no frame in the chain binds name.
func (e *Environment) Get(name string) (object.Object, bool) {
	val, ok := e.store[name]
	if !ok && e.Parent != nil {
		return e.Parent.Get(name)
	}
	return val, ok
}

// Set binds name to val in the current frame only, creating or overwriting
// the binding. It never touches a parent frame, which is what lets a function
// call's parameters and declarations shadow an outer variable of the same
// name.
func (e *Environment) Set(name string, val object.Object) object.Object {
	e.store[name] = val
	return val
}

// Assign updates an existing binding in the frame where it was originally
// declared, walking up the parent chain to find it. It reports false if no
// frame in the chain already binds name, in which case nothing was written.
func (e *Environment) Assign(name string, val object.Object) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, val)
	}
	return false
}

// Names returns every name bound in this frame, used by the REPL's `:env`
// command to render the current scope without exposing parent frames.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	return names
}
