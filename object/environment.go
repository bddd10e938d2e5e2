/*
File    : monkeymix/object/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

// Environment is a lexical scope: a name-to-value mapping plus an
// optional link to the enclosing scope. It is the runtime analogue of
// the teacher's Scope, stripped of const/let-type bookkeeping this
// language's single `let` binding form has no use for.
//
// Enclosing environments are shared by pointer. A Function captures its
// defining Environment directly (not a copy), so a later `let` in that
// scope is visible to every closure that captured it.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// NewEnvironment creates a root environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates a child environment whose lookups fall
// through to outer when a name is not found locally. Function
// application creates one of these per call.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get looks up name in this environment, then recursively in the
// enclosing chain. It does not consult the built-in table — that lookup
// happens one level up, in the evaluator, only once Get reports not
// found.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this environment only, never in an enclosing
// scope. This is the only mutation LetStatement performs; there is no
// separate "assign to existing outer binding" operation in this
// language, unlike the teacher's Scope.Assign.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
