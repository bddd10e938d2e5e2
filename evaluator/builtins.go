/*
File    : monkeymix/evaluator/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evaluator

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-mix/internal/diagnostics"
	"github.com/akashmaji946/go-mix/object"
)

// builtins is the closed built-in function table: the base pair `len`
// and `drop` the language defines, plus the small domain-stack
// extensions (`puts`, `first`, `last`, `upper`, `lower`) grounded in the
// wider retrieval pack's own builtin tables (sean-d-sloth/object/builtin.go,
// akashmaji946-go-mix/std/strings.go, std/io.go). Every entry is
// arity-checked before it is type-checked, matching the order of the
// error messages named in the spec.
var builtins = map[string]*object.Builtin{
	"len": {Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return arityError("len", 1, len(args))
		}
		switch arg := args[0].(type) {
		case *object.String:
			return &object.Integer{Value: int64(len(arg.Value))}
		default:
			return typeError("len", arg.Type())
		}
	}},

	"drop": {Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return arityError("drop", 1, len(args))
		}
		return NULL
	}},
}

// registerEvaluatorBuiltins adds the builtins that need a live Evaluator
// (puts writes to e.Writer) into the shared table. Called once from New
// so every Evaluator instance shares the same closed-over writer.
func (e *Evaluator) registerEvaluatorBuiltins() {
	builtins["puts"] = &object.Builtin{Fn: func(args ...object.Object) object.Object {
		for _, arg := range args {
			fmt.Fprintln(e.Writer, arg.Inspect())
		}
		return NULL
	}}
}

func init() {
	builtins["first"] = &object.Builtin{Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return arityError("first", 1, len(args))
		}
		str, ok := args[0].(*object.String)
		if !ok {
			return typeError("first", args[0].Type())
		}
		if len(str.Value) == 0 {
			return NULL
		}
		return &object.String{Value: str.Value[:1]}
	}}

	builtins["last"] = &object.Builtin{Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return arityError("last", 1, len(args))
		}
		str, ok := args[0].(*object.String)
		if !ok {
			return typeError("last", args[0].Type())
		}
		if len(str.Value) == 0 {
			return NULL
		}
		return &object.String{Value: str.Value[len(str.Value)-1:]}
	}}

	builtins["upper"] = &object.Builtin{Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return arityError("upper", 1, len(args))
		}
		str, ok := args[0].(*object.String)
		if !ok {
			return typeError("upper", args[0].Type())
		}
		return &object.String{Value: strings.ToUpper(str.Value)}
	}}

	builtins["lower"] = &object.Builtin{Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return arityError("lower", 1, len(args))
		}
		str, ok := args[0].(*object.String)
		if !ok {
			return typeError("lower", args[0].Type())
		}
		return &object.String{Value: strings.ToLower(str.Value)}
	}}
}

func arityError(name string, expected, got int) *object.Error {
	diagnostics.Default().Warnf("evaluator: %s called with %d arguments, expected %d", name, got, expected)
	return newError("expected %d argument but received %d", expected, got)
}

func typeError(name string, got object.Type) *object.Error {
	diagnostics.Default().Warnf("evaluator: %s called with unsupported argument type %s", name, got)
	return newError("argument to '%s' not supported, got %s", name, got)
}
