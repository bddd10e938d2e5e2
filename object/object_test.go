/*
File    : monkeymix/object/object_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspect(t *testing.T) {
	assert.Equal(t, "5", (&Integer{Value: 5}).Inspect())
	assert.Equal(t, "true", (&Boolean{Value: true}).Inspect())
	assert.Equal(t, "null", (&Null{}).Inspect())
	assert.Equal(t, "hello", (&String{Value: "hello"}).Inspect())
	assert.Equal(t, "boom", (&Error{Message: "boom"}).Inspect())
	assert.Equal(t, "10", (&ReturnValue{Value: &Integer{Value: 10}}).Inspect())
}

// TestEnvironment_Enclosure exercises the lexical-scope chain a closure
// relies on: a binding made before the child environment was created
// must still resolve through it, and a binding made in the child must
// not leak back out to the parent.
func TestEnvironment_Enclosure(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	val, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), val.(*Integer).Value)

	inner.Set("y", &Integer{Value: 2})
	_, ok = outer.Get("y")
	assert.False(t, ok, "child bindings must not leak into the parent scope")
}

// TestEnvironment_SharedMutation is the mechanism that makes closures see
// later let-bindings in their defining scope: Set on the environment a
// Function captured is visible to that Function even after capture.
func TestEnvironment_SharedMutation(t *testing.T) {
	env := NewEnvironment()
	captured := env

	env.Set("count", &Integer{Value: 0})
	captured.Set("count", &Integer{Value: 1})

	val, ok := env.Get("count")
	assert.True(t, ok)
	assert.Equal(t, int64(1), val.(*Integer).Value)
}
