// Package closure builds function values with explicit lexical capture.
//
// Go closures capture enclosing variables implicitly; this package makes the
// capture an explicit, inspectable snapshot instead. A closure built here
// carries an immutable Env — an ordered name→value mapping frozen at
// construction time — so capture semantics are a design choice, not a
// language default:
//
//   - capture by value: the Env holds the value as it was when captured; the
//     constructing scope may exit or rebind the name without affecting the
//     closure.
//   - capture by shared cell: define a *Cell in the scope and capture it. The
//     pointer is snapshotted, the contents remain shared and mutable through
//     every closure holding the same cell.
//
// Capturing a name the scope never defined is a construction-time error,
// never a call-time one.
package closure

import (
	"fmt"

	"github.com/on-the-ground/func_ive_go/shared/helper"
)

// ErrUndefinedCapture indicates a requested capture names a variable that was
// never defined in the constructing scope.
var ErrUndefinedCapture = fmt.Errorf("captured name is not defined in scope")

// Env is an immutable snapshot of captured bindings, ordered by capture.
type Env struct {
	order []string
	vars  map[string]any
}

// Get returns the captured value for name, if name was captured.
func (e Env) Get(name string) (any, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Names returns the captured names in capture order.
func (e Env) Names() []string {
	names := make([]string, len(e.order))
	copy(names, e.order)
	return names
}

func (e Env) Len() int { return len(e.order) }

// Capture snapshots the named bindings of scope into an immutable Env.
// Every requested name must already be defined; otherwise Capture fails with
// ErrUndefinedCapture and nothing is captured.
func Capture(scope *Scope, names ...string) (Env, error) {
	env := Env{
		order: make([]string, 0, len(names)),
		vars:  make(map[string]any, len(names)),
	}
	for _, name := range names {
		v, ok := scope.Lookup(name)
		if !ok {
			return Env{}, fmt.Errorf("%w: %q", ErrUndefinedCapture, name)
		}
		if _, dup := env.vars[name]; !dup {
			env.order = append(env.order, name)
		}
		env.vars[name] = v
	}
	return env, nil
}

// Make builds a callable that closes over the named bindings of scope.
// The body receives the frozen Env plus the call-time arguments; it can read
// (and, through captured Cells, write) the captured state long after the
// constructing scope has exited.
func Make[R any](
	scope *Scope,
	captures []string,
	body func(env Env, args ...any) R,
) (func(args ...any) R, error) {
	env, err := Capture(scope, captures...)
	if err != nil {
		return nil, err
	}
	return func(args ...any) R {
		return body(env, args...)
	}, nil
}

// GetTyped fetches a captured value and asserts it to T.
// Returns ErrUndefinedCapture if the name was not captured, or a type error
// if the captured value is not a T.
func GetTyped[T any](env Env, name string) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		v, ok := env.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUndefinedCapture, name)
		}
		return v, nil
	})
}

// GetTypedOk is the ok-shaped variant of GetTyped, mirroring Env.Get:
// false means the name was not captured or the value is not a T.
func GetTypedOk[T any](env Env, name string) (T, bool) {
	return helper.GetTypedValueOf2[T](func() (any, bool) {
		return env.Get(name)
	})
}

// MustGetTyped is the panic-on-failure variant of GetTyped.
func MustGetTyped[T any](env Env, name string) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		v, ok := env.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUndefinedCapture, name)
		}
		return v, nil
	})
}
