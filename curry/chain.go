package curry

import (
	"fmt"
)

// ErrArityExceeded indicates more arguments were applied than the chain's
// declared arity.
var ErrArityExceeded = fmt.Errorf("arity exceeded")

// ErrUnsaturated indicates Call on a chain still missing arguments.
var ErrUnsaturated = fmt.Errorf("chain is not saturated")

// Chain is a dynamically curried function: the original variadic function,
// its declared arity, and the arguments accumulated so far. A Chain is an
// immutable value; Apply returns a new node and never mutates the receiver,
// so any partial application can be reused to build independent
// continuations.
type Chain struct {
	fn    func(args ...any) any
	arity int
	args  []any
}

// NewChain wraps fn with the given arity. Panics on arity < 1 or nil fn;
// those are programmer errors, not runtime conditions.
func NewChain(arity int, fn func(args ...any) any) Chain {
	if arity < 1 {
		panic("NewChain: arity must be at least 1")
	}
	if fn == nil {
		panic("NewChain: nil fn")
	}
	return Chain{fn: fn, arity: arity}
}

// Apply binds one more argument, returning a new chain node. Applying to an
// already saturated chain fails with ErrArityExceeded.
func (c Chain) Apply(arg any) (Chain, error) {
	if len(c.args) >= c.arity {
		return Chain{}, fmt.Errorf("%w: arity %d, got %d arguments", ErrArityExceeded, c.arity, len(c.args)+1)
	}
	args := make([]any, len(c.args)+1)
	copy(args, c.args)
	args[len(c.args)] = arg
	return Chain{fn: c.fn, arity: c.arity, args: args}, nil
}

// MustApply is the panic-on-failure variant of Apply.
func (c Chain) MustApply(arg any) Chain {
	next, err := c.Apply(arg)
	if err != nil {
		panic(err)
	}
	return next
}

// Call invokes the underlying function once the chain is saturated. The
// underlying function's result is returned as-is; an unsaturated chain fails
// with ErrUnsaturated.
func (c Chain) Call() (any, error) {
	if len(c.args) < c.arity {
		return nil, fmt.Errorf("%w: arity %d, got %d arguments", ErrUnsaturated, c.arity, len(c.args))
	}
	return c.fn(c.args...), nil
}

// Saturated reports whether the chain holds all of its arguments.
func (c Chain) Saturated() bool {
	return len(c.args) == c.arity
}

// Remaining returns how many arguments the chain still needs.
func (c Chain) Remaining() int {
	return c.arity - len(c.args)
}
