// Package lazy provides explicit deferred evaluation for eagerly evaluated Go.
//
// A Thunk is a tagged variant of {Unevaluated(fn), Evaluated(value)} that
// transitions exactly once, on first Force. This reproduces the observable
// half of non-strict evaluation — a value is not computed until demanded, and
// is computed at most once — without pretending Go has non-strict call
// semantics.
package lazy

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/func_ive_go/shared/timebound"
)

// FailurePolicy decides what a Thunk does when its computation fails.
type FailurePolicy int

const (
	// RetryOnFailure propagates the error and leaves the thunk Unevaluated,
	// so the next Force re-runs the computation. This is the default.
	RetryOnFailure FailurePolicy = iota

	// CacheFailure stores the error as the terminal state and returns it on
	// every subsequent Force without re-running the computation.
	CacheFailure
)

const (
	stateUnevaluated uint32 = iota
	stateEvaluated
	stateFailed
)

// Thunk defers a computation until first Force, then caches the result.
// Safe for concurrent forcing: the Unevaluated→Evaluated transition happens
// exactly once, concurrent forcers block on the winner.
type Thunk[T any] struct {
	state atomic.Uint32

	mu  sync.Mutex
	fn  func() (T, error)
	val T
	err error

	span   timebound.TimeSpan
	policy FailurePolicy
	id     string
	logger *zap.Logger
}

type options struct {
	policy FailurePolicy
	logger *zap.Logger
}

type Option func(*options)

func WithFailurePolicy(policy FailurePolicy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithLogger attaches a zap logger; the thunk logs its one evaluation at
// debug level, tagged with the thunk id.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New wraps fn in an Unevaluated thunk. fn runs on first Force, never at
// construction. Panics on a nil fn.
func New[T any](fn func() (T, error), opts ...Option) *Thunk[T] {
	if fn == nil {
		panic("lazy.New: nil fn")
	}
	o := options{
		policy: RetryOnFailure,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Thunk[T]{
		fn:     fn,
		policy: o.policy,
		id:     uuid.New().String(),
		logger: o.logger,
	}
}

// From wraps an infallible computation.
func From[T any](fn func() T, opts ...Option) *Thunk[T] {
	if fn == nil {
		panic("lazy.From: nil fn")
	}
	return New(func() (T, error) {
		return fn(), nil
	}, opts...)
}

// Of returns an already-Evaluated thunk holding v.
func Of[T any](v T) *Thunk[T] {
	t := &Thunk[T]{
		val:    v,
		span:   timebound.Now(),
		id:     uuid.New().String(),
		logger: zap.NewNop(),
	}
	t.state.Store(stateEvaluated)
	return t
}

// Force evaluates the thunk on first call and returns the cached value on
// every subsequent call without re-evaluating. Failures follow the configured
// FailurePolicy and are never silently swallowed.
func (t *Thunk[T]) Force() (T, error) {
	// Fast path: the atomic load orders after the winner's field writes.
	if t.state.Load() == stateEvaluated {
		return t.val, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state.Load() {
	case stateEvaluated:
		return t.val, nil
	case stateFailed:
		var zero T
		return zero, t.err
	}

	v, err := t.fn()
	if err != nil {
		if t.policy == CacheFailure {
			t.err = err
			t.fn = nil
			t.state.Store(stateFailed)
			t.logger.Debug("thunk failed terminally",
				zap.String("thunkId", t.id),
				zap.Error(err),
			)
		}
		var zero T
		return zero, err
	}

	t.val = v
	t.fn = nil
	t.span = timebound.Now()
	t.state.Store(stateEvaluated)
	t.logger.Debug("thunk evaluated", zap.String("thunkId", t.id))
	return v, nil
}

// Forced reports whether the thunk reached a terminal state (Evaluated, or
// Failed under CacheFailure).
func (t *Thunk[T]) Forced() bool {
	return t.state.Load() != stateUnevaluated
}

// EvaluatedSpan returns the span bracketing the moment of evaluation, and
// false if the thunk has not evaluated yet.
func (t *Thunk[T]) EvaluatedSpan() (timebound.TimeSpan, bool) {
	if t.state.Load() != stateEvaluated {
		return timebound.TimeSpan{}, false
	}
	return t.span, true
}

var _ timebound.TimeBounded = (*Thunk[any])(nil)

// TimeSpan makes an evaluated thunk usable as a timebound.TimeBounded value.
// Before evaluation it returns the zero span; use EvaluatedSpan to
// distinguish.
func (t *Thunk[T]) TimeSpan() timebound.TimeSpan {
	span, _ := t.EvaluatedSpan()
	return span
}

// Map derives a lazily mapped thunk: forcing the result forces t, then
// applies fn. fn runs at most once; a failure of t propagates per t's policy.
func Map[T, U any](t *Thunk[T], fn func(T) U, opts ...Option) *Thunk[U] {
	return New(func() (U, error) {
		v, err := t.Force()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v), nil
	}, opts...)
}
