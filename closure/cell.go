package closure

import "sync"

// Cell is a shared mutable box. Capturing a *Cell by value gives every
// closure holding it a view of the same storage, which is how
// capture-by-reference is expressed here: the pointer is snapshotted, the
// contents stay shared.
type Cell[T any] struct {
	mu sync.RWMutex
	v  T
}

func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v
}

func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = v
}

// Swap stores new and returns the previous value.
func (c *Cell[T]) Swap(new T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.v
	c.v = new
	return old
}
