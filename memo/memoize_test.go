package memo_test

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/on-the-ground/func_ive_go/memo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoizeI1O1(t *testing.T) {
	count := 0
	fn := memo.MemoizeI1O1(func(i int) int {
		count++
		return i * 2
	}, 0)

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)
}

func TestMemoizeI2O1(t *testing.T) {
	count := 0
	fn := memo.MemoizeI2O1(func(a, b int) int {
		count++
		return a + b
	}, 0)

	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 1, count)
}

func TestMemoizeI3O1(t *testing.T) {
	count := 0
	fn := memo.MemoizeI3O1(func(a, b, c int) int {
		count++
		return a * b * c
	}, 0)

	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 1, count)
}

// A function is memoized by its full argument tuple even when it ignores
// part of it.
func TestMemoizeIgnoredArgument(t *testing.T) {
	count := 0
	fn := memo.MemoizeI2O1(func(x, _ int) int {
		count++
		return x * x
	}, 0)

	assert.Equal(t, 16, fn(4, 5))
	assert.Equal(t, 16, fn(4, 5))
	assert.Equal(t, 1, count)

	// a different ignored argument is a different tuple
	assert.Equal(t, 16, fn(4, 6))
	assert.Equal(t, 2, count)
}

func TestMemoizeI1O2(t *testing.T) {
	count := 0
	fn := memo.MemoizeI1O2(func(i int) (int, string) {
		count++
		return i, "val"
	}, 0)

	a, b := fn(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	a2, b2 := fn(10)
	assert.Equal(t, 10, a2)
	assert.Equal(t, "val", b2)
	assert.Equal(t, 1, count)
}

func TestMemoizeI2O2(t *testing.T) {
	count := 0
	fn := memo.MemoizeI2O2(func(a, b int) (int, string) {
		count++
		return a * b, "mul"
	}, 0)

	x, y := fn(3, 4)
	assert.Equal(t, 12, x)
	assert.Equal(t, "mul", y)
	_, _ = fn(3, 4)
	assert.Equal(t, 1, count)
}

func TestMemoizeI3O2(t *testing.T) {
	count := 0
	fn := memo.MemoizeI3O2(func(a, b, c int) (int, string) {
		count++
		return a + b + c, "sum"
	}, 0)

	x, y := fn(1, 2, 3)
	assert.Equal(t, 6, x)
	assert.Equal(t, "sum", y)
	_, _ = fn(1, 2, 3)
	assert.Equal(t, 1, count)
}

var errBoom = errors.New("boom")

func TestMemoizeE_FailureNotCached(t *testing.T) {
	count := 0
	fail := true
	fn := memo.MemoizeI1E(func(i int) (int, error) {
		count++
		if fail {
			return 0, errBoom
		}
		return i * 2, nil
	}, 0)

	_, err := fn(7)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, count)

	// a retry re-invokes the function, nothing was cached for the key
	fail = false
	v, err := fn(7)
	require.NoError(t, err)
	assert.Equal(t, 14, v)
	assert.Equal(t, 2, count)

	// success is cached
	_, err = fn(7)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoizeI2E(t *testing.T) {
	count := 0
	fn := memo.MemoizeI2E(func(a, b int) (int, error) {
		count++
		if b == 0 {
			return 0, errBoom
		}
		return a / b, nil
	}, 0)

	v, err := fn(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = fn(10, 0)
	require.ErrorIs(t, err, errBoom)
	_, err = fn(10, 0)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 3, count)
}

func TestMemoize_AtMostOnceUnderConcurrency(t *testing.T) {
	var count atomic.Int32
	fn := memo.MemoizeI1O1(func(i int) int {
		count.Add(1)
		return i + 1
	}, 0)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 43, fn(42))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), count.Load())
}

func TestMemoize_Recursive(t *testing.T) {
	count := 0
	var fib func(int) int
	fib = memo.MemoizeI1O1(func(n int) int {
		count++
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}, 0)

	assert.Equal(t, 55, fib(10))
	assert.Equal(t, 11, count) // one invocation per distinct n in 0..10

	assert.Equal(t, 55, fib(10))
	assert.Equal(t, 11, count)
}

type NonComparable struct {
	Field []int // slices are not comparable
}

func (n NonComparable) String() string {
	return fmt.Sprintf("NonComparable%v", n.Field)
}

func TestMemoizeWithStringerFallback(t *testing.T) {
	count := 0
	fn := memo.MemoizeI1O1(func(n NonComparable) int {
		count++
		return len(n.Field)
	}, 0)

	val := fn(NonComparable{Field: []int{1, 2, 3}})
	val2 := fn(NonComparable{Field: []int{1, 2, 3}})

	assert.Equal(t, 3, val)
	assert.Equal(t, 3, val2)
	assert.Equal(t, 1, count)
}

type TotallyInvalid struct {
	Field []int
}

func TestMemoizeWithPanicIfNoComparableOrStringer(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic due to missing Stringer and non-comparable type")
		}
	}()
	fn := memo.MemoizeI1O1(func(t TotallyInvalid) int {
		return len(t.Field)
	}, 0)

	_ = fn(TotallyInvalid{Field: []int{1}})
}
