package curry_test

import (
	"testing"

	"github.com/on-the-ground/func_ive_go/curry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumChain() curry.Chain {
	return curry.NewChain(3, func(args ...any) any {
		return args[0].(int) + args[1].(int) + args[2].(int)
	})
}

func TestChain_Saturation(t *testing.T) {
	c := sumChain()
	assert.Equal(t, 3, c.Remaining())
	assert.False(t, c.Saturated())

	c1, err := c.Apply(1)
	require.NoError(t, err)
	c2, err := c1.Apply(2)
	require.NoError(t, err)
	c3, err := c2.Apply(3)
	require.NoError(t, err)
	assert.True(t, c3.Saturated())

	v, err := c3.Call()
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

func TestChain_UnsaturatedCallFails(t *testing.T) {
	c := sumChain().MustApply(1)
	_, err := c.Call()
	require.ErrorIs(t, err, curry.ErrUnsaturated)
}

func TestChain_ArityExceeded(t *testing.T) {
	c := sumChain()
	c = c.MustApply(1).MustApply(2).MustApply(3)

	_, err := c.Apply(4)
	require.ErrorIs(t, err, curry.ErrArityExceeded)
}

func TestChain_PartialsAreIndependent(t *testing.T) {
	c1 := sumChain().MustApply(1)

	left := c1.MustApply(2).MustApply(3)
	right := c1.MustApply(10).MustApply(20)

	lv, err := left.Call()
	require.NoError(t, err)
	rv, err := right.Call()
	require.NoError(t, err)

	assert.Equal(t, 6, lv)
	assert.Equal(t, 31, rv)

	// c1 itself is untouched
	assert.Equal(t, 2, c1.Remaining())
}

func TestNewChain_InvalidArityPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on arity < 1")
		}
	}()
	_ = curry.NewChain(0, func(args ...any) any { return nil })
}

func TestNewChain_NilFnPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on nil fn")
		}
	}()
	_ = curry.NewChain(1, nil)
}

func TestMustApply_PanicsOnOverApplication(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on over-application")
		}
	}()
	c := curry.NewChain(1, func(args ...any) any { return args[0] })
	c = c.MustApply(1)
	_ = c.MustApply(2)
}
