package memo

// MemoizeI1O1 memoizes a pure unary function. maxTableSize bounds the cache
// via dual-map rotation; 0 means unbounded (strict at-most-once).
func MemoizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	memoized := memoize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1))
		},
		maxTableSize,
	)
	return func(i1 I1) O1 {
		return memoized(i1)
	}
}

func MemoizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	memoized := memoize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) O1 {
		return memoized(i1, i2)
	}
}

func MemoizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	maxTableSize uint32,
) func(I1, I2, I3) O1 {
	memoized := memoize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return memoized(i1, i2, i3)
	}
}

// MemoizeI1O1On memoizes over a caller-supplied Store, e.g. a ristretto
// store for bounded memory.
func MemoizeI1O1On[I1 ComparableOrStringer, O1 any](
	store Store[O1],
	pureFn func(I1) O1,
	opts ...TableOption,
) func(I1) O1 {
	table := NewTable(store, opts...)
	return func(i1 I1) O1 {
		v, _ := table.Do(
			func(args ...ComparableOrStringer) (O1, error) {
				return pureFn(args[0].(I1)), nil
			},
			i1,
		)
		return v
	}
}

func MemoizeI2O1On[I1, I2 ComparableOrStringer, O1 any](
	store Store[O1],
	pureFn func(I1, I2) O1,
	opts ...TableOption,
) func(I1, I2) O1 {
	table := NewTable(store, opts...)
	return func(i1 I1, i2 I2) O1 {
		v, _ := table.Do(
			func(args ...ComparableOrStringer) (O1, error) {
				return pureFn(args[0].(I1), args[1].(I2)), nil
			},
			i1, i2,
		)
		return v
	}
}

func memoize[O any](
	pureFn func(...ComparableOrStringer) O,
	maxTableSize uint32,
) func(...ComparableOrStringer) O {
	table := NewTable(NewTrieStore[O](maxTableSize))
	return func(args ...ComparableOrStringer) O {
		v, _ := table.Do(
			func(args ...ComparableOrStringer) (O, error) {
				return pureFn(args...), nil
			},
			args...,
		)
		return v
	}
}
