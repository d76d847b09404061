package memo

// MemoizeI1E memoizes a fallible function. A failing call propagates its
// error unchanged and caches NOTHING for that argument, so the next call with
// the same argument re-invokes the function. Only successful results are
// cached.
func MemoizeI1E[I1 ComparableOrStringer, O1 any](
	fn func(I1) (O1, error),
	maxTableSize uint32,
) func(I1) (O1, error) {
	table := NewTable(NewTrieStore[O1](maxTableSize))
	return func(i1 I1) (O1, error) {
		return table.Do(
			func(args ...ComparableOrStringer) (O1, error) {
				return fn(args[0].(I1))
			},
			i1,
		)
	}
}

func MemoizeI2E[I1, I2 ComparableOrStringer, O1 any](
	fn func(I1, I2) (O1, error),
	maxTableSize uint32,
) func(I1, I2) (O1, error) {
	table := NewTable(NewTrieStore[O1](maxTableSize))
	return func(i1 I1, i2 I2) (O1, error) {
		return table.Do(
			func(args ...ComparableOrStringer) (O1, error) {
				return fn(args[0].(I1), args[1].(I2))
			},
			i1, i2,
		)
	}
}

func MemoizeI3E[I1, I2, I3 ComparableOrStringer, O1 any](
	fn func(I1, I2, I3) (O1, error),
	maxTableSize uint32,
) func(I1, I2, I3) (O1, error) {
	table := NewTable(NewTrieStore[O1](maxTableSize))
	return func(i1 I1, i2 I2, i3 I3) (O1, error) {
		return table.Do(
			func(args ...ComparableOrStringer) (O1, error) {
				return fn(args[0].(I1), args[1].(I2), args[2].(I3))
			},
			i1, i2, i3,
		)
	}
}

// MemoizeI1EOn is MemoizeI1E over a caller-supplied Store.
func MemoizeI1EOn[I1 ComparableOrStringer, O1 any](
	store Store[O1],
	fn func(I1) (O1, error),
	opts ...TableOption,
) func(I1) (O1, error) {
	table := NewTable(store, opts...)
	return func(i1 I1) (O1, error) {
		return table.Do(
			func(args ...ComparableOrStringer) (O1, error) {
				return fn(args[0].(I1))
			},
			i1,
		)
	}
}
