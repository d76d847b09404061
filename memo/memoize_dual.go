package memo

func MemoizeI1O2[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
	maxTableSize uint32,
) func(I1) (O1, O2) {
	memoized := memoizeDualOutput(
		func(args ...ComparableOrStringer) (O1, O2) {
			return pureFn(args[0].(I1))
		},
		maxTableSize,
	)
	return func(i1 I1) (O1, O2) {
		return memoized(i1)
	}
}

func MemoizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	maxTableSize uint32,
) func(I1, I2) (O1, O2) {
	memoized := memoizeDualOutput(
		func(args ...ComparableOrStringer) (O1, O2) {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		return memoized(i1, i2)
	}
}

func MemoizeI3O2[I1, I2, I3 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	maxTableSize uint32,
) func(I1, I2, I3) (O1, O2) {
	memoized := memoizeDualOutput(
		func(args ...ComparableOrStringer) (O1, O2) {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		return memoized(i1, i2, i3)
	}
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func memoizeDualOutput[O1, O2 any](
	pureFn func(...ComparableOrStringer) (O1, O2),
	maxTableSize uint32,
) func(...ComparableOrStringer) (O1, O2) {
	memoized := memoize(
		func(args ...ComparableOrStringer) result[O1, O2] {
			v1, v2 := pureFn(args...)
			return result[O1, O2]{O1: v1, O2: v2}
		},
		maxTableSize,
	)
	return func(args ...ComparableOrStringer) (O1, O2) {
		res := memoized(args...)
		return res.O1, res.O2
	}
}
