package memo_test

import (
	"testing"

	"github.com/on-the-ground/func_ive_go/memo"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkMemoizedFib20(b *testing.B) {
	var memoFib func(int) int
	memoFib = memo.MemoizeI1O1(func(n int) int {
		if n <= 1 {
			return n
		}
		return memoFib(n-1) + memoFib(n-2)
	}, 0)

	for i := 0; i < b.N; i++ {
		_ = memoFib(20)
	}
}

func BenchmarkMemoizedFib20_Bounded(b *testing.B) {
	var memoFib func(int) int
	memoFib = memo.MemoizeI1O1(func(n int) int {
		if n <= 1 {
			return n
		}
		return memoFib(n-1) + memoFib(n-2)
	}, 32)

	for i := 0; i < b.N; i++ {
		_ = memoFib(20)
	}
}
