// Package curry transforms n-ary functions into chains of unary functions.
//
// The typed CurryN family keeps full type safety through each partial
// application; every intermediate callable is a fresh immutable value, so a
// partial application can be reused from multiple call sites to produce
// independent continuations. The dynamic Chain covers arities the typed
// family does not.
package curry

// Curry2 satisfies Curry2(f)(a)(b) == f(a, b).
func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

// Curry3 satisfies Curry3(f)(a)(b)(c) == f(a, b, c).
func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return fn(a, b, c)
			}
		}
	}
}

// Curry4 satisfies Curry4(f)(a)(b)(c)(d) == f(a, b, c, d).
func Curry4[A, B, C, D, R any](fn func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R {
					return fn(a, b, c, d)
				}
			}
		}
	}
}

// Curry2E is Curry2 for fallible functions; the final call's error propagates
// unchanged, partial applications themselves cannot fail.
func Curry2E[A, B, R any](fn func(A, B) (R, error)) func(A) func(B) (R, error) {
	return func(a A) func(B) (R, error) {
		return func(b B) (R, error) {
			return fn(a, b)
		}
	}
}

func Curry3E[A, B, C, R any](fn func(A, B, C) (R, error)) func(A) func(B) func(C) (R, error) {
	return func(a A) func(B) func(C) (R, error) {
		return func(b B) func(C) (R, error) {
			return func(c C) (R, error) {
				return fn(a, b, c)
			}
		}
	}
}

// Uncurry2 inverts Curry2.
func Uncurry2[A, B, R any](fn func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(a)(b)
	}
}

// Uncurry3 inverts Curry3.
func Uncurry3[A, B, C, R any](fn func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return fn(a)(b)(c)
	}
}
