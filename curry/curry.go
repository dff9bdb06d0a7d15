package curry

import (
	"github.com/on-the-ground/flow_ive_go/shared/helper"
)

// Curry2 turns a binary function into a chain of two unary functions.
func Curry2[T1, T2, R any](fn func(T1, T2) R) func(T1) func(T2) R {
	return func(a1 T1) func(T2) R {
		return func(a2 T2) R {
			return fn(a1, a2)
		}
	}
}

// Curry3 turns a ternary function into a chain of three unary functions.
func Curry3[T1, T2, T3, R any](fn func(T1, T2, T3) R) func(T1) func(T2) func(T3) R {
	return func(a1 T1) func(T2) func(T3) R {
		return func(a2 T2) func(T3) R {
			return func(a3 T3) R {
				return fn(a1, a2, a3)
			}
		}
	}
}

// Curry4 turns a 4-ary function into a chain of four unary functions.
func Curry4[T1, T2, T3, T4, R any](fn func(T1, T2, T3, T4) R) func(T1) func(T2) func(T3) func(T4) R {
	return func(a1 T1) func(T2) func(T3) func(T4) R {
		return func(a2 T2) func(T3) func(T4) R {
			return func(a3 T3) func(T4) R {
				return func(a4 T4) R {
					return fn(a1, a2, a3, a4)
				}
			}
		}
	}
}

// Curry5 turns a 5-ary function into a chain of five unary functions.
// Beyond five arguments, use N.
func Curry5[T1, T2, T3, T4, T5, R any](fn func(T1, T2, T3, T4, T5) R) func(T1) func(T2) func(T3) func(T4) func(T5) R {
	return func(a1 T1) func(T2) func(T3) func(T4) func(T5) R {
		return func(a2 T2) func(T3) func(T4) func(T5) R {
			return func(a3 T3) func(T4) func(T5) R {
				return func(a4 T4) func(T5) R {
					return func(a5 T5) R {
						return fn(a1, a2, a3, a4, a5)
					}
				}
			}
		}
	}
}

// N curries fn over an arbitrary arity. Each application returns either the
// next unary applicator or, once arity arguments have been supplied, the
// result of fn. The captured argument list is copied on every application,
// so chains branching from a shared partial prefix stay independent.
//
// N panics if arity is not positive; a zero-argument function has nothing to
// curry.
func N(fn func(args ...any) any, arity int) func(any) any {
	if arity < 1 {
		panic("curry: arity must be at least 1")
	}
	var applicator func(captured []any) func(any) any
	applicator = func(captured []any) func(any) any {
		return func(arg any) any {
			args := make([]any, len(captured), len(captured)+1)
			copy(args, captured)
			args = append(args, arg)
			if len(args) == arity {
				return fn(args...)
			}
			return applicator(args)
		}
	}
	return applicator(nil)
}

// Next treats a value returned by an N-curried application as the next unary
// applicator. It reports false if the chain is already exhausted.
func Next(v any) (func(any) any, bool) {
	return helper.GetTypedValueOf2[func(any) any](func() (any, bool) {
		return v, true
	})
}

// As recovers a typed result from the final application of an N-curried
// function. It reports false if the chain has not been fully applied or the
// result is not a T.
func As[T any](v any) (T, bool) {
	return helper.GetTypedValueOf2[T](func() (any, bool) {
		return v, true
	})
}

// MustAs is the panic-on-failure variant of As. Use when the chain is known
// to be fully applied and the result type is guaranteed by construction.
func MustAs[T any](v any) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return v, nil
	})
}
