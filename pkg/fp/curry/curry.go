package curry

import (
	"errors"
	"fmt"
)

var (
	ErrArity       = errors.New("curry: arity mismatch")
	ErrNotCallable = errors.New("curry: value is not callable")
)

// Func is a partially applied function. Calling it yields either the final
// result (once the arity is reached) or another Func awaiting the rest.
type Func func(args ...any) any

// N curries fn over n arguments. When the accumulated args already number n,
// fn is invoked immediately and its result returned.
func N(n int, fn func(args ...any) any, args ...any) any {
	if n < 0 {
		panic(fmt.Errorf("%w: negative arity %d", ErrArity, n))
	}
	if len(args) > n {
		panic(fmt.Errorf("%w: expected %d arguments, got %d", ErrArity, n, len(args)))
	}
	if len(args) == n {
		return fn(args...)
	}

	return Func(func(more ...any) any {
		next := make([]any, 0, len(args)+len(more))
		next = append(next, args...)
		next = append(next, more...)
		return N(n, fn, next...)
	})
}

// Call applies f, which must be a Func, to args.
func Call(f any, args ...any) any {
	fn, ok := f.(Func)
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrNotCallable, f))
	}
	return fn(args...)
}

func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return fn(a, b, c)
			}
		}
	}
}

func Uncurry2[A, B, R any](fn func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(a)(b)
	}
}

func Uncurry3[A, B, C, R any](fn func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return fn(a)(b)(c)
	}
}

// Partial2 binds the first argument of a 2-ary function.
func Partial2[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return Curry2(fn)(a)
}

// Flip2 swaps the argument order of a 2-ary function.
func Flip2[A, B, R any](fn func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return fn(a, b)
	}
}
