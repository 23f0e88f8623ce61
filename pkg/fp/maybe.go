package fp

import (
	"fmt"

	"github.com/mjgpy3/not-my-type/pkg/fp/curry"
)

// Maybe holds either Just a value or Nothing. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, just: true}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// MaybeOf lifts v into Maybe, the same as Just.
func MaybeOf[T any](v T) Maybe[T] {
	return Just(v)
}

// FromUndefinable maps a nil pointer to Nothing and anything else, including
// pointers to false, 0 or "", to Just the pointed-to value.
func FromUndefinable[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// FromOk is the comma-ok form of FromUndefinable:
//
//	v, ok := m[key]
//	fp.FromOk(v, ok)
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(v)
}

func (m Maybe[T]) IsJust() bool {
	return m.just
}

func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Map transforms the wrapped value; fn is never called on Nothing
func (m Maybe[T]) Map(fn func(T) T) Maybe[T] {
	return MapMaybe(m, fn)
}

// Chain feeds the wrapped value to fn, returning its result
func (m Maybe[T]) Chain(fn func(T) Maybe[T]) Maybe[T] {
	return ChainMaybe(m, fn)
}

func (m Maybe[T]) Equals(other Maybe[T]) bool {
	if m.just != other.just {
		return false
	}
	return !m.just || Equal(m.value, other.value)
}

func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Maybe returns def for Nothing and fn(v) for Just(v).
func (m Maybe[T]) Maybe(def T, fn func(T) T) T {
	return FoldMaybe(m, def, fn)
}

// FromJust returns the wrapped value. It panics with ErrEmptyValue on Nothing.
func (m Maybe[T]) FromJust() T {
	if !m.just {
		panicWith(ErrEmptyValue, "FromJust called on Nothing")
	}
	return m.value
}

func (m Maybe[T]) ToMaybe() Maybe[T] {
	return m
}

func (m Maybe[T]) String() string {
	if !m.just {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

func MapMaybe[A, B any](m Maybe[A], fn func(A) B) Maybe[B] {
	if !m.just {
		return Nothing[B]()
	}
	return Just(fn(m.value))
}

func ChainMaybe[A, B any](m Maybe[A], fn func(A) Maybe[B]) Maybe[B] {
	if !m.just {
		return Nothing[B]()
	}
	return fn(m.value)
}

// ApMaybe applies the function held by mf to the value held by ma. A Nothing
// function yields Nothing whatever ma holds.
func ApMaybe[A, B any](mf Maybe[func(A) B], ma Maybe[A]) Maybe[B] {
	if !mf.just {
		return Nothing[B]()
	}
	return MapMaybe(ma, mf.value)
}

func FoldMaybe[T, U any](m Maybe[T], def U, fn func(T) U) U {
	if !m.just {
		return def
	}
	return fn(m.value)
}

// FoldMaybeWith is the curried form of FoldMaybe: def first, then fn, then
// the Maybe to fold.
func FoldMaybeWith[T, U any](def U) func(fn func(T) U) func(Maybe[T]) U {
	return curry.Curry2(func(fn func(T) U, m Maybe[T]) U {
		return FoldMaybe(m, def, fn)
	})
}

// MaybeToEither turns Nothing into Left(left) and Just(v) into Right(v).
func MaybeToEither[L, T any](m Maybe[T], left L) Either[L, T] {
	if !m.just {
		return Left[L, T](left)
	}
	return Right[L](m.value)
}

// ToEither is the curried form of MaybeToEither.
func ToEither[L, T any](left L) func(Maybe[T]) Either[L, T] {
	return curry.Curry2(curry.Flip2(MaybeToEither[L, T]))(left)
}

// FlattenMaybe collects the values of ms in order. Any Nothing makes the
// whole result Nothing; an empty input yields Just of an empty slice.
func FlattenMaybe[T any](ms []Maybe[T]) Maybe[[]T] {
	out := make([]T, 0, len(ms))
	for _, m := range ms {
		if !m.just {
			return Nothing[[]T]()
		}
		out = append(out, m.value)
	}
	return Just(out)
}
