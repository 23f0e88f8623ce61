package fp

import (
	"fmt"

	"github.com/mjgpy3/not-my-type/pkg/fp/curry"
)

// Either holds a Left (failure) or a Right (success) value. Map, Chain and
// Ap act on Right and pass a Left through unchanged. The zero value is a Left
// holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// EitherOf lifts v into Either, the same as Right.
func EitherOf[L, R any](v R) Either[L, R] {
	return Right[L](v)
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) Map(fn func(R) R) Either[L, R] {
	return MapEither(e, fn)
}

func (e Either[L, R]) Bimap(onLeft func(L) L, onRight func(R) R) Either[L, R] {
	return BimapEither(e, onLeft, onRight)
}

func (e Either[L, R]) Chain(fn func(R) Either[L, R]) Either[L, R] {
	return ChainEither(e, fn)
}

func (e Either[L, R]) Equals(other Either[L, R]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return Equal(e.right, other.right)
	}
	return Equal(e.left, other.left)
}

// Either applies the function matching the variant and returns its result
// without re-wrapping it.
func (e Either[L, R]) Either(onLeft func(L) R, onRight func(R) R) R {
	return FoldEither(e, onLeft, onRight)
}

// FromRight returns the Right value. It panics with ErrWrongVariant on a Left.
func (e Either[L, R]) FromRight() R {
	if !e.isRight {
		panicWith(ErrWrongVariant, "FromRight called on a Left")
	}
	return e.right
}

// FromLeft returns the Left value. It panics with ErrWrongVariant on a Right.
func (e Either[L, R]) FromLeft() L {
	if e.isRight {
		panicWith(ErrWrongVariant, "FromLeft called on a Right")
	}
	return e.left
}

func (e Either[L, R]) ToEither() Either[L, R] {
	return e
}

// ToMaybe keeps a Right value and discards a Left one.
func (e Either[L, R]) ToMaybe() Maybe[R] {
	if !e.isRight {
		return Nothing[R]()
	}
	return Just(e.right)
}

func (e Either[L, R]) WithDefault(def R) R {
	if e.isRight {
		return e.right
	}
	return def
}

func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

func MapEither[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if !e.isRight {
		return Left[L, U](e.left)
	}
	return Right[L](fn(e.right))
}

func BimapEither[L, R, M, U any](e Either[L, R], onLeft func(L) M, onRight func(R) U) Either[M, U] {
	if !e.isRight {
		return Left[M, U](onLeft(e.left))
	}
	return Right[M](onRight(e.right))
}

func ChainEither[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if !e.isRight {
		return Left[L, U](e.left)
	}
	return fn(e.right)
}

// ApEither applies the function held by ef to the value held by ea. A Left
// function is returned as is, whatever ea holds.
func ApEither[L, A, B any](ef Either[L, func(A) B], ea Either[L, A]) Either[L, B] {
	if !ef.isRight {
		return Left[L, B](ef.left)
	}
	return MapEither(ea, ef.right)
}

func FoldEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// FoldEitherWith is the curried form of FoldEither.
func FoldEitherWith[L, R, U any](onLeft func(L) U) func(onRight func(R) U) func(Either[L, R]) U {
	return curry.Curry2(func(onRight func(R) U, e Either[L, R]) U {
		return FoldEither(e, onLeft, onRight)
	})
}

// EitherToMaybe is the free form of Either.ToMaybe.
func EitherToMaybe[L, R any](e Either[L, R]) Maybe[R] {
	return e.ToMaybe()
}

// FlattenEither collects the Right values of es in order. The first Left,
// scanning left to right, is returned unchanged; an empty input yields a
// Right of an empty slice.
func FlattenEither[L, R any](es []Either[L, R]) Either[L, []R] {
	out := make([]R, 0, len(es))
	for _, e := range es {
		if !e.isRight {
			return Left[L, []R](e.left)
		}
		out = append(out, e.right)
	}
	return Right[L](out)
}
