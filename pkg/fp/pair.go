package fp

import (
	"fmt"

	"github.com/mjgpy3/not-my-type/pkg/fp/curry"
)

// Pair is an ordered 2-tuple. Map and Chain only ever touch the second slot;
// the first slot changes only through Bimap.
type Pair[A, B any] struct {
	first  A
	second B
}

func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{first: a, second: b}
}

// PairOf is the curried constructor: PairOf(a)(b) == NewPair(a, b).
func PairOf[A, B any](a A) func(B) Pair[A, B] {
	return curry.Curry2(NewPair[A, B])(a)
}

func (p Pair[A, B]) First() A {
	return p.first
}

func (p Pair[A, B]) Second() B {
	return p.second
}

func (p Pair[A, B]) Unpack() (A, B) {
	return p.first, p.second
}

func (p Pair[A, B]) Map(fn func(B) B) Pair[A, B] {
	return MapPair(p, fn)
}

func (p Pair[A, B]) Bimap(onFirst func(A) A, onSecond func(B) B) Pair[A, B] {
	return BimapPair(p, onFirst, onSecond)
}

// Chain feeds the second slot to fn and keeps only the second slot of the
// pair fn returns; p's first slot is carried over untouched.
func (p Pair[A, B]) Chain(fn func(B) Pair[A, B]) Pair[A, B] {
	return ChainPair(p, fn)
}

func (p Pair[A, B]) Equals(other Pair[A, B]) bool {
	return Equal(p.first, other.first) && Equal(p.second, other.second)
}

func (p Pair[A, B]) Swap() Pair[B, A] {
	return NewPair(p.second, p.first)
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("Pair(%v, %v)", p.first, p.second)
}

func MapPair[A, B, C any](p Pair[A, B], fn func(B) C) Pair[A, C] {
	return NewPair(p.first, fn(p.second))
}

func BimapPair[A, B, C, D any](p Pair[A, B], onFirst func(A) C, onSecond func(B) D) Pair[C, D] {
	return NewPair(onFirst(p.first), onSecond(p.second))
}

// ChainPair discards the first slot of fn's result in favour of p's.
func ChainPair[A, B, C, D any](p Pair[A, B], fn func(B) Pair[C, D]) Pair[A, D] {
	return NewPair(p.first, fn(p.second).second)
}
