// Package functor maps over any container exposing Map, without branching on
// its concrete kind.
package functor

import (
	"github.com/mjgpy3/not-my-type/pkg/fp"
	"github.com/mjgpy3/not-my-type/pkg/fp/curry"
)

// Map forwards to m.Map(fn).
func Map[T any, M fp.Mappable[T, M]](fn func(T) T, m M) M {
	return m.Map(fn)
}

// MapWith is the curried form of Map:
//
//	inc := functor.MapWith[int, fp.Maybe[int]](add1)
//	inc(fp.Just(41)) // Just(42)
func MapWith[T any, M fp.Mappable[T, M]](fn func(T) T) func(M) M {
	return curry.Curry2(Map[T, M])(fn)
}
