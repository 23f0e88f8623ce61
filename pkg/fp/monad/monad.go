// Package monad chains over any container exposing Chain, without branching
// on its concrete kind.
package monad

import (
	"github.com/mjgpy3/not-my-type/pkg/fp"
	"github.com/mjgpy3/not-my-type/pkg/fp/curry"
)

// Chain forwards to m.Chain(fn).
func Chain[T any, M fp.Chainable[T, M]](fn func(T) M, m M) M {
	return m.Chain(fn)
}

// ChainWith is the curried form of Chain.
func ChainWith[T any, M fp.Chainable[T, M]](fn func(T) M) func(M) M {
	return curry.Curry2(Chain[T, M])(fn)
}
