// Package curry provides partial application for multi-argument functions.
//
// Two flavours are offered:
// - N: an untyped engine that accepts arguments in any grouping until the
//   arity is reached, e.g. f(a)(b, c) and f(a, b)(c) for a 3-ary f
// - Curry2/Curry3/Uncurry2/Uncurry3/Partial2/Flip2: typed helpers used by the
//   fp packages to build their curried forms
//
// Supplying more arguments than the arity allows panics with ErrArity.
package curry
