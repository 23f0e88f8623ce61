// Package fp provides immutable algebraic containers and the operations that
// compose them.
//
// Containers:
// - Maybe[T]: Just a value or Nothing
// - Either[L, R]: Left (failure) or Right (success)
// - Pair[A, B]: an ordered 2-tuple
// - Slice[T]: a mappable sequence
//
// Every container exposes same-type Map/Chain methods, which makes it usable
// through the functor and monad packages. Operations that change the payload
// type (MapMaybe, ChainEither, ChainPair, ...) and applicative application
// (ApMaybe, ApEither) are free functions because Go methods cannot declare
// type parameters.
//
// FromJust, FromLeft and FromRight are unsafe extractors: they panic with
// ErrEmptyValue or ErrWrongVariant when the variant does not hold. Check
// IsJust/IsLeft/IsRight first or use WithDefault, Maybe or Either instead.
package fp
