// Package chain provides a fluent wrapper around fp.Either[error, T] for
// building synchronous railway chains.
//
// A Left short-circuits every later step; a done context turns the next step
// into Left(ctx.Err()).
//
// Key operations:
// - Start/FromValue: begin a chain from an Either or a value
// - Then: switch to a new Either[error, U] via a function
// - ThenTry: call a function returning (U, error) and convert the error to Left
// - Map: transform the Right value (T -> U)
// - Ensure: run side effects without changing the result
// - Or: fall back to an alternative chain
// - Finally: collapse the chain into a final value via handlers
package chain
