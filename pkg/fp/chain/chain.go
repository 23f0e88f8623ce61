package chain

import (
	"context"

	"github.com/mjgpy3/not-my-type/pkg/fp"
)

// Chain wraps an fp.Either with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res fp.Either[error, T]
}

func Start[T any](ctx context.Context, res fp.Either[error, T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: res}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, fp.Right[error](v))
}

// FromResult begins a chain from a (value, error) pair
func FromResult[T any](ctx context.Context, v T, err error) Chain[T] {
	return Start(ctx, fp.FromResult(v, err))
}

func (c Chain[T]) Result() fp.Either[error, T] {
	return c.res
}

// Then chains a function that returns fp.Either[error, U]
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) fp.Either[error, U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: fp.ChainEither(c.guard(), func(v T) fp.Either[error, U] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error), like repo calls
func ThenTry[T, U any](c Chain[T], try func(context.Context, T) (U, error)) Chain[U] {
	return Then(c, func(ctx context.Context, v T) fp.Either[error, U] {
		u, err := try(ctx, v)
		return fp.FromResult(u, err)
	})
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: fp.MapEither(c.guard(), func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsRight() {
		if onSuccess != nil {
			onSuccess(c.ctx, c.res.FromRight())
		}
		return c
	}

	if onFailure != nil {
		onFailure(c.ctx, c.res.FromLeft())
	}
	return c
}

// Or returns the first chain holding a Right, or the first failure when
// there is none.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsRight() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsRight() {
			return alt
		}
	}
	return c
}

// Finally collapses the chain to a final value
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U) U {
	return fp.FoldEither(c.res,
		func(err error) U { return onFailure(c.ctx, err) },
		func(v T) U { return onSuccess(c.ctx, v) })
}

func (c Chain[T]) guard() fp.Either[error, T] {
	if c.res.IsRight() && c.ctx.Err() != nil {
		return fp.Left[error, T](c.ctx.Err())
	}
	return c.res
}
