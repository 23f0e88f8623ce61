package fp

// Mappable is implemented by containers that can transform their payload
// in place of kind, returning a container of the same type M.
type Mappable[T any, M any] interface {
	// Map applies fn to the payload, if any
	Map(fn func(T) T) M
}

// Chainable is implemented by containers that can sequence a computation
// returning another container of the same type M.
type Chainable[T any, M any] interface {
	// Chain feeds the payload to fn and flattens the result
	Chain(fn func(T) M) M
}

// Functor is a Mappable whose payload can be compared structurally.
type Functor[T any, M any] interface {
	Mappable[T, M]
	// Equals reports structural equality with other
	Equals(other M) bool
}

// Monad extends Functor with Chain.
type Monad[T any, M any] interface {
	Functor[T, M]
	Chainable[T, M]
}

var (
	_ Monad[int, Maybe[int]]          = Maybe[int]{}
	_ Monad[int, Either[string, int]] = Either[string, int]{}
	_ Monad[int, Pair[string, int]]   = Pair[string, int]{}
	_ Monad[int, Slice[int]]          = Slice[int]{}
)
