package fp

// Slice is a sequence that can be mapped and chained element-wise.
type Slice[T any] []T

func (s Slice[T]) Map(fn func(T) T) Slice[T] {
	return MapSlice(s, fn)
}

// Chain maps every element to a Slice and concatenates the results.
func (s Slice[T]) Chain(fn func(T) Slice[T]) Slice[T] {
	out := make(Slice[T], 0, len(s))
	for _, v := range s {
		out = append(out, fn(v)...)
	}
	return out
}

func (s Slice[T]) Equals(other Slice[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !Equal(s[i], other[i]) {
			return false
		}
	}
	return true
}

func MapSlice[A, B any](s Slice[A], fn func(A) B) Slice[B] {
	out := make(Slice[B], len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}
