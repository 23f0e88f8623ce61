package fp

func Identity[T any](v T) T {
	return v
}

// Compose returns g after f.
func Compose[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const returns a function ignoring its argument and producing v.
func Const[A, T any](v T) func(A) T {
	return func(A) T {
		return v
	}
}
