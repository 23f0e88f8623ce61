package fp

// FromResult turns Go's (value, error) return pair into an Either: a non-nil
// err becomes Left(err), otherwise Right(v).
//
//	id, err := uuid.Parse(raw)
//	res := fp.FromResult(id, err)
func FromResult[T any](v T, err error) Either[error, T] {
	if !IsNil(err) {
		return Left[error, T](err)
	}
	return Right[error](v)
}

// ToResult is the inverse of FromResult.
func ToResult[T any](e Either[error, T]) (T, error) {
	if e.isRight {
		return e.right, nil
	}
	var zero T
	return zero, e.left
}
