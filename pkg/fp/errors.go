package fp

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyValue   = errors.New("empty value")
	ErrWrongVariant = errors.New("wrong variant")
)

func panicWith(sentinel error, msg string) {
	panic(fmt.Errorf("%w: %s", sentinel, msg))
}
