package jsonwire

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is the terminal encode failure for any value that
// matches no encoding rule. It covers both "not a recognized type" and
// "recognized type but its option flag is not set"; the two causes are
// deliberately indistinguishable to the caller.
var ErrUnsupportedType = errors.New("jsonwire: unsupported type")

// ErrIntegerRange is returned under OptStrictInteger for integers
// outside ±2^53.
var ErrIntegerRange = errors.New("jsonwire: integer outside 53-bit range")

// UnsupportedTypeError reports the concrete type that matched no
// encoding rule. It unwraps to ErrUnsupportedType.
type UnsupportedTypeError struct {
	Value any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("jsonwire: unsupported type %T", e.Value)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}
