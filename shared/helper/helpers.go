package helper

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// ErrUnexpectedType is returned when a stored value does not have the requested type.
var ErrUnexpectedType = errors.New("unexpected type")

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if the getter fails or the type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, errors.Wrap(err, "failed to get value")
	}

	val, ok := res.(T)
	if !ok {
		return zero, errors.Wrapf(ErrUnexpectedType, "%T is not %s", res, reflect.TypeFor[T]())
	}

	return val, nil
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
// Use when failure is a programming error (e.g. a constructor reading its own arguments).
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}
