package pure

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"

	"github.com/on-the-ground/singleton_go/shared/helper"
)

// Args is the ordered argument list of one call.
// Order is significant: (a, b) and (b, a) are different sequences.
type Args []ArgKey

// ArgsOf is a readability helper for building Args inline.
func ArgsOf(keys ...ArgKey) Args {
	return Args(keys)
}

func (a Args) Len() int { return len(a) }

func (a Args) At(i int) ArgKey { return a[i] }

// Values returns the original arguments in call order.
func (a Args) Values() []any {
	values := make([]any, len(a))
	for i, k := range a {
		values[i] = k.raw
	}
	return values
}

// Equal reports whether both sequences select the same trie path.
func (a Args) Equal(other Args) bool {
	if len(a) != len(other) {
		return false
	}
	for i := range a {
		if !a[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

const partitionDelimiter = "\x1f"

// PartitionKey joins the partition keys of every position.
func (a Args) PartitionKey() string {
	parts := make([]string, len(a))
	for i, k := range a {
		parts[i] = k.PartitionKey()
	}
	return strings.Join(parts, partitionDelimiter)
}

// Hash is the xxhash of PartitionKey. Equal sequences always share a hash.
func (a Args) Hash() uint64 {
	return xxhash.Sum64String(a.PartitionKey())
}

func (a Args) String() string {
	parts := make([]string, len(a))
	for i, k := range a {
		parts[i] = k.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

var ErrArgIndex = errors.New("argument index out of range")

// ArgAs returns the i-th argument asserted to T.
func ArgAs[T any](args Args, i int) (T, error) {
	if i < 0 || i >= len(args) {
		var zero T
		return zero, errors.Wrapf(ErrArgIndex, "index %d, %d arguments", i, len(args))
	}
	return helper.GetTypedValueOf[T](func() (any, error) {
		return args[i].raw, nil
	})
}

// MustArgAs is the panic-on-failure variant of ArgAs.
func MustArgAs[T any](args Args, i int) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return ArgAs[T](args, i)
	})
}
