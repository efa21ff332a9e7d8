package purefn

import (
	"github.com/on-the-ground/singleton_go/pure"
)

// TableizeI1E memoizes a fallible function. Only successful results are stored;
// an error is returned as is and the next call with the same input retries.
func TableizeI1E[I1 comparable, O any](
	fn func(I1) (O, error),
	opts ...pure.TrieOption,
) func(I1) (O, error) {
	tableized := tableizeFallible(
		func(args pure.Args) (O, error) {
			return fn(arg[I1](args, 0))
		},
		opts,
	)
	return func(i1 I1) (O, error) {
		return tableized(pure.ArgsOf(pure.Value(i1)))
	}
}

func TableizeI2E[I1, I2 comparable, O any](
	fn func(I1, I2) (O, error),
	opts ...pure.TrieOption,
) func(I1, I2) (O, error) {
	tableized := tableizeFallible(
		func(args pure.Args) (O, error) {
			return fn(arg[I1](args, 0), arg[I2](args, 1))
		},
		opts,
	)
	return func(i1 I1, i2 I2) (O, error) {
		return tableized(pure.ArgsOf(pure.Value(i1), pure.Value(i2)))
	}
}

func TableizeI3E[I1, I2, I3 comparable, O any](
	fn func(I1, I2, I3) (O, error),
	opts ...pure.TrieOption,
) func(I1, I2, I3) (O, error) {
	tableized := tableizeFallible(
		func(args pure.Args) (O, error) {
			return fn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
		},
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3) (O, error) {
		return tableized(pure.ArgsOf(pure.Value(i1), pure.Value(i2), pure.Value(i3)))
	}
}

func TableizeI4E[I1, I2, I3, I4 comparable, O any](
	fn func(I1, I2, I3, I4) (O, error),
	opts ...pure.TrieOption,
) func(I1, I2, I3, I4) (O, error) {
	tableized := tableizeFallible(
		func(args pure.Args) (O, error) {
			return fn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3))
		},
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O, error) {
		return tableized(pure.ArgsOf(pure.Value(i1), pure.Value(i2), pure.Value(i3), pure.Value(i4)))
	}
}

func tableizeFallible[O any](
	fn func(pure.Args) (O, error),
	opts []pure.TrieOption,
) func(pure.Args) (O, error) {
	memo := pure.NewArgsTrie[O](opts...)
	return func(args pure.Args) (O, error) {
		if v, ok := memo.Load(args); ok {
			return v, nil
		}
		v, err := fn(args)
		if err != nil {
			return v, err
		}
		v, _ = memo.LoadOrStore(args, v)
		return v, nil
	}
}
