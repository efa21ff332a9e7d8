package purefn

import (
	"github.com/on-the-ground/singleton_go/pure"
)

func TableizeI1O1[I1 comparable, O1 any](
	pureFn func(I1) O1,
	opts ...pure.TrieOption,
) func(I1) O1 {
	tableized := tableize(
		func(args pure.Args) O1 {
			return pureFn(arg[I1](args, 0))
		},
		opts,
	)
	return func(i1 I1) O1 {
		return tableized(pure.ArgsOf(pure.Value(i1)))
	}
}

func TableizeI2O1[I1, I2 comparable, O1 any](
	pureFn func(I1, I2) O1,
	opts ...pure.TrieOption,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args pure.Args) O1 {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1))
		},
		opts,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(pure.ArgsOf(pure.Value(i1), pure.Value(i2)))
	}
}

func TableizeI3O1[I1, I2, I3 comparable, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...pure.TrieOption,
) func(I1, I2, I3) O1 {
	tableized := tableize(
		func(args pure.Args) O1 {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
		},
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(pure.ArgsOf(pure.Value(i1), pure.Value(i2), pure.Value(i3)))
	}
}

func TableizeI4O1[I1, I2, I3, I4 comparable, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	opts ...pure.TrieOption,
) func(I1, I2, I3, I4) O1 {
	tableized := tableize(
		func(args pure.Args) O1 {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3))
		},
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(pure.ArgsOf(pure.Value(i1), pure.Value(i2), pure.Value(i3), pure.Value(i4)))
	}
}

// arg returns the i-th argument as T. A nil interface argument yields the zero T.
func arg[T any](args pure.Args, i int) T {
	v, _ := args.At(i).Value().(T)
	return v
}

func tableize[O any](
	pureFn func(pure.Args) O,
	opts []pure.TrieOption,
) func(pure.Args) O {
	memo := pure.NewArgsTrie[O](opts...)
	return func(args pure.Args) O {
		v, ok := memo.Load(args)
		if !ok {
			v, _ = memo.LoadOrStore(args, pureFn(args))
		}
		return v
	}
}
