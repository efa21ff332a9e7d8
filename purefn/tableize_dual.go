package purefn

import (
	"github.com/on-the-ground/singleton_go/pure"
)

func TableizeI1O2[I1 comparable, O1, O2 any](
	pureFn func(I1) (O1, O2),
	opts ...pure.TrieOption,
) func(I1) (O1, O2) {
	tableized := tableizeDualOutput(
		func(args pure.Args) (O1, O2) {
			return pureFn(arg[I1](args, 0))
		},
		opts,
	)
	return func(i1 I1) (O1, O2) {
		return tableized(pure.ArgsOf(pure.Value(i1)))
	}
}

func TableizeI2O2[I1, I2 comparable, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	opts ...pure.TrieOption,
) func(I1, I2) (O1, O2) {
	tableized := tableizeDualOutput(
		func(args pure.Args) (O1, O2) {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1))
		},
		opts,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		return tableized(pure.ArgsOf(pure.Value(i1), pure.Value(i2)))
	}
}

func TableizeI3O2[I1, I2, I3 comparable, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	opts ...pure.TrieOption,
) func(I1, I2, I3) (O1, O2) {
	tableized := tableizeDualOutput(
		func(args pure.Args) (O1, O2) {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
		},
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		return tableized(pure.ArgsOf(pure.Value(i1), pure.Value(i2), pure.Value(i3)))
	}
}

func TableizeI4O2[I1, I2, I3, I4 comparable, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	opts ...pure.TrieOption,
) func(I1, I2, I3, I4) (O1, O2) {
	tableized := tableizeDualOutput(
		func(args pure.Args) (O1, O2) {
			return pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3))
		},
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		return tableized(pure.ArgsOf(pure.Value(i1), pure.Value(i2), pure.Value(i3), pure.Value(i4)))
	}
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func tableizeDualOutput[O1, O2 any](
	pureFn func(pure.Args) (O1, O2),
	opts []pure.TrieOption,
) func(pure.Args) (O1, O2) {
	memo := pure.NewArgsTrie[result[O1, O2]](opts...)
	return func(args pure.Args) (O1, O2) {
		res, ok := memo.Load(args)
		if !ok {
			v1, v2 := pureFn(args)
			res, _ = memo.LoadOrStore(args, result[O1, O2]{O1: v1, O2: v2})
		}
		return res.O1, res.O2
	}
}
