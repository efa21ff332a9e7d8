package singleton

import (
	"github.com/on-the-ground/singleton_go/pure"
)

// Constructor is a callable invoked in construction style.
type Constructor[T any] interface {
	Construct(args pure.Args) (T, error)
}

// Function is a callable invoked in plain call style.
type Function[T any] interface {
	Call(args pure.Args) (T, error)
}

// Members exposes static members of a callable.
type Members interface {
	Member(name string) (any, bool)
}

type ConstructorFunc[T any] func(args pure.Args) (T, error)

func (f ConstructorFunc[T]) Construct(args pure.Args) (T, error) {
	return f(args)
}

type FunctionFunc[T any] func(args pure.Args) (T, error)

func (f FunctionFunc[T]) Call(args pure.Args) (T, error) {
	return f(args)
}

var (
	_ Constructor[any] = Class[any]{}
	_ Function[any]    = Class[any]{}
	_ Members          = Class[any]{}
)

// Class bundles both call styles and static members of one callable.
// A nil Ctor or Fn makes the corresponding call style fail.
type Class[T any] struct {
	Ctor    ConstructorFunc[T]
	Fn      FunctionFunc[T]
	Statics map[string]any
}

func (c Class[T]) Construct(args pure.Args) (T, error) {
	if c.Ctor == nil {
		var zero T
		return zero, ErrNotConstructor
	}
	return c.Ctor(args)
}

func (c Class[T]) Call(args pure.Args) (T, error) {
	if c.Fn == nil {
		var zero T
		return zero, ErrNotFunction
	}
	return c.Fn(args)
}

func (c Class[T]) Member(name string) (any, bool) {
	v, ok := c.Statics[name]
	return v, ok
}
