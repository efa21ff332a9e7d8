package singleton

import (
	"fmt"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/singleton_go/pure"
	"github.com/on-the-ground/singleton_go/shared/helper"
)

var (
	ErrNotCallable    = errors.New("target is neither a constructor nor a function")
	ErrNotConstructor = errors.New("target is not a constructor")
	ErrNotFunction    = errors.New("target is not a function")
	ErrNoMember       = errors.New("no such member")
)

// Wrapped is the memoizing façade of one callable. It owns one args trie,
// shared by both call styles, created empty by Wrap.
type Wrapped[T any] struct {
	id         uuid.UUID
	name       string
	target     any
	ctor       Constructor[T]
	fn         Function[T]
	index      *pure.ArgsTrie[T]
	evictor    pure.Evictor
	serialized bool
	logger     *zap.Logger

	hits     atomic.Uint64
	misses   atomic.Uint64
	failures atomic.Uint64
}

// Wrap memoizes target, which must implement Constructor[T], Function[T] or both.
func Wrap[T any](target any, opts ...Option) (*Wrapped[T], error) {
	ctor, isCtor := target.(Constructor[T])
	fn, isFn := target.(Function[T])
	if !isCtor && !isFn {
		return nil, errors.Wrapf(ErrNotCallable, "%T", target)
	}

	o := applyOptions(opts)
	w := &Wrapped[T]{
		id:      uuid.New(),
		name:    o.name,
		target:  target,
		ctor:    ctor,
		fn:      fn,
		index:      pure.NewArgsTrie[T](pure.WithEvictor(o.evictor)),
		evictor:    o.evictor,
		serialized: o.serialized,
		logger:     o.logger,
	}
	w.logger = w.logger.With(zap.String("wrapperId", w.id.String()))
	if w.name != "" {
		w.logger = w.logger.With(zap.String("wrapper", w.name))
	}
	w.logger.Info("wrapped callable",
		zap.String("target", fmt.Sprintf("%T", target)),
		zap.Bool("constructor", isCtor),
		zap.Bool("function", isFn),
		zap.Bool("serializedMisses", o.serialized),
	)
	return w, nil
}

// MustWrap is the panic-on-failure variant of Wrap.
func MustWrap[T any](target any, opts ...Option) *Wrapped[T] {
	w, err := Wrap[T](target, opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// New invokes the target in construction style.
func (w *Wrapped[T]) New(args ...pure.ArgKey) (T, error) {
	if w.ctor == nil {
		var zero T
		return zero, errors.Wrapf(ErrNotConstructor, "%T", w.target)
	}
	return w.memoize("construct", pure.Args(args), w.ctor.Construct)
}

// Call invokes the target in plain call style.
func (w *Wrapped[T]) Call(args ...pure.ArgKey) (T, error) {
	if w.fn == nil {
		var zero T
		return zero, errors.Wrapf(ErrNotFunction, "%T", w.target)
	}
	return w.memoize("call", pure.Args(args), w.fn.Call)
}

func (w *Wrapped[T]) memoize(style string, args pure.Args, produce func(pure.Args) (T, error)) (T, error) {
	if v, ok := w.lookup(style, args); ok {
		return v, nil
	}

	if w.serialized {
		v, loaded, err := w.index.LoadOrCompute(args, func() (T, error) {
			return w.miss(style, args, produce)
		})
		if loaded {
			// another caller stored it while we waited
			w.hit(style, args)
		}
		return v, err
	}

	v, err := w.miss(style, args, produce)
	if err != nil {
		return v, err
	}
	actual, loaded := w.index.LoadOrStore(args, v)
	if loaded {
		w.debug("concurrent miss lost, keeping first result", style, args)
	}
	return actual, nil
}

func (w *Wrapped[T]) lookup(style string, args pure.Args) (T, bool) {
	v, ok := w.index.Load(args)
	if ok {
		w.hit(style, args)
	}
	return v, ok
}

func (w *Wrapped[T]) hit(style string, args pure.Args) {
	w.hits.Add(1)
	w.debug("memo hit", style, args)
}

func (w *Wrapped[T]) miss(style string, args pure.Args, produce func(pure.Args) (T, error)) (T, error) {
	w.misses.Add(1)
	w.debug("memo miss", style, args)
	return w.produce(style, args, produce)
}

// debug skips formatting the arguments unless debug logging is on.
func (w *Wrapped[T]) debug(msg, style string, args pure.Args) {
	if ce := w.logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(w.fields(style, args)...)
	}
}

// fields identify one call in logs. argsHash is equal for equal sequences.
func (w *Wrapped[T]) fields(style string, args pure.Args) []zap.Field {
	return []zap.Field{
		zap.String("style", style),
		zap.Uint64("argsHash", args.Hash()),
		zap.Stringer("args", args),
	}
}

// produce runs the target. Errors and panics propagate unchanged and leave
// the index untouched.
func (w *Wrapped[T]) produce(style string, args pure.Args, fn func(pure.Args) (T, error)) (T, error) {
	defer func() {
		if r := recover(); r != nil {
			w.failures.Add(1)
			w.logger.Warn("wrapped callable panicked, nothing cached",
				append(w.fields(style, args), zap.Any("panic", r))...)
			panic(r)
		}
	}()

	v, err := fn(args)
	if err != nil {
		w.failures.Add(1)
		w.logger.Warn("wrapped callable failed, nothing cached",
			append(w.fields(style, args), zap.Error(err))...)
	}
	return v, err
}

// Member forwards static member access to the target.
func (w *Wrapped[T]) Member(name string) (any, bool) {
	if m, ok := w.target.(Members); ok {
		return m.Member(name)
	}
	return nil, false
}

// MemberAs returns the static member name of the wrapped target asserted to V.
func MemberAs[V, T any](w *Wrapped[T], name string) (V, error) {
	return helper.GetTypedValueOf[V](func() (any, error) {
		v, ok := w.Member(name)
		if !ok {
			return nil, errors.Wrapf(ErrNoMember, "%q on %T", name, w.target)
		}
		return v, nil
	})
}

// Unwrap returns the original target.
func (w *Wrapped[T]) Unwrap() any { return w.target }

func (w *Wrapped[T]) ID() uuid.UUID { return w.id }

func (w *Wrapped[T]) Name() string { return w.name }

// Len returns the number of cached results.
func (w *Wrapped[T]) Len() int { return w.index.Len() }

// Stats is a snapshot of the wrapper's counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Failures  uint64
	Evictions uint64
	Size      int
}

func (w *Wrapped[T]) Stats() Stats {
	s := Stats{
		Hits:     w.hits.Load(),
		Misses:   w.misses.Load(),
		Failures: w.failures.Load(),
		Size:     w.index.Len(),
	}
	if c, ok := w.evictor.(pure.EvictionCounter); ok {
		s.Evictions = c.Evictions()
	}
	return s
}
