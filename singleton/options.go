package singleton

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/singleton_go/pure"
)

// Option configures a Wrapped.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	evictor    pure.Evictor
	name       string
	serialized bool
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger. Hits and misses are logged at debug level,
// failures of the wrapped callable at warn level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEvictor bounds the cache with the given policy. By default nothing is evicted.
func WithEvictor(e pure.Evictor) Option {
	return func(o *options) { o.evictor = e }
}

// WithName names the wrapper in logs.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithSerializedMisses runs the callable at most once per argument sequence.
// Only callers of an equal sequence wait for each other, so the callable may
// call its own wrapper with other arguments.
func WithSerializedMisses() Option {
	return func(o *options) { o.serialized = true }
}
