package evict

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/singleton_go/pure"
)

var _ pure.Evictor = (*TTLEvictor)(nil)

// TTLEvictor gives every result a lifetime window starting when it was stored.
// Expiry is lazy: an expired result is dropped when it is next hit, or by Sweep.
type TTLEvictor struct {
	ttl       time.Duration
	now       func() time.Time
	mu        sync.Mutex
	spans     map[pure.Entry]timespan.TimeSpan
	evictions atomic.Uint64
}

type TTLOption func(*TTLEvictor)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) TTLOption {
	return func(e *TTLEvictor) { e.now = now }
}

func TTL(ttl time.Duration, opts ...TTLOption) *TTLEvictor {
	if ttl <= 0 {
		panic("ttl should be greater than 0")
	}
	e := &TTLEvictor{
		ttl:   ttl,
		now:   time.Now,
		spans: make(map[pure.Entry]timespan.TimeSpan),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *TTLEvictor) Admit(entry pure.Entry) {
	now := e.now()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spans[entry] = timespan.BetweenTimes(now, now.Add(e.ttl))
}

func (e *TTLEvictor) Access(entry pure.Entry) bool {
	now := e.now()
	e.mu.Lock()
	defer e.mu.Unlock()
	span, ok := e.spans[entry]
	if !ok {
		// stored but not admitted yet
		return true
	}
	if span.Contains(now) {
		return true
	}
	delete(e.spans, entry)
	e.evictions.Add(1)
	return false
}

// Sweep evicts every expired result and returns how many were dropped.
func (e *TTLEvictor) Sweep() int {
	now := e.now()
	e.mu.Lock()
	defer e.mu.Unlock()
	swept := 0
	for entry, span := range e.spans {
		if span.Contains(now) {
			continue
		}
		entry.Evict()
		delete(e.spans, entry)
		swept++
	}
	e.evictions.Add(uint64(swept))
	return swept
}

func (e *TTLEvictor) Evictions() uint64 {
	return e.evictions.Load()
}
