package evict

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru"

	"github.com/on-the-ground/singleton_go/pure"
)

var _ pure.Evictor = (*LRUEvictor)(nil)

// LRUEvictor keeps at most size results.
type LRUEvictor struct {
	cache     *lru.Cache
	evictions atomic.Uint64
}

func LRU(size int) (*LRUEvictor, error) {
	e := &LRUEvictor{}
	cache, err := lru.NewWithEvict(size, func(key, _ interface{}) {
		key.(pure.Entry).Evict()
		e.evictions.Add(1)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "lru evictor of size %d", size)
	}
	e.cache = cache
	return e, nil
}

func (e *LRUEvictor) Admit(entry pure.Entry) {
	e.cache.Add(entry, struct{}{})
}

// Access refreshes the recency of entry. Evicted entries never reach here because
// their result is already gone.
func (e *LRUEvictor) Access(entry pure.Entry) bool {
	e.cache.Get(entry)
	return true
}

func (e *LRUEvictor) Evictions() uint64 {
	return e.evictions.Load()
}
