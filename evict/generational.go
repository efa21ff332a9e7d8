package evict

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/singleton_go/pure"
)

var _ pure.Evictor = (*GenerationalEvictor)(nil)

// GenerationalEvictor keeps results in two generations of maxSize each.
// Once the current generation is full it becomes the previous one, and whatever
// was still in the previous generation is evicted.
type GenerationalEvictor struct {
	maxSize   int
	mu        sync.Mutex
	gen       uint64
	current   []pure.Entry
	previous  []pure.Entry
	born      map[pure.Entry]uint64
	evictions atomic.Uint64
}

func Generational(maxSize uint32) *GenerationalEvictor {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &GenerationalEvictor{
		maxSize: int(maxSize),
		current: make([]pure.Entry, 0, maxSize),
		born:    make(map[pure.Entry]uint64),
	}
}

func (g *GenerationalEvictor) Admit(entry pure.Entry) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.born[entry] = g.gen
	g.current = append(g.current, entry)
	if len(g.current) >= g.maxSize {
		g.rotate()
	}
}

func (g *GenerationalEvictor) Access(pure.Entry) bool {
	return true
}

// rotate drops the previous generation. Entries admitted again since then belong
// to a newer generation and survive.
func (g *GenerationalEvictor) rotate() {
	for _, entry := range g.previous {
		if gen, ok := g.born[entry]; ok && gen+1 == g.gen {
			entry.Evict()
			delete(g.born, entry)
			g.evictions.Add(1)
		}
	}
	g.previous = g.current
	g.current = make([]pure.Entry, 0, g.maxSize)
	g.gen++
}

func (g *GenerationalEvictor) Evictions() uint64 {
	return g.evictions.Load()
}
