package pure

import (
	"sync"
	"sync/atomic"
)

// ArgsTrie maps complete argument sequences to stored results.
//
// Each edge is labelled by one ArgKey; a node holds a result only when a full
// sequence ending there has been stored. The empty sequence is the root itself.
// Nodes are never removed, so memory grows with the number of distinct sequences
// seen, not with the number of calls.
type ArgsTrie[O any] struct {
	root    *node[O]
	size    atomic.Int64
	evictor Evictor
}

type node[O any] struct {
	children sync.Map // trieKey -> *node[O]
	result   atomic.Pointer[O]
	size     *atomic.Int64
	compute  sync.Mutex // held while LoadOrCompute produces this node's result
}

var _ Entry = (*node[any])(nil)

func (n *node[O]) Evict() {
	if n.result.Swap(nil) != nil {
		n.size.Add(-1)
	}
}

func (n *node[O]) evictIf(p *O) {
	if n.result.CompareAndSwap(p, nil) {
		n.size.Add(-1)
	}
}

func NewArgsTrie[O any](opts ...TrieOption) *ArgsTrie[O] {
	cfg := trieConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &ArgsTrie[O]{evictor: cfg.evictor}
	t.root = t.newNode()
	return t
}

func (t *ArgsTrie[O]) newNode() *node[O] {
	return &node[O]{size: &t.size}
}

// Load returns the result stored for args.
// A missing edge and a node without a result are the same miss.
func (t *ArgsTrie[O]) Load(args Args) (O, bool) {
	var zero O
	n, ok := t.find(args)
	if !ok {
		return zero, false
	}
	p, ok := t.hit(n)
	if !ok {
		return zero, false
	}
	return *p, true
}

// Store sets the result for args, replacing any result already stored.
func (t *ArgsTrie[O]) Store(args Args, value O) {
	n := t.traverse(args)
	if n.result.Swap(&value) == nil {
		t.admit(n)
	}
}

// LoadOrStore returns the stored result for args if present. Otherwise it stores
// value and returns it. When several callers race on the same sequence the first
// store wins and the others get the winner back with loaded set.
func (t *ArgsTrie[O]) LoadOrStore(args Args, value O) (actual O, loaded bool) {
	return t.loadOrStore(t.traverse(args), value)
}

// LoadOrCompute returns the stored result for args, or runs compute and stores
// what it returns. Concurrent callers on the same sequence wait for a single
// compute; callers on other sequences never wait, so compute may call back into
// the trie with different arguments. A failed or panicking compute stores nothing
// and the next caller computes again.
//
// compute must not ask for its own sequence: that waits on itself forever.
func (t *ArgsTrie[O]) LoadOrCompute(args Args, compute func() (O, error)) (actual O, loaded bool, err error) {
	n := t.traverse(args)
	if p, ok := t.hit(n); ok {
		return *p, true, nil
	}

	n.compute.Lock()
	defer n.compute.Unlock()
	if p, ok := t.hit(n); ok {
		return *p, true, nil
	}

	v, err := compute()
	if err != nil {
		return v, false, err
	}
	// Store and LoadOrStore do not take the compute lock
	actual, loaded = t.loadOrStore(n, v)
	return actual, loaded, nil
}

func (t *ArgsTrie[O]) loadOrStore(n *node[O], value O) (actual O, loaded bool) {
	for {
		if p, ok := t.hit(n); ok {
			return *p, true
		}
		if n.result.CompareAndSwap(nil, &value) {
			t.admit(n)
			return value, false
		}
	}
}

// Len returns the number of stored results.
func (t *ArgsTrie[O]) Len() int {
	return int(t.size.Load())
}

func (t *ArgsTrie[O]) hit(n *node[O]) (*O, bool) {
	p := n.result.Load()
	if p == nil {
		return nil, false
	}
	if t.evictor != nil && !t.evictor.Access(n) {
		n.evictIf(p)
		return nil, false
	}
	return p, true
}

func (t *ArgsTrie[O]) admit(n *node[O]) {
	t.size.Add(1)
	if t.evictor != nil {
		t.evictor.Admit(n)
	}
}

// find walks args without creating nodes and stops at the first missing edge.
func (t *ArgsTrie[O]) find(args Args) (*node[O], bool) {
	n := t.root
	for _, k := range args {
		v, ok := n.children.Load(k.trieKey())
		if !ok {
			return nil, false
		}
		n = v.(*node[O])
	}
	return n, true
}

func (t *ArgsTrie[O]) traverse(args Args) *node[O] {
	n := t.root
	for _, k := range args {
		key := k.trieKey()
		v, ok := n.children.Load(key)
		if !ok {
			v, _ = n.children.LoadOrStore(key, t.newNode())
		}
		n = v.(*node[O])
	}
	return n
}
