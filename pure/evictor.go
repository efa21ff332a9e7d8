package pure

// Entry is a stored result as seen by an Evictor.
type Entry interface {
	// Evict drops the stored result. The next lookup of its sequence is a miss.
	// Evicting an already empty entry is a no-op.
	Evict()
}

// Evictor decides when stored results are dropped.
//
// Admit is called once a new result has been stored. Access is called on every hit;
// returning false turns the hit into a miss and the trie drops the result that was hit.
// Implementations must be safe for concurrent use.
type Evictor interface {
	Admit(e Entry)
	Access(e Entry) bool
}

// EvictionCounter is implemented by evictors that count what they evicted.
type EvictionCounter interface {
	Evictions() uint64
}

// TrieOption configures an ArgsTrie.
type TrieOption func(*trieConfig)

type trieConfig struct {
	evictor Evictor
}

// WithEvictor bounds the trie with the given policy.
// Without it every result is retained for the lifetime of the trie, and identity keys
// keep their referents reachable for as long.
func WithEvictor(e Evictor) TrieOption {
	return func(c *trieConfig) { c.evictor = e }
}
