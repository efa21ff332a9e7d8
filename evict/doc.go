// Package evict provides eviction policies for pure.ArgsTrie.
//
// A trie without an evictor keeps every result for its whole lifetime. The policies
// here bound that retention:
//
//   - LRU: a fixed number of results, least recently used dropped first.
//   - TTL: every result lives for a fixed window after it was stored.
//   - Generational: results are kept in two generations of bounded size; when the
//     current one fills up the previous one is dropped wholesale.
//
// Evicted results are dropped from their trie node; the node and its edges stay.
package evict
