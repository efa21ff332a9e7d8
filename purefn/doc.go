// Package purefn provides high-level memoization utilities for pure functions.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The centerpiece is the Tableize family of functions, which memoize pure function
// calls by their input values. Inputs are keyed with pure.Value, so every input type
// must be comparable; pointer inputs are keyed by identity.
//
// Features:
//   - TableizeI1O1 to TableizeI4O2: Typed, generic memoizers for common arities.
//   - TableizeI1E to TableizeI4E: memoizers for fallible functions that never
//     remember an error.
//   - Backed by pure.ArgsTrie; unbounded by default, bounded with any evictor
//     from package evict (e.g. pure.WithEvictor(evict.Generational(32))).
//
// This package embodies the idea that:
//
//	> If a function is pure, it should be cacheable like a mathematical function.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package purefn
