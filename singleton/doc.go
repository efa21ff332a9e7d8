// Package singleton memoizes constructors and functions by their argument list.
//
// A wrapped callable returns the result it produced before whenever it is invoked
// again with an equal argument sequence, and produces and remembers a new result
// otherwise. Arguments are compared position by position, by value or by identity
// depending on how each ArgKey was built (see package pure).
//
//	points := singleton.MustWrap[*Point](singleton.ConstructorFunc[*Point](newPoint))
//
//	a, _ := points.New(pure.Value("a"), pure.Value(1))
//	b, _ := points.New(pure.Value("a"), pure.Value(1)) // a == b, newPoint ran once
//
// Failures are never remembered: when the underlying callable returns an error or
// panics, nothing is stored and the next call with the same arguments retries it.
//
// A Wrapped is safe for concurrent use. Racing misses on the same arguments may run
// the callable more than once, but the first stored result wins and every caller
// gets it. WithSerializedMisses guarantees a single run per argument sequence.
package singleton
