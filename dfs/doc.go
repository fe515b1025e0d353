// Package dfs provides lazy depth-first and topological traversal of an
// expression graph rooted at a core.Node, implemented as Go 1.23
// range-over-func iterators so a caller can stop consuming a traversal
// (via break) without the producer doing any extra work past that point.
//
// Both traversals share a single-threaded, synchronous walk: no goroutine
// is ever started, and a node already yielded is never yielded again even
// if several Apply parents reference it. A node reached while it is still
// on the current root-to-node path is a directed cycle, reported as a
// *CycleError rather than silently looping.
//
// Errors:
//
//	CycleError         - the graph contains a directed cycle.
//	ErrEmptyActivePath - internal invariant violation in path bookkeeping.
package dfs
