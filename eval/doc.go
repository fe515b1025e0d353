// Package eval evaluates an expression graph rooted at a core.Node down to
// a concrete host value.
//
// Evaluation is memoizing (a node reached by more than one path is
// evaluated once), resolves core.Variable nodes against a caller-supplied
// Bindings map, and short-circuits indexing into a core.MakeList/MakeTuple
// node so that unused sibling elements are never evaluated. It runs
// entirely on the calling goroutine: Evaluate starts no goroutines and
// accepts no context.Context, since nothing in it ever blocks on I/O or an
// external event.
//
// Errors:
//
//	UnboundVariable - a core.Variable node's name has no entry in Bindings.
package eval
