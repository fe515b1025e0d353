// Package core defines the central Node, Literal, and Apply types of the
// expression graph, along with the lifter that normalizes host values into
// graph nodes and the builders/operators that construct pending calls.
//
// A Node is either a *Literal (an immutable wrapped host value) or an
// *Apply (a pending invocation of a Callable over child Nodes). Identity —
// not structural equality — is what traversal, memoization, and cloning key
// on: two separately built Literals wrapping the same value are distinct
// nodes.
//
// Errors:
//
//	ErrCalledDeferredNode - an *Apply was invoked directly instead of via eval.Evaluate.
package core
