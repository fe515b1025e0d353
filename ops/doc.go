// Package ops provides structural operations over an expression graph that
// the core package itself has no need of: cloning a subgraph into an
// independent copy, and swapping one child of an Apply for another.
package ops
