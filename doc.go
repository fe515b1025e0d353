// Package exprgraph is a deferred-evaluation expression graph for describing
// parameterized computations — hyperparameter search spaces chief among them —
// as directed acyclic graphs of pending function applications, with symbolic
// leaves ("variables") bound at evaluation time rather than construction time.
//
// What is exprgraph?
//
//	A small, pure, dependency-light engine that brings together:
//
//	  - Node model: two-variant Literal/Apply graph nodes, shared by identity
//	  - Traversal: lazy depth-first and topological iterators, cycle-safe
//	  - Evaluator: memoizing, lazily short-circuits indexed sequence lookups
//	  - Param binder: maps a callable's declared parameters to child nodes
//	  - Graph ops: sharing-preserving Clone and identity-keyed ReplaceInput
//
// Everything is organized under subpackages:
//
//	core/    — Node, Literal, Apply, builders, operators, the lifter
//	dfs/     — DepthFirst and Topological traversal, cycle detection
//	eval/    — Evaluate, with memoization and an injectable instantiator
//	bind/    — parameter-name to child-node binding for introspectable Callables
//	ops/     — Clone and ReplaceInput
//	formula/ — string-expression Callables backed by govaluate
//
// A typical graph is built with core.Partial and core.Variable, walked with
// dfs.Topological, and resolved with eval.Evaluate against a name→value
// binding map supplied by whatever optimizer is driving the search.
package exprgraph
