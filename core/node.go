package core

import "reflect"

// Node is a vertex of the expression graph: either a *Literal or an *Apply.
//
// Equality for graph-structural purposes (traversal, memoization, cloning)
// is Go's native identity comparison on the Node interface value — i.e. the
// underlying pointer — not the structural equality Literal.Equal provides.
type Node interface {
	node()
}

// Literal is a leaf wrapping a host value, computed as-is. Literals are
// immutable once constructed; the engine never inspects or recurses into
// Value.
type Literal struct {
	// Value is the wrapped host value.
	Value interface{}
}

// NewLiteral wraps v in a new Literal node.
func NewLiteral(v interface{}) *Literal {
	return &Literal{Value: v}
}

func (*Literal) node() {}

// Equal reports structural equality against another Node: true iff other is
// a *Literal and its Value is reflect.DeepEqual to l's. This is distinct
// from Node identity and is intended for user-visible assertions (e.g. on
// bind.Binding results), never for graph-internal bookkeeping.
func (l *Literal) Equal(other Node) bool {
	o, ok := other.(*Literal)
	if !ok {
		return false
	}
	return reflect.DeepEqual(l.Value, o.Value)
}

// missingArgument is the concrete type behind the MissingArgument sentinel.
type missingArgument struct{}

func (*missingArgument) node() {}

// MissingArgument is the distinguished sentinel Node bind.Arg assigns to a
// declared parameter that received no binding. It carries no value; callers
// recognize it by identity (n == core.MissingArgument).
var MissingArgument Node = &missingArgument{}

// Tuple marks a host slice as a tuple literal rather than a list literal
// when passed to AsGraph or as a Partial argument. Go has only one native
// slice kind, so Tuple is this module's stand-in for the list/tuple
// distinction the spec draws.
type Tuple []interface{}

// Slice is an index-selector value (not itself a Node; GetItem wraps it in
// a Literal), analogous to a Python slice
// object: selects container.Args[Start:Stop] (Step reserved for future use,
// currently only a contiguous step of 1 is supported by the evaluator). A
// nil Start/Stop means "from the beginning"/"to the end" respectively.
type Slice struct {
	Start *int
	Stop  *int
	Step  *int
}

// NewSlice builds a Slice selector over [start, stop).
func NewSlice(start, stop int) Slice {
	return Slice{Start: &start, Stop: &stop}
}
