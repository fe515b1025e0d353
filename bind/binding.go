package bind

import "github.com/ograph/exprgraph/core"

type bindingKind int

const (
	kindSingle bindingKind = iota
	kindVarArgs
	kindVarKwargs
)

// Binding is one parameter's resolved assignment: exactly one of a single
// Node (an ordinary or defaulted parameter), a slice of Node (the
// parameter collecting a variadic-positional tail), or a map of Node
// keyed by name (the parameter collecting unrecognized keyword
// arguments). Exactly one of IsSingle/IsVarArgs/IsVarKwargs is true for
// any Binding Arg returns.
type Binding struct {
	kind      bindingKind
	single    core.Node
	varArgs   []core.Node
	varKwargs map[string]core.Node
}

func singleBinding(n core.Node) Binding { return Binding{kind: kindSingle, single: n} }

func varArgsBinding(ns []core.Node) Binding {
	if ns == nil {
		ns = []core.Node{}
	}
	return Binding{kind: kindVarArgs, varArgs: ns}
}

func varKwargsBinding(m map[string]core.Node) Binding {
	if m == nil {
		m = map[string]core.Node{}
	}
	return Binding{kind: kindVarKwargs, varKwargs: m}
}

// IsSingle reports whether this Binding carries a single Node.
func (b Binding) IsSingle() bool { return b.kind == kindSingle }

// Single returns the bound Node; only meaningful when IsSingle is true.
func (b Binding) Single() core.Node { return b.single }

// IsVarArgs reports whether this Binding carries the variadic-positional
// tail.
func (b Binding) IsVarArgs() bool { return b.kind == kindVarArgs }

// VarArgs returns the bound variadic-positional arguments, in order; only
// meaningful when IsVarArgs is true.
func (b Binding) VarArgs() []core.Node { return b.varArgs }

// IsVarKwargs reports whether this Binding carries the collected
// unrecognized keyword arguments.
func (b Binding) IsVarKwargs() bool { return b.kind == kindVarKwargs }

// VarKwargs returns the bound unrecognized keyword arguments; only
// meaningful when IsVarKwargs is true.
func (b Binding) VarKwargs() map[string]core.Node { return b.varKwargs }
