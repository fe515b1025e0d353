package core

// KwArg is one keyword-argument child of an Apply: the parameter name and
// the Node bound to it. Kwargs on an Apply is an ordered slice of these
// rather than a Go map, because the spec requires deterministic "mapping
// order" for traversal (children are Args followed by Kwargs values in
// order) — a guarantee a map iteration cannot give.
type KwArg struct {
	Name  string
	Value Node
}

// Apply is an interior node representing a pending invocation of Func over
// positional Args and keyword Kwargs, both ordered slices of child Nodes.
// Func is never invoked by constructing an Apply — only eval.Evaluate does
// that, by walking down to Literals and back up.
type Apply struct {
	Func   Callable
	Args   []Node
	Kwargs []KwArg
}

func (*Apply) node() {}

// NewApply builds an Apply over fn, args, and kwargs. A nil kwargs is
// normalized to an empty, non-nil slice, matching the spec invariant that
// Kwargs is always present.
func NewApply(fn Callable, args []Node, kwargs []KwArg) *Apply {
	if args == nil {
		args = []Node{}
	}
	if kwargs == nil {
		kwargs = []KwArg{}
	}
	return &Apply{Func: fn, Args: args, Kwargs: kwargs}
}

// Children returns Args followed by the Kwargs values, in order — the
// traversal order the spec mandates for DFS and topological walks.
func (a *Apply) Children() []Node {
	out := make([]Node, 0, len(a.Args)+len(a.Kwargs))
	out = append(out, a.Args...)
	for _, kv := range a.Kwargs {
		out = append(out, kv.Value)
	}
	return out
}

// Kwarg returns the child bound to name and whether it was found.
func (a *Apply) Kwarg(name string) (Node, bool) {
	for _, kv := range a.Kwargs {
		if kv.Name == name {
			return kv.Value, true
		}
	}
	return nil, false
}

// SetKwarg sets (or replaces) the child bound to name. Mutation after
// construction is permitted but invalidates any prior traversal/eval
// results and may introduce a cycle — the caller's responsibility, per the
// spec's mutation discipline; dfs.DepthFirst/dfs.Topological only catch a
// cycle the next time the graph is traversed.
func (a *Apply) SetKwarg(name string, v Node) {
	for i := range a.Kwargs {
		if a.Kwargs[i].Name == name {
			a.Kwargs[i].Value = v
			return
		}
	}
	a.Kwargs = append(a.Kwargs, KwArg{Name: name, Value: v})
}

// AppendArg appends a single positional child.
func (a *Apply) AppendArg(v Node) {
	a.Args = append(a.Args, v)
}

// ExtendArgs appends multiple positional children.
func (a *Apply) ExtendArgs(vs []Node) {
	a.Args = append(a.Args, vs...)
}

// Call always fails: an Apply is a pending invocation, not a callable value.
// Use eval.Evaluate to actually run the graph.
func (a *Apply) Call(args ...interface{}) (interface{}, error) {
	return nil, ErrCalledDeferredNode
}
