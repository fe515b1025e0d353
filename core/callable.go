package core

// Callable is any host function an Apply node may defer. Its Call method
// receives already-evaluated positional and keyword arguments and returns
// the invocation's result.
//
// Go function values are not comparable and carry no parameter-name
// metadata, so Callable is an interface implemented by small adapter
// values (see NewFunc) rather than a bare func type: this gives every
// Callable a stable identity (ordinary Go interface/pointer equality) for
// Apply.Func comparisons, and an optional, explicit parameter schema via
// Introspectable for bind.Arg to use — reflection over an arbitrary Go
// func's argument names does not exist, so callables that want parameter
// binding support must declare their schema.
type Callable interface {
	// Name identifies the callable for diagnostics; it is not used for
	// identity (Callable values are compared by Go's native interface
	// equality).
	Name() string

	// Call invokes the callable with already-evaluated positional
	// arguments and keyword arguments.
	Call(args []interface{}, kwargs map[string]interface{}) (interface{}, error)
}

// ParamSpec declares a Callable's formal parameter schema, mirroring what a
// reflective language can read off a function object directly.
type ParamSpec struct {
	// Positional lists the fixed positional parameter names, in order.
	Positional []string

	// VarArgs is the name of the variadic-positional parameter, or "" if
	// the callable does not accept one.
	VarArgs string

	// VarKwargs is the name of the variadic-keyword parameter, or "" if
	// the callable does not accept one.
	VarKwargs string

	// Defaults maps a trailing subset of Positional to their default
	// values (raw host values, not Nodes — bind.Arg wraps them in a
	// Literal).
	Defaults map[string]interface{}
}

// Introspectable is implemented by Callables that declare a ParamSpec,
// enabling bind.Arg to compute parameter bindings for Apply nodes built
// over them.
type Introspectable interface {
	Params() ParamSpec
}

// funcBody is the shape of a Callable's actual logic.
type funcBody func(args []interface{}, kwargs map[string]interface{}) (interface{}, error)

// adaptedFunc is a Callable built from a plain Go closure with no declared
// ParamSpec. It deliberately has no Params method, so it does not satisfy
// Introspectable — bind.Arg rejects it with ErrNotIntrospectable rather than
// silently handing out a zero ParamSpec{}.
type adaptedFunc struct {
	name string
	fn   funcBody
}

func (c *adaptedFunc) Name() string { return c.name }

func (c *adaptedFunc) Call(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return c.fn(args, kwargs)
}

// introspectableFunc is an adaptedFunc that also declares a ParamSpec,
// satisfying Introspectable.
type introspectableFunc struct {
	adaptedFunc
	spec ParamSpec
}

func (c *introspectableFunc) Params() ParamSpec { return c.spec }

// NewFunc adapts fn into a Callable named name. If spec is non-nil, the
// resulting Callable also implements Introspectable, reporting *spec from
// Params(); if spec is nil, the resulting Callable does not implement
// Introspectable at all.
func NewFunc(name string, fn func(args []interface{}, kwargs map[string]interface{}) (interface{}, error), spec *ParamSpec) Callable {
	base := adaptedFunc{name: name, fn: fn}
	if spec == nil {
		return &base
	}
	return &introspectableFunc{adaptedFunc: base, spec: *spec}
}
