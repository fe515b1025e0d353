package core

import "sort"

// VariableOption configures a Variable node at construction time,
// following the functional-options idiom used throughout this module for
// optional, named configuration.
type VariableOption func(*variableConfig)

type variableConfig struct {
	minimum      interface{}
	maximum      interface{}
	defaultValue interface{}
	hasDefault   bool
	logScale     bool
	distribution string
	extra        map[string]interface{}
}

// WithMinimum sets the variable's lower bound.
func WithMinimum(v interface{}) VariableOption {
	return func(c *variableConfig) { c.minimum = v }
}

// WithMaximum sets the variable's upper bound.
func WithMaximum(v interface{}) VariableOption {
	return func(c *variableConfig) { c.maximum = v }
}

// WithDefault sets the value used when a search driver supplies none.
func WithDefault(v interface{}) VariableOption {
	return func(c *variableConfig) { c.defaultValue = v; c.hasDefault = true }
}

// WithLogScale marks the variable as sampled on a logarithmic scale.
func WithLogScale() VariableOption {
	return func(c *variableConfig) { c.logScale = true }
}

// WithDistribution names the sampling distribution (e.g. "uniform",
// "normal", "choice") a search driver should use for this variable.
func WithDistribution(name string) VariableOption {
	return func(c *variableConfig) { c.distribution = name }
}

// WithExtra attaches a driver-specific metadata key/value pair, for
// distribution parameters this package has no dedicated option for.
func WithExtra(key string, v interface{}) VariableOption {
	return func(c *variableConfig) {
		if c.extra == nil {
			c.extra = make(map[string]interface{})
		}
		c.extra[key] = v
	}
}

// Variable builds a named, typed search-space dimension as an Apply over
// VariableMarker. name identifies the dimension across separate Evaluate
// calls and across Clone; valueType is a string tag, stored as the
// value_type keyword, that documents (but does not enforce) the kind of
// value a binding for name should supply. valueType accepts only a string:
// a sequence of choices cannot be passed in its place.
//
// The returned Apply's keyword children carry the accumulated
// configuration as Literal nodes, in the fixed order below (WithExtra keys
// last, sorted by key), so that two Variable calls with identical
// configuration produce Applys with identical (not merely Equal) Kwargs
// ordering.
func Variable(name string, valueType string, opts ...VariableOption) *Apply {
	var cfg variableConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	kwargs := []KwArg{
		{Name: "name", Value: NewLiteral(name)},
		{Name: "value_type", Value: NewLiteral(valueType)},
	}
	if cfg.minimum != nil {
		kwargs = append(kwargs, KwArg{Name: "minimum", Value: NewLiteral(cfg.minimum)})
	}
	if cfg.maximum != nil {
		kwargs = append(kwargs, KwArg{Name: "maximum", Value: NewLiteral(cfg.maximum)})
	}
	if cfg.hasDefault {
		kwargs = append(kwargs, KwArg{Name: "default", Value: NewLiteral(cfg.defaultValue)})
	}
	if cfg.logScale {
		kwargs = append(kwargs, KwArg{Name: "log_scale", Value: NewLiteral(true)})
	}
	if cfg.distribution != "" {
		kwargs = append(kwargs, KwArg{Name: "distribution", Value: NewLiteral(cfg.distribution)})
	}
	extraKeys := make([]string, 0, len(cfg.extra))
	for k := range cfg.extra {
		extraKeys = append(extraKeys, k)
	}
	sort.Strings(extraKeys)
	for _, k := range extraKeys {
		kwargs = append(kwargs, KwArg{Name: k, Value: NewLiteral(cfg.extra[k])})
	}

	return NewApply(VariableMarker, nil, kwargs)
}

// VariableName returns the name a Variable node was built with, and
// whether n is in fact a Variable node.
func VariableName(n Node) (string, bool) {
	a, ok := n.(*Apply)
	if !ok || a.Func != VariableMarker {
		return "", false
	}
	v, ok := a.Kwarg("name")
	if !ok {
		return "", false
	}
	lit, ok := v.(*Literal)
	if !ok {
		return "", false
	}
	name, ok := lit.Value.(string)
	return name, ok
}

// IsVariable reports whether n is an Apply built by Variable.
func IsVariable(n Node) bool {
	a, ok := n.(*Apply)
	return ok && a.Func == VariableMarker
}

// IsTupleNode reports whether n is an Apply built by MakeTupleOf or lifted
// from a Tuple.
func IsTupleNode(n Node) bool {
	a, ok := n.(*Apply)
	return ok && a.Func == MakeTuple
}

// IsListNode reports whether n is an Apply built by MakeListOf or lifted
// from a slice/array.
func IsListNode(n Node) bool {
	a, ok := n.(*Apply)
	return ok && a.Func == MakeList
}

// IsSequenceNode reports whether n is a list or tuple node, the two node
// shapes eval's index short-circuit recognizes as indexable without full
// evaluation.
func IsSequenceNode(n Node) bool {
	return IsListNode(n) || IsTupleNode(n)
}

// IsPositionalListNode reports whether n is an Apply built over
// ApplyWithPositionalList, i.e. the node AsGraph builds for a lifted map.
func IsPositionalListNode(n Node) bool {
	a, ok := n.(*Apply)
	return ok && a.Func == ApplyWithPositionalList
}
