package bind

import "github.com/ograph/exprgraph/core"

// Arg computes the parameter assignment of apply against its Callable's
// declared ParamSpec: which child Node each formal parameter is bound to,
// filling in declared defaults and core.MissingArgument for anything
// neither supplied nor defaulted.
//
// Binding resolution order mirrors ordinary call-binding rules: positional
// arguments fill declared parameters left to right, any excess goes to the
// variadic-positional parameter (or is an error if there is none), keyword
// arguments fill remaining declared parameters by name, and anything left
// over goes to the variadic-keyword parameter (or is an error if there is
// none). A name bound both positionally and by keyword is a
// DuplicateArgument error, not a silent overwrite.
func Arg(apply *core.Apply) (map[string]Binding, error) {
	introspectable, ok := apply.Func.(core.Introspectable)
	if !ok {
		return nil, ErrNotIntrospectable
	}
	spec := introspectable.Params()
	params := spec.Positional

	binding := make(map[string]Binding, len(params)+2)

	if spec.VarArgs != "" {
		var tail []core.Node
		if len(apply.Args) > len(params) {
			tail = apply.Args[len(params):]
		}
		binding[spec.VarArgs] = varArgsBinding(tail)
	} else if len(apply.Args) > len(params) {
		return nil, ErrTooManyPositional
	}

	for i, p := range params {
		if i < len(apply.Args) {
			binding[p] = singleBinding(apply.Args[i])
		}
	}

	paramsSet := make(map[string]bool, len(params))
	for _, p := range params {
		paramsSet[p] = true
	}

	var kwBucket map[string]core.Node
	if spec.VarKwargs != "" {
		kwBucket = make(map[string]core.Node)
	}

	for _, kw := range apply.Kwargs {
		_, bound := binding[kw.Name]
		switch {
		case paramsSet[kw.Name] && !bound:
			binding[kw.Name] = singleBinding(kw.Value)
		case bound && kw.Name != spec.VarKwargs:
			return nil, &DuplicateArgument{Name: kw.Name}
		case spec.VarKwargs != "":
			kwBucket[kw.Name] = kw.Value
		default:
			return nil, &UnrecognizedKeyword{Name: kw.Name}
		}
	}
	if spec.VarKwargs != "" {
		binding[spec.VarKwargs] = varKwargsBinding(kwBucket)
	}

	for _, p := range params {
		if _, ok := binding[p]; ok {
			continue
		}
		if def, ok := spec.Defaults[p]; ok {
			binding[p] = singleBinding(core.NewLiteral(def))
			continue
		}
		binding[p] = singleBinding(core.MissingArgument)
	}

	return binding, nil
}
