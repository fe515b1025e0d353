// Package bind computes the parameter assignment of an Apply node: which
// child Node is bound to which of its Callable's formal parameters, the
// way a reflective language can recover from a call frame automatically.
//
// Go gives no such reflection over an arbitrary function's parameter
// names, so Arg only works on a Callable that declares its shape via
// core.Introspectable; anything else is rejected with ErrNotIntrospectable
// rather than guessed at.
//
// Errors:
//
//	ErrNotIntrospectable - the Apply's Callable has no declared ParamSpec.
//	ErrTooManyPositional - more positional args were supplied than declared, with no *args parameter to absorb them.
//	DuplicateArgument     - a parameter was bound both positionally and by keyword.
//	UnrecognizedKeyword   - a keyword argument names no declared parameter, with no **kwargs parameter to absorb it.
package bind
