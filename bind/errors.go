package bind

import (
	"errors"
	"fmt"
)

// ErrNotIntrospectable is returned by Arg when the Apply's Callable does
// not implement core.Introspectable.
var ErrNotIntrospectable = errors.New("bind: callable declares no parameter schema")

// ErrTooManyPositional is returned by Arg when an Apply supplies more
// positional arguments than its Callable declares and the Callable has no
// variadic-positional parameter to absorb the rest.
var ErrTooManyPositional = errors.New("bind: too many positional arguments for callable")

// DuplicateArgument is returned when a parameter receives both a
// positional and a keyword binding.
type DuplicateArgument struct {
	Name string
}

func (e *DuplicateArgument) Error() string {
	return fmt.Sprintf("bind: duplicate argument for parameter %q", e.Name)
}

// UnrecognizedKeyword is returned when a keyword argument names no
// declared parameter and the Callable has no variadic-keyword parameter to
// absorb it.
type UnrecognizedKeyword struct {
	Name string
}

func (e *UnrecognizedKeyword) Error() string {
	return fmt.Sprintf("bind: unrecognized keyword argument %q", e.Name)
}
