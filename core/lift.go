package core

import (
	"reflect"
	"sort"
)

// AsGraph normalizes a host value p into a Node, the module's entry point
// for turning ordinary Go values into expression-graph leaves and the
// sequence/map nodes built over them.
//
//   - A Node is returned unchanged (p is already part of a graph).
//   - A Tuple is lifted element-by-element and wrapped in an Apply over
//     MakeTuple.
//   - A slice or array (any element type, Tuple excepted) is lifted
//     element-by-element and wrapped in an Apply over MakeList.
//   - A map is lifted to an Apply over ApplyWithPositionalList, whose first
//     argument is MapConstructor and remaining arguments are (key, value)
//     pairs built over MakeTuple: the key wrapped as a Literal as-is (not
//     lifted), the value lifted.
//   - Anything else becomes a *Literal wrapping p as-is.
//
// Go has no value representing a not-yet-called partial application
// distinct from this module's own Node (unlike functools.partial), so
// unlike the source this lifts, AsGraph has no separate "host pending call"
// case: a *Apply reaching AsGraph already satisfies the Node branch above.
func AsGraph(p interface{}) Node {
	if n, ok := p.(Node); ok {
		return n
	}

	if t, ok := p.(Tuple); ok {
		args := make([]Node, len(t))
		for i, v := range t {
			args[i] = AsGraph(v)
		}
		return NewApply(MakeTuple, args, nil)
	}

	rv := reflect.ValueOf(p)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		args := make([]Node, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			args[i] = AsGraph(rv.Index(i).Interface())
		}
		return NewApply(MakeList, args, nil)
	case reflect.Map:
		args := make([]Node, 0, rv.Len()+1)
		args = append(args, NewLiteral(MapConstructor))
		iter := rv.MapRange()
		for iter.Next() {
			pair := NewApply(MakeTuple, []Node{NewLiteral(iter.Key().Interface()), AsGraph(iter.Value().Interface())}, nil)
			args = append(args, pair)
		}
		return NewApply(ApplyWithPositionalList, args, nil)
	default:
		return NewLiteral(p)
	}
}

// MakeListOf builds an Apply over MakeList from already-lifted Node
// elements, for callers assembling a list node from existing graph pieces
// rather than raw host values.
func MakeListOf(elems ...Node) *Apply {
	return NewApply(MakeList, elems, nil)
}

// MakeTupleOf builds an Apply over MakeTuple from already-lifted Node
// elements.
func MakeTupleOf(elems ...Node) *Apply {
	return NewApply(MakeTuple, elems, nil)
}

// Partial builds an Apply invoking fn over already-lifted positional args
// and keyword kwargs, lifting each raw host value via AsGraph. It is the
// general-purpose graph-building entry point analogous to the source's
// partial(). The operator builders (Add, ...) and Variable do not go
// through Partial; they build their Applys directly with NewApply.
//
// kwargs is a Go map, whose iteration order is randomized by design; since
// the spec requires Kwargs to have *some* deterministic, repeatable order
// (traversal visits Kwargs values "in mapping order"), Partial sorts the
// keys alphabetically before building Kwargs. Callers that need a
// different stable order should build the Apply directly with NewApply and
// an explicit []KwArg instead.
func Partial(fn Callable, args []interface{}, kwargs map[string]interface{}) *Apply {
	lifted := make([]Node, len(args))
	for i, v := range args {
		lifted[i] = AsGraph(v)
	}
	var kw []KwArg
	if len(kwargs) > 0 {
		names := make([]string, 0, len(kwargs))
		for k := range kwargs {
			names = append(names, k)
		}
		sort.Strings(names)
		kw = make([]KwArg, 0, len(names))
		for _, k := range names {
			kw = append(kw, KwArg{Name: k, Value: AsGraph(kwargs[k])})
		}
	}
	return NewApply(fn, lifted, kw)
}
