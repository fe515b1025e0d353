package core

import (
	"fmt"
	"math/cmplx"
	"reflect"
)

// The Callables in this file are distinguished singletons: Apply.Func
// equality against one of these (ordinary Go interface equality, since each
// is constructed exactly once at package init) is how the evaluator and
// traversal recognize a node's special role (variable, sequence
// constructor, operator dispatch) without a type switch on Apply itself.

// MakeList is the Func of an Apply built by AsGraph or MakeListOf over a
// plain Go slice or array: Call returns its Args as a fresh []interface{}.
var MakeList Callable = NewFunc("make_list", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	out := make([]interface{}, len(args))
	copy(out, args)
	return out, nil
}, nil)

// MakeTuple is the Func of an Apply built by AsGraph over a Tuple: Call
// returns its Args wrapped as a Tuple.
var MakeTuple Callable = NewFunc("make_tuple", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	out := make(Tuple, len(args))
	copy(out, args)
	return out, nil
}, nil)

// MapConstructor is the constructor AsGraph's lift of a Go map wraps in a
// Literal as the first argument of an ApplyWithPositionalList node; it is
// invoked indirectly through ApplyWithPositionalList on the evaluated
// 2-element (key, value) Tuple pairs.
var MapConstructor Callable = NewFunc("dict", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	out := make(map[interface{}]interface{}, len(args))
	for _, pair := range args {
		t, ok := pair.(Tuple)
		if !ok || len(t) != 2 {
			return nil, fmt.Errorf("core: dict constructor expects (key, value) tuples, got %T", pair)
		}
		out[t[0]] = t[1]
	}
	return out, nil
}, nil)

// ApplyWithPositionalList is the Func of the Apply AsGraph builds over a Go
// map: Args[0] evaluates to the constructor Callable (MapConstructor) and
// Args[1:] are the already-lifted (key, value) pairs, applied positionally.
var ApplyWithPositionalList Callable = NewFunc("apply_with_positional_list", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("core: apply_with_positional_list requires a constructor argument")
	}
	ctor, ok := args[0].(Callable)
	if !ok {
		return nil, fmt.Errorf("core: apply_with_positional_list expects a Callable constructor, got %T", args[0])
	}
	return ctor.Call(args[1:], nil)
}, nil)

// VariableMarker is the Func of every Apply built by Variable. The
// evaluator recognizes a variable node by this identity and resolves it
// from its Bindings before Func would ever be called, so Call here only
// guards against a variable node reaching general application, e.g. by a
// caller bypassing eval.Evaluate.
var VariableMarker Callable = NewFunc("variable", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	return nil, fmt.Errorf("core: variable node called directly; resolve it through eval.Evaluate bindings")
}, nil)

// BinaryOpDispatch is the Func of every Apply built by the binary operator
// builders (Add, Sub, ...): Args are (x, y, opSymbol) and Call dispatches on
// opSymbol via binaryArithmetic.
var BinaryOpDispatch Callable = NewFunc("binary_op_dispatch", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("core: binary_op_dispatch expects 3 arguments, got %d", len(args))
	}
	op, ok := args[2].(string)
	if !ok {
		return nil, fmt.Errorf("core: binary_op_dispatch operator must be a string, got %T", args[2])
	}
	return binaryArithmetic(op, args[0], args[1])
}, nil)

// UnaryOpDispatch is the Func of every Apply built by the unary operator
// builders (Neg, Pos, Invert): Args are (x, opSymbol).
var UnaryOpDispatch Callable = NewFunc("unary_op_dispatch", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("core: unary_op_dispatch expects 2 arguments, got %d", len(args))
	}
	op, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("core: unary_op_dispatch operator must be a string, got %T", args[1])
	}
	return unaryArithmetic(op, args[0])
}, nil)

// GetItemFunc is the Func of every Apply built by GetItem. Its Call runs
// only when the indexed container is not itself a sequence-constructor
// Apply that eval's index short-circuit can see through; Call performs the
// indexing against the already-evaluated container via reflection,
// supporting slices, Tuple, strings, and maps.
var GetItemFunc Callable = NewFunc("getitem", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("core: getitem expects 2 arguments, got %d", len(args))
	}
	return indexInto(args[0], args[1])
}, nil)

func indexInto(container, index interface{}) (interface{}, error) {
	if sl, ok := index.(Slice); ok {
		return sliceInto(container, sl)
	}
	idx, isInt := toInt64(index)

	switch c := container.(type) {
	case Tuple:
		if !isInt {
			return nil, fmt.Errorf("core: tuple index must be an integer, got %T", index)
		}
		return elementAt([]interface{}(c), idx)
	case []interface{}:
		if !isInt {
			return nil, fmt.Errorf("core: list index must be an integer, got %T", index)
		}
		return elementAt(c, idx)
	case string:
		if !isInt {
			return nil, fmt.Errorf("core: string index must be an integer, got %T", index)
		}
		r := []rune(c)
		i, err := normalizeIndex(idx, int64(len(r)))
		if err != nil {
			return nil, err
		}
		return string(r[i]), nil
	case map[interface{}]interface{}:
		v, ok := c[index]
		if !ok {
			return nil, fmt.Errorf("core: key %v not found in map", index)
		}
		return v, nil
	default:
		rv := reflect.ValueOf(container)
		if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && isInt {
			i, err := normalizeIndex(idx, int64(rv.Len()))
			if err != nil {
				return nil, err
			}
			return rv.Index(int(i)).Interface(), nil
		}
		return nil, fmt.Errorf("core: cannot index into %T", container)
	}
}

func elementAt(s []interface{}, idx int64) (interface{}, error) {
	i, err := normalizeIndex(idx, int64(len(s)))
	if err != nil {
		return nil, err
	}
	return s[i], nil
}

func normalizeIndex(idx, length int64) (int64, error) {
	i := idx
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, fmt.Errorf("core: index %d out of range for length %d", idx, length)
	}
	return i, nil
}

func sliceInto(container interface{}, sl Slice) (interface{}, error) {
	rv := reflect.ValueOf(container)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("core: cannot slice %T", container)
	}
	length := rv.Len()
	start, stop := 0, length
	if sl.Start != nil {
		start = clampIndex(*sl.Start, length)
	}
	if sl.Stop != nil {
		stop = clampIndex(*sl.Stop, length)
	}
	if stop < start {
		stop = start
	}
	sub := rv.Slice(start, stop)
	if t, ok := container.(Tuple); ok {
		_ = t
		out := make(Tuple, sub.Len())
		for i := 0; i < sub.Len(); i++ {
			out[i] = sub.Index(i).Interface()
		}
		return out, nil
	}
	out := make([]interface{}, sub.Len())
	for i := 0; i < sub.Len(); i++ {
		out[i] = sub.Index(i).Interface()
	}
	return out, nil
}

func clampIndex(i, length int) int {
	if i < 0 {
		i += length
	}
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

// Int converts its single argument to an int64, mirroring Python's int().
var Int Callable = NewFunc("int", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("core: int() expects 1 argument, got %d", len(args))
	}
	if i, ok := toInt64(args[0]); ok {
		return i, nil
	}
	if f, ok := toFloat64(args[0]); ok {
		return int64(f), nil
	}
	return nil, fmt.Errorf("core: int() cannot convert %T", args[0])
}, nil)

// Float converts its single argument to a float64, mirroring Python's
// float().
var Float Callable = NewFunc("float", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("core: float() expects 1 argument, got %d", len(args))
	}
	if f, ok := toFloat64(args[0]); ok {
		return f, nil
	}
	return nil, fmt.Errorf("core: float() cannot convert %T", args[0])
}, nil)

// Complex builds a complex128 from one or two numeric arguments, mirroring
// Python's complex(real) / complex(real, imag). A single string argument is
// not supported (Go's complex literals have no textual parse form matching
// Python's "1+2j" syntax); callers needing that should parse it themselves
// before lifting the result into the graph.
var Complex Callable = NewFunc("complex", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, fmt.Errorf("core: complex() expects 1 or 2 arguments, got %d", len(args))
	}
	real, ok := toFloat64(args[0])
	if !ok {
		return nil, fmt.Errorf("core: complex() requires numeric real part, got %T", args[0])
	}
	var imag float64
	if len(args) == 2 {
		imag, ok = toFloat64(args[1])
		if !ok {
			return nil, fmt.Errorf("core: complex() requires numeric imaginary part, got %T", args[1])
		}
	}
	return complex(real, imag), nil
}, nil)

// Abs returns the absolute value of a numeric argument, mirroring Python's
// abs().
var Abs Callable = NewFunc("abs", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("core: abs() expects 1 argument, got %d", len(args))
	}
	if i, ok := toInt64(args[0]); ok && isIntegerValue(args[0]) {
		if i < 0 {
			i = -i
		}
		return i, nil
	}
	if f, ok := toFloat64(args[0]); ok {
		if f < 0 {
			f = -f
		}
		return f, nil
	}
	if c, ok := args[0].(complex128); ok {
		return cmplx.Abs(c), nil
	}
	return nil, fmt.Errorf("core: abs() cannot convert %T", args[0])
}, nil)

// Oct formats an integer argument in Go's "0o"-prefixed octal notation,
// mirroring Python's oct().
var Oct Callable = NewFunc("oct", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("core: oct() expects 1 argument, got %d", len(args))
	}
	i, ok := toInt64(args[0])
	if !ok {
		return nil, fmt.Errorf("core: oct() requires an integer, got %T", args[0])
	}
	if i < 0 {
		return fmt.Sprintf("-0o%o", uint64(-i)), nil
	}
	return fmt.Sprintf("0o%o", i), nil
}, nil)

// Hex formats an integer argument in "0x"-prefixed hexadecimal notation,
// mirroring Python's hex().
var Hex Callable = NewFunc("hex", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("core: hex() expects 1 argument, got %d", len(args))
	}
	i, ok := toInt64(args[0])
	if !ok {
		return nil, fmt.Errorf("core: hex() requires an integer, got %T", args[0])
	}
	if i < 0 {
		return fmt.Sprintf("-0x%x", uint64(-i)), nil
	}
	return fmt.Sprintf("0x%x", i), nil
}, nil)

// Pow raises its first argument to the power of its second, mirroring
// Python's pow()/__pow__. Go's exponentiation always proceeds through
// float64 (math.Pow); when both operands are integers, the exponent is
// non-negative, and the float64 result is exactly representable, it is
// converted back to int64.
var Pow Callable = NewFunc("pow", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("core: pow() expects 2 arguments, got %d", len(args))
	}
	xf, ok1 := toFloat64(args[0])
	yf, ok2 := toFloat64(args[1])
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("core: pow() requires numeric operands, got %T, %T", args[0], args[1])
	}
	result := powFloat(xf, yf)
	if isIntegerValue(args[0]) && isIntegerValue(args[1]) && yf >= 0 && result == float64(int64(result)) {
		return int64(result), nil
	}
	return result, nil
}, nil)

// Divmod returns (x//y, x%y) as a Tuple, using floor division, mirroring
// Python's divmod().
var Divmod Callable = NewFunc("divmod", func(args []interface{}, _ map[string]interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("core: divmod() expects 2 arguments, got %d", len(args))
	}
	q, err := binaryArithmetic("//", args[0], args[1])
	if err != nil {
		return nil, err
	}
	r, err := binaryArithmetic("%", args[0], args[1])
	if err != nil {
		return nil, err
	}
	return Tuple{q, r}, nil
}, nil)
