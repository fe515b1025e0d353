package eval

import (
	"fmt"

	"github.com/ograph/exprgraph/core"
)

// Bindings maps a core.Variable's name to the concrete value it should
// evaluate to.
type Bindings map[string]interface{}

// Instantiator invokes fn over already-evaluated args and kwargs in place
// of calling fn.Call directly. Passing a custom Instantiator to
// EvaluateWith lets a caller intercept every invocation in the graph — for
// logging, sandboxing, or substituting a different host call convention —
// without changing the graph itself.
type Instantiator func(fn core.Callable, args []interface{}, kwargs map[string]interface{}) (interface{}, error)

func defaultInstantiate(fn core.Callable, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return fn.Call(args, kwargs)
}

// Evaluate evaluates root to a host value using bindings for any
// core.Variable nodes it contains.
func Evaluate(root core.Node, bindings Bindings) (interface{}, error) {
	return EvaluateWith(root, bindings, nil)
}

// EvaluateWith evaluates root like Evaluate, but routes every Apply
// invocation through instantiate instead of calling Func.Call directly. A
// nil instantiate behaves like Evaluate.
func EvaluateWith(root core.Node, bindings Bindings, instantiate Instantiator) (interface{}, error) {
	if instantiate == nil {
		instantiate = defaultInstantiate
	}
	if bindings == nil {
		bindings = Bindings{}
	}
	ev := &evaluator{bindings: bindings, instantiate: instantiate, memo: make(map[core.Node]interface{})}
	return ev.eval(root)
}

type evaluator struct {
	bindings    Bindings
	instantiate Instantiator
	memo        map[core.Node]interface{}
}

func (ev *evaluator) eval(n core.Node) (interface{}, error) {
	if v, ok := ev.memo[n]; ok {
		return v, nil
	}

	if lit, ok := n.(*core.Literal); ok {
		ev.memo[n] = lit.Value
		return lit.Value, nil
	}

	a, ok := n.(*core.Apply)
	if !ok {
		return nil, fmt.Errorf("eval: node of type %T is neither a Literal nor an Apply", n)
	}

	if a.Func == core.GetItemFunc && len(a.Args) == 2 {
		if v, handled, err := ev.evalIndexShortCircuit(a); handled {
			if err == nil {
				ev.memo[a] = v
			}
			return v, err
		}
	}

	if a.Func == core.VariableMarker {
		return ev.evalVariable(a)
	}

	return ev.evalGeneral(a)
}

// evalIndexShortCircuit implements the single performance-sensitive
// special case the evaluator carries: indexing into a literal list/tuple
// node only needs the selected element(s), not the whole container. It
// reports handled=false when the container isn't a recognizable sequence
// node, so eval falls through to ordinary full evaluation of both operands.
func (ev *evaluator) evalIndexShortCircuit(a *core.Apply) (interface{}, bool, error) {
	container, ok := a.Args[0].(*core.Apply)
	if !ok || !core.IsSequenceNode(container) {
		return nil, false, nil
	}

	indexVal, err := ev.eval(a.Args[1])
	if err != nil {
		return nil, true, err
	}

	if sl, ok := indexVal.(core.Slice); ok {
		start, stop := clampSlice(sl, len(container.Args))
		elems := make([]interface{}, 0, stop-start)
		for i := start; i < stop; i++ {
			v, err := ev.eval(container.Args[i])
			if err != nil {
				return nil, true, err
			}
			elems = append(elems, v)
		}
		result, err := ev.instantiate(container.Func, elems, nil)
		return result, true, err
	}

	idx, ok := asInt(indexVal)
	if !ok {
		return nil, true, fmt.Errorf("eval: list/tuple index must be an integer or Slice, got %T", indexVal)
	}
	i, err := normalizeIndex(idx, len(container.Args))
	if err != nil {
		return nil, true, err
	}
	v, err := ev.eval(container.Args[i])
	return v, true, err
}

func (ev *evaluator) evalVariable(a *core.Apply) (interface{}, error) {
	nameNode, ok := a.Kwarg("name")
	if !ok {
		return nil, fmt.Errorf("eval: variable node missing its name kwarg")
	}
	nameVal, err := ev.eval(nameNode)
	if err != nil {
		return nil, err
	}
	name, _ := nameVal.(string)
	v, ok := ev.bindings[name]
	if !ok {
		return nil, &UnboundVariable{Name: name}
	}
	ev.memo[a] = v
	return v, nil
}

func (ev *evaluator) evalGeneral(a *core.Apply) (interface{}, error) {
	args := make([]interface{}, len(a.Args))
	for i, child := range a.Args {
		v, err := ev.eval(child)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	var kwargs map[string]interface{}
	if len(a.Kwargs) > 0 {
		kwargs = make(map[string]interface{}, len(a.Kwargs))
		for _, kw := range a.Kwargs {
			v, err := ev.eval(kw.Value)
			if err != nil {
				return nil, err
			}
			kwargs[kw.Name] = v
		}
	}

	result, err := ev.instantiate(a.Func, args, kwargs)
	if err != nil {
		return nil, err
	}
	ev.memo[a] = result
	return result, nil
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}

func normalizeIndex(idx, length int) (int, error) {
	i := idx
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, fmt.Errorf("eval: index %d out of range for length %d", idx, length)
	}
	return i, nil
}

func clampSlice(sl core.Slice, length int) (int, int) {
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
	return start, stop
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
