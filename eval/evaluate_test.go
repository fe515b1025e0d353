package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ograph/exprgraph/core"
	"github.com/ograph/exprgraph/eval"
)

func mustEval(t *testing.T, n core.Node) interface{} {
	t.Helper()
	v, err := eval.Evaluate(n, nil)
	require.NoError(t, err)
	return v
}

func TestEvaluate_Arithmetic(t *testing.T) {
	cases := []struct {
		a, b int64
	}{{6, 5}, {4, 2}, {9, 11}}

	for _, c := range cases {
		a, b := core.IntOf(core.Lit(c.a)), core.IntOf(core.Lit(c.b))
		assert.Equal(t, c.a+c.b, mustEval(t, core.Add(a, b)))
		assert.Equal(t, c.a-c.b, mustEval(t, core.Sub(a, b)))
		assert.Equal(t, c.a*c.b, mustEval(t, core.Mul(a, b)))
		assert.Equal(t, c.a/c.b, mustEval(t, core.Div(a, b)))
		assert.Equal(t, c.a%c.b, mustEval(t, core.Mod(a, b)))
		assert.Equal(t, c.a|c.b, mustEval(t, core.BitOr(a, b)))
		assert.Equal(t, c.a^c.b, mustEval(t, core.BitXor(a, b)))
		assert.Equal(t, c.a&c.b, mustEval(t, core.BitAnd(a, b)))
	}
}

func TestEvaluate_IndexShortCircuitSkipsOtherElements(t *testing.T) {
	poisoned := core.NewApply(core.NewFunc("dont_eval", func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
		t.Fatal("evaluate must not need this element")
		return nil, nil
	}, nil), nil, nil)

	list := core.AsGraph([]interface{}{-1, poisoned})
	v := mustEval(t, list.(*core.Apply).GetItem(0))
	assert.Equal(t, -1, v)
}

func TestEvaluate_SliceShortCircuitSkipsOtherElements(t *testing.T) {
	poisoned := core.NewApply(core.NewFunc("dont_eval", func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
		t.Fatal("evaluate must not need this element")
		return nil, nil
	}, nil), nil, nil)

	list := core.AsGraph([]interface{}{-1, 0, 1, poisoned})
	v := mustEval(t, list.(*core.Apply).GetItem(core.NewSlice(0, 3)))
	assert.Equal(t, []interface{}{-1, 0, 1}, v)

	tup := core.AsGraph(core.Tuple{-1, 0, 1, poisoned})
	v = mustEval(t, tup.(*core.Apply).GetItem(core.NewSlice(0, 3)))
	assert.Equal(t, core.Tuple{-1, 0, 1}, v)
}

func TestEvaluate_NestedTupleAndListPreserveShape(t *testing.T) {
	x := core.AsGraph(core.Tuple{
		core.Tuple{3, core.Add(core.IntOf(core.Lit(2)), core.IntOf(core.Lit(3)))},
		core.Add(core.IntOf(core.Lit(5)), core.IntOf(core.Lit(7))),
		core.FloatOf(core.Lit(9)),
	})

	v := mustEval(t, x)
	assert.Equal(t, core.Tuple{core.Tuple{3, int64(5)}, int64(12), 9.0}, v)
}

func TestEvaluate_Dict(t *testing.T) {
	x := core.AsGraph(map[interface{}]interface{}{
		5: core.Mod(core.IntOf(core.Lit(5)), core.IntOf(core.Lit(3))),
		3: core.Tuple{7, 9},
		4: []interface{}{core.Mod(core.IntOf(core.Lit(9)), core.IntOf(core.Lit(4)))},
	})

	v := mustEval(t, x)
	assert.Equal(t, map[interface{}]interface{}{
		5: int64(2),
		3: core.Tuple{7, 9},
		4: []interface{}{int64(1)},
	}, v)
}

func TestEvaluate_VariableResolvesFromBindings(t *testing.T) {
	v := core.Variable("x", "int")
	result, err := eval.Evaluate(v, eval.Bindings{"x": 42})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestEvaluate_UnboundVariableErrors(t *testing.T) {
	v := core.Variable("x", "int")
	_, err := eval.Evaluate(v, nil)
	var unbound *eval.UnboundVariable
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "x", unbound.Name)
}

func TestEvaluate_MemoizesSharedSubexpression(t *testing.T) {
	calls := 0
	counted := core.NewFunc("counted", func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
		calls++
		return 7, nil
	}, nil)
	shared := core.NewApply(counted, nil, nil)
	root := core.MakeListOf(shared, shared)

	v := mustEval(t, root)
	assert.Equal(t, []interface{}{7, 7}, v)
	assert.Equal(t, 1, calls, "a node referenced twice is only ever invoked once")
}
