package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ograph/exprgraph/core"
	"github.com/ograph/exprgraph/eval"
	"github.com/ograph/exprgraph/ops"
)

func TestReplaceInput_SwapsMatchingChildrenOnly(t *testing.T) {
	x := core.Lit(1)
	y := core.Lit(2)
	apply := core.MakeListOf(x, x, y)

	replaced := ops.ReplaceInput(apply, x, core.Lit(99))

	assert.Equal(t, 99, replaced.Args[0].(*core.Literal).Value)
	assert.Equal(t, 99, replaced.Args[1].(*core.Literal).Value)
	assert.Same(t, core.Node(y), replaced.Args[2])
	assert.Same(t, core.MakeList, replaced.Func)
}

func TestReplaceInput_LeavesOriginalUntouched(t *testing.T) {
	x := core.Lit(1)
	apply := core.MakeListOf(x)

	_ = ops.ReplaceInput(apply, x, core.Lit(2))
	assert.Same(t, core.Node(x), apply.Args[0])
}

func TestReplaceInput_AffectsKwargs(t *testing.T) {
	old := core.Lit(1)
	apply := core.NewApply(core.MakeList, nil, []core.KwArg{{Name: "n", Value: old}})

	replaced := ops.ReplaceInput(apply, old, core.Lit(5))
	v, ok := replaced.Kwarg("n")
	require.True(t, ok)
	assert.Equal(t, 5, v.(*core.Literal).Value)
}

func TestReplaceInput_ResultEvaluatesWithTheNewChild(t *testing.T) {
	placeholder := core.Variable("x", "int")
	expr := core.Add(placeholder, core.IntOf(core.Lit(1)))

	replaced := ops.ReplaceInput(expr, placeholder, core.IntOf(core.Lit(41)))
	v, err := eval.Evaluate(replaced, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}
