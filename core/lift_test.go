package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ograph/exprgraph/core"
)

func TestAsGraph_PassesThroughExistingNode(t *testing.T) {
	lit := core.Lit(5)
	assert.Same(t, core.Node(lit), core.AsGraph(lit))
}

func TestAsGraph_LiftsTupleAndList(t *testing.T) {
	tup := core.AsGraph(core.Tuple{1, "a"})
	a, ok := tup.(*core.Apply)
	require.True(t, ok)
	assert.Same(t, core.MakeTuple, a.Func)
	require.Len(t, a.Args, 2)
	assert.Equal(t, 1, a.Args[0].(*core.Literal).Value)
	assert.Equal(t, "a", a.Args[1].(*core.Literal).Value)

	list := core.AsGraph([]int{1, 2, 3})
	b, ok := list.(*core.Apply)
	require.True(t, ok)
	assert.Same(t, core.MakeList, b.Func)
	assert.Len(t, b.Args, 3)
}

func TestAsGraph_LiftsMap(t *testing.T) {
	n := core.AsGraph(map[string]int{"only": 7})
	a, ok := n.(*core.Apply)
	require.True(t, ok)
	assert.Same(t, core.ApplyWithPositionalList, a.Func)
	require.Len(t, a.Args, 2, "constructor literal plus one key/value pair")

	ctorLit, ok := a.Args[0].(*core.Literal)
	require.True(t, ok)
	assert.Same(t, core.MapConstructor, ctorLit.Value)

	pair, ok := a.Args[1].(*core.Apply)
	require.True(t, ok)
	assert.Same(t, core.MakeTuple, pair.Func)
	require.Len(t, pair.Args, 2)
	assert.Equal(t, "only", pair.Args[0].(*core.Literal).Value)
	assert.Equal(t, 7, pair.Args[1].(*core.Literal).Value)
}

func TestAsGraph_LiftsPlainValueToLiteral(t *testing.T) {
	n := core.AsGraph(42)
	lit, ok := n.(*core.Literal)
	require.True(t, ok)
	assert.Equal(t, 42, lit.Value)
}
