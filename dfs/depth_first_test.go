package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ograph/exprgraph/core"
	"github.com/ograph/exprgraph/dfs"
)

func collect(seq func(func(core.Node, error) bool)) ([]core.Node, error) {
	var out []core.Node
	var retErr error
	seq(func(n core.Node, err error) bool {
		if err != nil {
			retErr = err
			return false
		}
		out = append(out, n)
		return true
	})
	return out, retErr
}

func TestDepthFirst_VisitsEachSharedNodeOnce(t *testing.T) {
	shared := core.Lit(1)
	root := core.Add(shared, shared)

	nodes, err := collect(dfs.DepthFirst(root))
	require.NoError(t, err)

	require.Len(t, nodes, 3, "root, its op literal, and the shared literal once")
	assert.Same(t, core.Node(root), nodes[0])
}

func TestDepthFirst_VisitsLastChildFirst(t *testing.T) {
	a, b := core.Lit("a"), core.Lit("b")
	root := core.MakeListOf(a, b)

	nodes, err := collect(dfs.DepthFirst(root))
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Same(t, core.Node(root), nodes[0])
	assert.Same(t, core.Node(b), nodes[1], "children are explored last-pushed-first off the worklist")
	assert.Same(t, core.Node(a), nodes[2])
}

func TestDepthFirst_DetectsCycle(t *testing.T) {
	self := core.NewApply(core.MakeList, nil, nil)
	self.AppendArg(self)

	_, err := collect(dfs.DepthFirst(self))
	require.Error(t, err)
	var cycleErr *dfs.CycleError
	assert.ErrorAs(t, err, &cycleErr)
	assert.Same(t, core.Node(self), cycleErr.Node)
}

func TestDepthFirst_StopsEarlyOnBreak(t *testing.T) {
	a, b, c := core.Lit(1), core.Lit(2), core.Lit(3)
	root := core.MakeListOf(a, b, c)

	var seen []core.Node
	for n, err := range dfs.DepthFirst(root) {
		require.NoError(t, err)
		seen = append(seen, n)
		if len(seen) == 2 {
			break
		}
	}
	assert.Len(t, seen, 2, "the consumer's break must stop the iterator without visiting the rest")
}
