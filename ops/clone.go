package ops

import (
	"github.com/ograph/exprgraph/core"
	"github.com/ograph/exprgraph/dfs"
)

// Clone builds an independent copy of the graph rooted at root: every
// Literal and Apply reachable from root is rebuilt as a new node, while
// node sharing is preserved — two parents that reference the same child in
// root reference the same cloned child in the result, rather than two
// separate copies of it.
//
// The rebuild walks dfs.Topological(root) (root first, so that every
// parent is listed before the children it shares with other parents) and
// processes that order in reverse, so each Apply is rebuilt only once its
// own children already have clones to point to.
func Clone(root core.Node) (core.Node, error) {
	var order []core.Node
	for n, err := range dfs.Topological(root) {
		if err != nil {
			return nil, err
		}
		order = append(order, n)
	}

	clones := make(map[core.Node]core.Node, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		switch v := n.(type) {
		case *core.Literal:
			clones[n] = core.NewLiteral(v.Value)
		case *core.Apply:
			args := make([]core.Node, len(v.Args))
			for j, a := range v.Args {
				args[j] = clones[a]
			}
			var kwargs []core.KwArg
			if len(v.Kwargs) > 0 {
				kwargs = make([]core.KwArg, len(v.Kwargs))
				for j, kw := range v.Kwargs {
					kwargs[j] = core.KwArg{Name: kw.Name, Value: clones[kw.Value]}
				}
			}
			clones[n] = core.NewApply(v.Func, args, kwargs)
		}
	}

	return clones[root], nil
}
