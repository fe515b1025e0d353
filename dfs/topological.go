package dfs

import (
	"iter"

	"github.com/ograph/exprgraph/core"
)

// Topological returns a lazy traversal of the graph rooted at root in
// which every node is produced only after all of its Apply parents have
// already been produced — root first, and a node last only once every path
// reaching it has been exhausted: nothing is visited before whatever
// constructed it. ops.Clone walks this order in reverse.
//
// Building this order requires knowing every node's full parent set, which
// is not available until the whole graph has been walked once — so unlike
// DepthFirst, Topological walks root eagerly to build that index before
// yielding begins, and only the candidate-draining step that follows is
// lazy. A directed cycle discovered during that initial walk is reported
// the same way DepthFirst reports one.
func Topological(root core.Node) iter.Seq2[core.Node, error] {
	return func(yield func(core.Node, error) bool) {
		order, parents, err := buildInvertedIndex(root)
		if err != nil {
			yield(nil, err)
			return
		}

		candidates := append([]core.Node(nil), order...)
		produced := make(map[core.Node]bool, len(order))

		for len(candidates) > 0 {
			proposed := candidates[0]
			candidates = candidates[1:]

			ready := true
			for p := range parents[proposed] {
				if !produced[p] {
					ready = false
					break
				}
			}
			if !ready {
				candidates = append(candidates, proposed)
				continue
			}

			produced[proposed] = true
			if !yield(proposed, nil) {
				return
			}
		}
	}
}

// buildInvertedIndex walks root once, recording the order nodes are first
// reached (pre-order, matching DepthFirst) and, for every node, the set of
// distinct Apply parents that reference it anywhere in the graph.
func buildInvertedIndex(root core.Node) ([]core.Node, map[core.Node]map[core.Node]bool, error) {
	order := make([]core.Node, 0)
	parents := make(map[core.Node]map[core.Node]bool)
	visited := make(map[core.Node]bool)
	toVisit := []worklistFrame{{parent: nil, node: root}}
	path := newActivePath()
	_ = path.push(nil)

	addParent := func(node, parent core.Node) {
		if parent == nil {
			return
		}
		set := parents[node]
		if set == nil {
			set = make(map[core.Node]bool)
			parents[node] = set
		}
		set[parent] = true
	}

	for len(toVisit) > 0 {
		top := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]

		if err := path.popUntil(top.parent); err != nil {
			return nil, nil, err
		}
		if err := path.push(top.node); err != nil {
			return nil, nil, err
		}

		if !visited[top.node] {
			visited[top.node] = true
			order = append(order, top.node)
			addParent(top.node, top.parent)
			if a, ok := top.node.(*core.Apply); ok {
				for _, c := range a.Children() {
					toVisit = append(toVisit, worklistFrame{parent: top.node, node: c})
				}
			}
		} else {
			addParent(top.node, top.parent)
		}
	}

	return order, parents, nil
}
