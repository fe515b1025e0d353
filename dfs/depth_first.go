package dfs

import (
	"iter"

	"github.com/ograph/exprgraph/core"
)

type worklistFrame struct {
	parent core.Node
	node   core.Node
}

// DepthFirst returns a lazy depth-first traversal of the graph rooted at
// root. Each node is produced the first time it is reached; a node shared
// by several Apply parents is yielded only once, at its first visit.
//
// Children of an Apply are pushed onto an explicit worklist in Args-then-
// Kwargs order and popped last-in-first-out, so a node's later children are
// explored before its earlier ones — the same traversal order as walking
// the worklist with an ordinary stack would give, and a direct port of the
// traversal this module's design is grounded on.
//
// If root (or any node reachable from it) is reached while it is still on
// the current path, the sequence yields a single (nil, *CycleError) pair
// and stops.
func DepthFirst(root core.Node) iter.Seq2[core.Node, error] {
	return func(yield func(core.Node, error) bool) {
		visited := make(map[core.Node]bool)
		toVisit := []worklistFrame{{parent: nil, node: root}}
		path := newActivePath()
		_ = path.push(nil) // sentinel "no parent"; never collides, never fails

		for len(toVisit) > 0 {
			top := toVisit[len(toVisit)-1]
			toVisit = toVisit[:len(toVisit)-1]

			if err := path.popUntil(top.parent); err != nil {
				yield(nil, err)
				return
			}
			if err := path.push(top.node); err != nil {
				yield(nil, err)
				return
			}

			if visited[top.node] {
				continue
			}
			visited[top.node] = true

			if !yield(top.node, nil) {
				return
			}

			if a, ok := top.node.(*core.Apply); ok {
				for _, c := range a.Children() {
					toVisit = append(toVisit, worklistFrame{parent: top.node, node: c})
				}
			}
		}
	}
}
