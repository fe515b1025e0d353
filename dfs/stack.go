package dfs

import "github.com/ograph/exprgraph/core"

// activePath tracks the root-to-current-node path during a traversal. It is
// a stack that rejects pushing a Node already on it, which is how a
// directed cycle is detected: a child reached while its own ancestor is
// still on the path means the graph loops back on itself.
//
// This is the explicit-worklist analogue of a recursive call stack, used
// here instead of Go recursion so DepthFirst and the topological index
// builder can drive traversal from a flat loop and hand control back to
// their caller between nodes.
type activePath struct {
	stack   []core.Node
	members map[core.Node]bool
}

func newActivePath() *activePath {
	return &activePath{members: make(map[core.Node]bool)}
}

// push adds n to the top of the path, or returns a *CycleError if n is
// already on it.
func (p *activePath) push(n core.Node) error {
	if p.members[n] {
		return &CycleError{Node: n}
	}
	p.stack = append(p.stack, n)
	p.members[n] = true
	return nil
}

func (p *activePath) pop() (core.Node, error) {
	if len(p.stack) == 0 {
		return nil, ErrEmptyActivePath
	}
	n := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	delete(p.members, n)
	return n, nil
}

// popUntil pops and discards entries until target is at the top of the
// path, leaving target on the stack. target is typically the parent of the
// node about to be pushed, since the explicit worklist drives traversal
// out of order relative to a true recursive call stack.
func (p *activePath) popUntil(target core.Node) error {
	for len(p.stack) > 0 && p.stack[len(p.stack)-1] != target {
		if _, err := p.pop(); err != nil {
			return err
		}
	}
	if len(p.stack) == 0 {
		return ErrEmptyActivePath
	}
	return nil
}
