package dfs

import (
	"errors"
	"fmt"

	"github.com/ograph/exprgraph/core"
)

// ErrCycleDetected is the sentinel every *CycleError wraps; test for it with
// errors.Is rather than comparing error values directly.
var ErrCycleDetected = errors.New("dfs: call graph contains a directed cycle")

// ErrEmptyActivePath indicates the internal path stack was exhausted while
// looking for a sentinel parent it should always contain; it signals a bug
// in this package rather than anything about the traversed graph.
var ErrEmptyActivePath = errors.New("dfs: active path exhausted before finding parent")

// CycleError reports a directed cycle discovered while revisiting Node
// along the path currently being explored.
type CycleError struct {
	Node core.Node
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dfs: call graph contains a directed cycle at %T", e.Node)
}

func (e *CycleError) Unwrap() error { return ErrCycleDetected }
