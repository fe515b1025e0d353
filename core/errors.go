package core

import "errors"

// ErrCalledDeferredNode is returned by (*Apply).Call, which exists only to
// give callers of an Apply as if it were a plain function a clear error
// instead of a type mismatch; evaluate the graph with eval.Evaluate instead.
var ErrCalledDeferredNode = errors.New("core: called a deferred Apply node directly; use eval.Evaluate")
