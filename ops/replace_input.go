package ops

import "github.com/ograph/exprgraph/core"

// ReplaceInput returns a new Apply identical to apply except that every
// Args/Kwargs child identical (by identity) to old is replaced by newNode.
// apply itself is left untouched; callers that want the substitution to
// take effect in place should overwrite their own reference to apply with
// the result, or use (*core.Apply).SetKwarg/AppendArg directly for
// in-place mutation.
func ReplaceInput(apply *core.Apply, old, newNode core.Node) *core.Apply {
	args := make([]core.Node, len(apply.Args))
	for i, a := range apply.Args {
		if a == old {
			args[i] = newNode
		} else {
			args[i] = a
		}
	}

	var kwargs []core.KwArg
	if len(apply.Kwargs) > 0 {
		kwargs = make([]core.KwArg, len(apply.Kwargs))
		for i, kw := range apply.Kwargs {
			v := kw.Value
			if v == old {
				v = newNode
			}
			kwargs[i] = core.KwArg{Name: kw.Name, Value: v}
		}
	}

	return core.NewApply(apply.Func, args, kwargs)
}
