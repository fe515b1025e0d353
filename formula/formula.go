package formula

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"

	"github.com/ograph/exprgraph/core"
)

// Compile parses expr once via govaluate and returns a core.Callable named
// name that evaluates it. paramNames declares, in order, the parameters
// the Callable accepts positionally (and, via core.Introspectable, the
// schema bind.Arg uses for keyword binding); a variable referenced in expr
// that is not in paramNames is a compile-time error rather than a runtime
// one.
func Compile(name string, expr string, paramNames ...string) (core.Callable, error) {
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(expr, builtinFunctions())
	if err != nil {
		return nil, fmt.Errorf("formula: parsing %q: %w", expr, err)
	}

	declared := make(map[string]bool, len(paramNames))
	for _, p := range paramNames {
		declared[p] = true
	}
	for _, v := range parsed.Vars() {
		if !declared[v] {
			return nil, &UndeclaredParameter{Name: v}
		}
	}

	return &compiled{name: name, expr: parsed, params: paramNames}, nil
}

type compiled struct {
	name   string
	expr   *govaluate.EvaluableExpression
	params []string
}

func (c *compiled) Name() string { return c.name }

func (c *compiled) Params() core.ParamSpec {
	return core.ParamSpec{Positional: c.params}
}

// Call resolves each declared parameter from args (positionally) or
// kwargs (by name), coerces it to float64 for govaluate, and evaluates the
// compiled expression. The result is always a float64 or a bool (for a
// purely relational expression like "a > b"), matching govaluate's own
// result types.
func (c *compiled) Call(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	vars := make(map[string]interface{}, len(c.params))
	for i, p := range c.params {
		var raw interface{}
		switch {
		case i < len(args):
			raw = args[i]
		default:
			v, ok := kwargs[p]
			if !ok {
				return nil, fmt.Errorf("formula: missing value for parameter %q", p)
			}
			raw = v
		}
		f, ok := toFloat64(raw)
		if !ok {
			return nil, fmt.Errorf("formula: parameter %q must be numeric, got %T", p, raw)
		}
		vars[p] = f
	}

	return c.expr.Evaluate(vars)
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func requireTwoFloats(args []interface{}) (float64, float64, bool) {
	if len(args) != 2 {
		return 0, 0, false
	}
	a, ok1 := toFloat64(args[0])
	b, ok2 := toFloat64(args[1])
	return a, b, ok1 && ok2
}

func requireOneFloat(args []interface{}) (float64, bool) {
	if len(args) != 1 {
		return 0, false
	}
	return toFloat64(args[0])
}

func builtinFunctions() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		"min": func(args ...interface{}) (interface{}, error) {
			a, b, ok := requireTwoFloats(args)
			if !ok {
				return nil, fmt.Errorf("formula: min expects two numeric arguments")
			}
			return math.Min(a, b), nil
		},
		"max": func(args ...interface{}) (interface{}, error) {
			a, b, ok := requireTwoFloats(args)
			if !ok {
				return nil, fmt.Errorf("formula: max expects two numeric arguments")
			}
			return math.Max(a, b), nil
		},
		"mod": func(args ...interface{}) (interface{}, error) {
			a, b, ok := requireTwoFloats(args)
			if !ok {
				return nil, fmt.Errorf("formula: mod expects two numeric arguments")
			}
			return math.Mod(a, b), nil
		},
		"pow": func(args ...interface{}) (interface{}, error) {
			a, b, ok := requireTwoFloats(args)
			if !ok {
				return nil, fmt.Errorf("formula: pow expects two numeric arguments")
			}
			return math.Pow(a, b), nil
		},
		"sqrt": func(args ...interface{}) (interface{}, error) {
			a, ok := requireOneFloat(args)
			if !ok {
				return nil, fmt.Errorf("formula: sqrt expects one numeric argument")
			}
			return math.Sqrt(a), nil
		},
		"exp": func(args ...interface{}) (interface{}, error) {
			a, ok := requireOneFloat(args)
			if !ok {
				return nil, fmt.Errorf("formula: exp expects one numeric argument")
			}
			return math.Exp(a), nil
		},
		"log": func(args ...interface{}) (interface{}, error) {
			a, ok := requireOneFloat(args)
			if !ok {
				return nil, fmt.Errorf("formula: log expects one numeric argument")
			}
			return math.Log(a), nil
		},
		"floor": func(args ...interface{}) (interface{}, error) {
			a, ok := requireOneFloat(args)
			if !ok {
				return nil, fmt.Errorf("formula: floor expects one numeric argument")
			}
			return math.Floor(a), nil
		},
		"ceil": func(args ...interface{}) (interface{}, error) {
			a, ok := requireOneFloat(args)
			if !ok {
				return nil, fmt.Errorf("formula: ceil expects one numeric argument")
			}
			return math.Ceil(a), nil
		},
	}
}
