package bind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ograph/exprgraph/bind"
	"github.com/ograph/exprgraph/core"
)

// fWithDefault mirrors def f(a, b=None): ...
var fWithDefault = core.NewFunc("f", func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return -1, nil
}, &core.ParamSpec{
	Positional: []string{"a", "b"},
	Defaults:   map[string]interface{}{"b": nil},
})

func TestArg_PositionalAndDefault(t *testing.T) {
	b, err := bind.Arg(core.NewApply(fWithDefault, []core.Node{core.Lit(0), core.Lit(1)}, nil))
	require.NoError(t, err)
	assert.Equal(t, 0, b["a"].Single().(*core.Literal).Value)
	assert.Equal(t, 1, b["b"].Single().(*core.Literal).Value)

	b, err = bind.Arg(core.NewApply(fWithDefault, []core.Node{core.Lit(0)}, nil))
	require.NoError(t, err)
	assert.Equal(t, 0, b["a"].Single().(*core.Literal).Value)
	assert.Nil(t, b["b"].Single().(*core.Literal).Value, "b defaults to the declared nil default")

	b, err = bind.Arg(core.NewApply(fWithDefault, nil, []core.KwArg{{Name: "a", Value: core.Lit(3)}}))
	require.NoError(t, err)
	assert.Equal(t, 3, b["a"].Single().(*core.Literal).Value)
	assert.Nil(t, b["b"].Single().(*core.Literal).Value)

	b, err = bind.Arg(core.NewApply(fWithDefault, []core.Node{core.Lit(2)}, []core.KwArg{{Name: "b", Value: core.Lit(5)}}))
	require.NoError(t, err)
	assert.Equal(t, 2, b["a"].Single().(*core.Literal).Value)
	assert.Equal(t, 5, b["b"].Single().(*core.Literal).Value)
}

func TestArg_MissingRequiredParameter(t *testing.T) {
	noDefaults := core.NewFunc("g", func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
		return nil, nil
	}, &core.ParamSpec{Positional: []string{"a", "b"}})

	b, err := bind.Arg(core.NewApply(noDefaults, []core.Node{core.Lit(1)}, nil))
	require.NoError(t, err)
	assert.Same(t, core.MissingArgument, b["b"].Single())
}

// fVarArgs mirrors def f(a, *b): ...
var fVarArgs = core.NewFunc("f_varargs", func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return -1, nil
}, &core.ParamSpec{
	Positional: []string{"a"},
	VarArgs:    "b",
})

func TestArg_StarArgs(t *testing.T) {
	b, err := bind.Arg(core.NewApply(fVarArgs, []core.Node{core.Lit(0), core.Lit(1)}, nil))
	require.NoError(t, err)
	assert.True(t, b["b"].IsVarArgs())
	assert.Equal(t, []core.Node{core.Lit(1)}, b["b"].VarArgs())

	b, err = bind.Arg(core.NewApply(fVarArgs, []core.Node{core.Lit(0), core.Lit(1), core.Lit(2), core.Lit(3)}, nil))
	require.NoError(t, err)
	assert.Equal(t, []core.Node{core.Lit(1), core.Lit(2), core.Lit(3)}, b["b"].VarArgs())
}

func TestArg_TooManyPositionalWithoutVarArgs(t *testing.T) {
	fixed := core.NewFunc("h", func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
		return nil, nil
	}, &core.ParamSpec{Positional: []string{"a"}})

	_, err := bind.Arg(core.NewApply(fixed, []core.Node{core.Lit(1), core.Lit(2)}, nil))
	assert.ErrorIs(t, err, bind.ErrTooManyPositional)
}

// fKwargs mirrors def f(a, **b): ...
var fKwargs = core.NewFunc("f_kwargs", func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return -1, nil
}, &core.ParamSpec{
	Positional: []string{"a"},
	VarKwargs:  "b",
})

func TestArg_StarKwargs(t *testing.T) {
	b, err := bind.Arg(core.NewApply(fKwargs, []core.Node{core.Lit(0)}, []core.KwArg{{Name: "b", Value: core.Lit(1)}}))
	require.NoError(t, err)
	assert.Equal(t, 0, b["a"].Single().(*core.Literal).Value)
	require.True(t, b["b"].IsVarKwargs())
	assert.Equal(t, map[string]core.Node{"b": core.Lit(1)}, b["b"].VarKwargs())

	b, err = bind.Arg(core.NewApply(fKwargs, []core.Node{core.Lit(0)}, []core.KwArg{
		{Name: "foo", Value: core.Lit(1)},
		{Name: "bar", Value: core.Lit(2)},
		{Name: "baz", Value: core.Lit(3)},
	}))
	require.NoError(t, err)
	assert.Equal(t, map[string]core.Node{
		"foo": core.Lit(1), "bar": core.Lit(2), "baz": core.Lit(3),
	}, b["b"].VarKwargs())
}

func TestArg_UnrecognizedKeywordWithoutVarKwargs(t *testing.T) {
	fixed := core.NewFunc("i", func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
		return nil, nil
	}, &core.ParamSpec{Positional: []string{"a"}})

	_, err := bind.Arg(core.NewApply(fixed, []core.Node{core.Lit(1)}, []core.KwArg{{Name: "zzz", Value: core.Lit(2)}}))
	var unrecognized *bind.UnrecognizedKeyword
	require.ErrorAs(t, err, &unrecognized)
	assert.Equal(t, "zzz", unrecognized.Name)
}

func TestArg_DuplicateArgument(t *testing.T) {
	_, err := bind.Arg(core.NewApply(fWithDefault, []core.Node{core.Lit(0)}, []core.KwArg{{Name: "a", Value: core.Lit(9)}}))
	var dup *bind.DuplicateArgument
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.Name)
}

func TestArg_NotIntrospectable(t *testing.T) {
	_, err := bind.Arg(core.NewApply(core.MakeList, []core.Node{core.Lit(1)}, nil))
	assert.ErrorIs(t, err, bind.ErrNotIntrospectable)
}

// fStarKwargs mirrors def f(a, *u, **b): ...
var fStarKwargs = core.NewFunc("f_star_kwargs", func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return -1, nil
}, &core.ParamSpec{
	Positional: []string{"a"},
	VarArgs:    "u",
	VarKwargs:  "b",
})

func TestArg_StarArgsAndStarKwargsTogether(t *testing.T) {
	b, err := bind.Arg(core.NewApply(fStarKwargs,
		[]core.Node{core.Lit(0), core.Lit("q"), core.Lit("uas")},
		[]core.KwArg{{Name: "foo", Value: core.Lit(1)}, {Name: "bar", Value: core.Lit(2)}},
	))
	require.NoError(t, err)
	assert.Equal(t, 0, b["a"].Single().(*core.Literal).Value)
	assert.Equal(t, []core.Node{core.Lit("q"), core.Lit("uas")}, b["u"].VarArgs())
	assert.Equal(t, map[string]core.Node{"foo": core.Lit(1), "bar": core.Lit(2)}, b["b"].VarKwargs())
}
