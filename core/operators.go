package core

// The functions below build Apply nodes over BinaryOpDispatch/UnaryOpDispatch
// for the operators the spec exposes as builders. Go cannot overload +, -,
// [] the way the source's Node.__add__ etc. do, so each operator is instead
// a free function taking and returning Node, plus a same-named method on
// *Apply for fluent chaining when the left operand is already an Apply.

func binaryOp(op string, x, y Node) *Apply {
	return NewApply(BinaryOpDispatch, []Node{x, y, NewLiteral(op)}, nil)
}

func unaryOp(op string, x Node) *Apply {
	return NewApply(UnaryOpDispatch, []Node{x, NewLiteral(op)}, nil)
}

func Add(x, y Node) *Apply      { return binaryOp("+", x, y) }
func Sub(x, y Node) *Apply      { return binaryOp("-", x, y) }
func Mul(x, y Node) *Apply      { return binaryOp("*", x, y) }
func Div(x, y Node) *Apply      { return binaryOp("/", x, y) }
func FloorDiv(x, y Node) *Apply { return binaryOp("//", x, y) }
func Mod(x, y Node) *Apply      { return binaryOp("%", x, y) }
func BitOr(x, y Node) *Apply    { return binaryOp("|", x, y) }
func BitXor(x, y Node) *Apply   { return binaryOp("^", x, y) }
func BitAnd(x, y Node) *Apply   { return binaryOp("&", x, y) }
func Lshift(x, y Node) *Apply   { return binaryOp("<<", x, y) }
func Rshift(x, y Node) *Apply   { return binaryOp(">>", x, y) }
func Lt(x, y Node) *Apply       { return binaryOp("<", x, y) }
func Le(x, y Node) *Apply       { return binaryOp("<=", x, y) }
func Gt(x, y Node) *Apply       { return binaryOp(">", x, y) }
func Ge(x, y Node) *Apply       { return binaryOp(">=", x, y) }

func Neg(x Node) *Apply    { return unaryOp("-", x) }
func Pos(x Node) *Apply    { return unaryOp("+", x) }
func Invert(x Node) *Apply { return unaryOp("~", x) }

// PowOf raises x to the power of y, deferring to the Pow Callable rather
// than BinaryOpDispatch, matching the source's __pow__ calling pow()
// directly instead of routing through _binary_arithmetic.
func PowOf(x, y Node) *Apply {
	return NewApply(Pow, []Node{x, y}, nil)
}

// GetItem builds an Apply indexing container at index, where index is
// either a raw value (lifted via AsGraph) or a Slice. eval.Evaluate
// short-circuits this when container is itself a sequence-constructor
// Apply (MakeList/MakeTuple) and index is a concrete integer or Slice,
// without evaluating the container's other elements; otherwise it falls
// back to evaluating the container and calling GetItemFunc.
func GetItem(container Node, index interface{}) *Apply {
	var idxNode Node
	if sl, ok := index.(Slice); ok {
		idxNode = NewLiteral(sl)
	} else {
		idxNode = AsGraph(index)
	}
	return NewApply(GetItemFunc, []Node{container, idxNode}, nil)
}

// IntOf, FloatOf, ComplexOf, AbsOf, OctOf, HexOf, and DivmodOf build Apply
// nodes over the corresponding host-builtin Callables (Int, Float, Complex,
// Abs, Oct, Hex, Divmod), mirroring how the source passes those same Python
// builtins to partial() rather than giving them dedicated builder functions.
func IntOf(x Node) *Apply   { return NewApply(Int, []Node{x}, nil) }
func FloatOf(x Node) *Apply { return NewApply(Float, []Node{x}, nil) }
func ComplexOf(real Node, imag ...Node) *Apply {
	args := []Node{real}
	if len(imag) > 0 {
		args = append(args, imag[0])
	}
	return NewApply(Complex, args, nil)
}
func AbsOf(x Node) *Apply       { return NewApply(Abs, []Node{x}, nil) }
func OctOf(x Node) *Apply       { return NewApply(Oct, []Node{x}, nil) }
func HexOf(x Node) *Apply       { return NewApply(Hex, []Node{x}, nil) }
func DivmodOf(x, y Node) *Apply { return NewApply(Divmod, []Node{x, y}, nil) }

// Add and friends as methods on *Apply, for chaining off a node already
// known to be an Apply: expr.Add(Lit(1)).Mul(Lit(2)).
func (a *Apply) Add(y Node) *Apply      { return Add(a, y) }
func (a *Apply) Sub(y Node) *Apply      { return Sub(a, y) }
func (a *Apply) Mul(y Node) *Apply      { return Mul(a, y) }
func (a *Apply) Div(y Node) *Apply      { return Div(a, y) }
func (a *Apply) FloorDiv(y Node) *Apply { return FloorDiv(a, y) }
func (a *Apply) Mod(y Node) *Apply      { return Mod(a, y) }

func (a *Apply) GetItem(index interface{}) *Apply { return GetItem(a, index) }

// Lit is a short alias for NewLiteral, convenient at operator-builder call
// sites: Add(Lit(1), Lit(2)).
func Lit(v interface{}) *Literal { return NewLiteral(v) }
