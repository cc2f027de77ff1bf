package autodiff

import "fmt"

// Lift converts x into a Value of g. Values of g are returned unchanged;
// Go integer and floating-point numbers become constant leaves.
//
// Anything else, including a Value recorded by another graph, fails with
// ErrTypeMismatch.
func (g *Graph) Lift(x any) (Value, error) {
	switch x := x.(type) {
	case Value:
		if !x.Valid() || x.g != g {
			return Value{}, &OpError{Op: "lift", Err: ErrTypeMismatch, Details: "value does not belong to this graph"}
		}
		return x, nil
	case float64:
		return g.Const(x), nil
	case float32:
		return g.Const(float64(x)), nil
	case int:
		return g.Const(float64(x)), nil
	case int8:
		return g.Const(float64(x)), nil
	case int16:
		return g.Const(float64(x)), nil
	case int32:
		return g.Const(float64(x)), nil
	case int64:
		return g.Const(float64(x)), nil
	case uint:
		return g.Const(float64(x)), nil
	case uint8:
		return g.Const(float64(x)), nil
	case uint16:
		return g.Const(float64(x)), nil
	case uint32:
		return g.Const(float64(x)), nil
	case uint64:
		return g.Const(float64(x)), nil
	default:
		return Value{}, &OpError{Op: "lift", Err: ErrTypeMismatch, Details: fmt.Sprintf("unsupported operand type %T", x)}
	}
}

// Apply lifts both operands and combines them with a binary operation.
// It is the dynamic entry point for callers that hold operands of mixed
// types.
func (g *Graph) Apply(op OpKind, a, b any) (Value, error) {
	x, err := g.Lift(a)
	if err != nil {
		return Value{}, err
	}
	y, err := g.Lift(b)
	if err != nil {
		return Value{}, err
	}
	switch op {
	case OpAdd:
		return x.Add(y), nil
	case OpMul:
		return x.Mul(y), nil
	default:
		return Value{}, fmt.Errorf("autodiff: apply: %s is not a binary operation", op)
	}
}
