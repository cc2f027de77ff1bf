package autodiff

import (
	"fmt"
	"math"
)

// ReLU returns max(v, 0).
func (v Value) ReLU() Value {
	x := v.Data()
	return v.g.unary(OpReLU, v, max(x, 0), 0)
}

// Tanh returns the hyperbolic tangent of v.
func (v Value) Tanh() Value {
	return v.g.unary(OpTanh, v, math.Tanh(v.Data()), 0)
}

// Exp returns e**v.
func (v Value) Exp() Value {
	return v.g.unary(OpExp, v, math.Exp(v.Data()), 0)
}

// Log returns the natural logarithm of v. Negative inputs fail with
// ErrDomain and zero fails with ErrDivideByZero.
func (v Value) Log() (Value, error) {
	x := v.Data()
	switch {
	case x < 0 || math.IsNaN(x):
		return Value{}, &OpError{Op: "log", Err: ErrDomain, Details: fmt.Sprintf("log(%g)", x)}
	case x == 0:
		return Value{}, &OpError{Op: "log", Err: ErrDivideByZero, Details: "log(0)"}
	}
	return v.g.unary(OpLog, v, math.Log(x), 0), nil
}

// Sigmoid returns 1 / (1 + e**-v).
func (v Value) Sigmoid() Value {
	return v.g.unary(OpSigmoid, v, sigmoid(v.Data()), 0)
}

func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// Softmax returns exp(v_i) / sum_j exp(v_j) for every input.
//
// The maximum input is subtracted as a constant before exponentiating; the
// shift does not change the result or its gradient. The outputs are built
// from Exp, Add and Div, so each one carries its own gradient path.
func Softmax(vs []Value) ([]Value, error) {
	if len(vs) == 0 {
		return nil, nil
	}
	g := vs[0].g
	peak := math.Inf(-1)
	for _, v := range vs {
		sameGraph("softmax", vs[0], v)
		peak = max(peak, v.Data())
	}

	exps := make([]Value, len(vs))
	for i, v := range vs {
		exps[i] = v.SubConst(peak).Exp()
	}
	total := g.Sum(exps...)

	out := make([]Value, len(vs))
	for i, e := range exps {
		p, err := e.Div(total)
		if err != nil {
			return nil, fmt.Errorf("softmax: %w", err)
		}
		out[i] = p
	}
	return out, nil
}
