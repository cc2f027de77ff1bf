package autodiff

import (
	"fmt"
	"math"
)

// Add returns v + other.
func (v Value) Add(other Value) Value {
	g := sameGraph("add", v, other)
	return g.binary(OpAdd, v, other, v.Data()+other.Data())
}

// Mul returns v * other.
func (v Value) Mul(other Value) Value {
	g := sameGraph("mul", v, other)
	return g.binary(OpMul, v, other, v.Data()*other.Data())
}

// Neg returns -v.
func (v Value) Neg() Value {
	v.mustBeLive()
	return v.g.unary(OpNeg, v, -v.Data(), 0)
}

// Sub returns v - other, recorded as v + (-other).
func (v Value) Sub(other Value) Value {
	sameGraph("sub", v, other)
	return v.Add(other.Neg())
}

// Pow returns v raised to the constant exponent k.
//
// Only real results are allowed: a negative base with a non-integer
// exponent fails with ErrDomain, and a zero base with a negative exponent
// fails with ErrDivideByZero.
func (v Value) Pow(k float64) (Value, error) {
	x := v.Data()
	if err := checkPow(x, k); err != nil {
		return Value{}, err
	}
	return v.g.unary(OpPow, v, math.Pow(x, k), k), nil
}

func checkPow(x, k float64) error {
	if math.IsNaN(k) || math.IsNaN(x) {
		return &OpError{Op: "pow", Err: ErrDomain, Details: fmt.Sprintf("%g ** %g", x, k)}
	}
	if x < 0 && !math.IsInf(k, 0) && k != math.Trunc(k) {
		return &OpError{Op: "pow", Err: ErrDomain,
			Details: fmt.Sprintf("negative base %g with non-integer exponent %g", x, k)}
	}
	if x == 0 && k < 0 {
		return &OpError{Op: "pow", Err: ErrDivideByZero,
			Details: fmt.Sprintf("zero base with negative exponent %g", k)}
	}
	return nil
}

// Div returns v / other, recorded as v * other**-1.
func (v Value) Div(other Value) (Value, error) {
	sameGraph("div", v, other)
	if other.Data() == 0 {
		return Value{}, &OpError{Op: "div", Err: ErrDivideByZero,
			Details: fmt.Sprintf("%g / 0", v.Data())}
	}
	inv, err := other.Pow(-1)
	if err != nil {
		return Value{}, err
	}
	return v.Mul(inv), nil
}

// AddConst returns v + c.
func (v Value) AddConst(c float64) Value {
	v.mustBeLive()
	return v.Add(v.g.Const(c))
}

// SubConst returns v - c.
func (v Value) SubConst(c float64) Value {
	v.mustBeLive()
	return v.Sub(v.g.Const(c))
}

// MulConst returns v * c.
func (v Value) MulConst(c float64) Value {
	v.mustBeLive()
	return v.Mul(v.g.Const(c))
}

// DivConst returns v / c.
func (v Value) DivConst(c float64) (Value, error) {
	v.mustBeLive()
	if c == 0 {
		return Value{}, &OpError{Op: "div", Err: ErrDivideByZero,
			Details: fmt.Sprintf("%g / 0", v.Data())}
	}
	return v.Div(v.g.Const(c))
}

// RSub returns c - v.
func RSub(c float64, v Value) Value {
	v.mustBeLive()
	return v.g.Const(c).Sub(v)
}

// RDiv returns c / v.
func RDiv(c float64, v Value) (Value, error) {
	v.mustBeLive()
	return v.g.Const(c).Div(v)
}

// Sum returns the sum of vs, which must all belong to g. An empty sum is
// the constant 0.
func (g *Graph) Sum(vs ...Value) Value {
	if len(vs) == 0 {
		return g.Const(0)
	}
	vs[0].mustBeLive()
	if vs[0].g != g {
		panic("autodiff: sum: operands belong to different graphs")
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = acc.Add(v)
	}
	return acc
}

// powDeriv returns x**(k-1), with the k == 0 case pinned to 0 so a zero
// base does not turn the derivative into NaN.
func powDeriv(x, k float64) float64 {
	if k == 0 {
		return 0
	}
	return math.Pow(x, k-1)
}
