// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Every operation computes its forward value and records a node that knows
// its operands and which local derivative rule applies. Calling Backward on
// a terminal value orders the reachable nodes topologically and applies the
// chain rule from the terminal back to the leaves.
//
// Supported operations:
//   - Add: d(a+b)/da = 1, d(a+b)/db = 1
//   - Mul: d(a*b)/da = b, d(a*b)/db = a
//   - Neg, Sub: built on Add and Mul rules
//   - Pow: d(a^k)/da = k*a^(k-1), k a constant
//   - Div: a * b^-1
//   - ReLU: 1 if a > 0, else 0
//   - Tanh: 1 - tanh(a)^2
//   - Exp: exp(a)
//   - Log: 1/a
//   - Sigmoid: s*(1-s)
package autodiff

import "fmt"

// OpKind identifies the operation that produced a node.
type OpKind uint8

// Operation kinds.
const (
	OpLeaf OpKind = iota
	OpAdd
	OpMul
	OpNeg
	OpPow
	OpReLU
	OpTanh
	OpExp
	OpLog
	OpSigmoid
)

var opNames = [...]string{
	OpLeaf:    "",
	OpAdd:     "+",
	OpMul:     "*",
	OpNeg:     "neg",
	OpPow:     "**",
	OpReLU:    "ReLU",
	OpTanh:    "tanh",
	OpExp:     "exp",
	OpLog:     "log",
	OpSigmoid: "sigmoid",
}

// String returns the short label used when printing graphs.
func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", k)
}

// Arity returns the number of operands the operation takes.
func (k OpKind) Arity() int {
	switch k {
	case OpLeaf:
		return 0
	case OpAdd, OpMul:
		return 2
	default:
		return 1
	}
}
