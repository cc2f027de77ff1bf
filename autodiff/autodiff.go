// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Operations on Values record a graph as they compute; Backward walks that
// graph from a terminal value and fills in the gradient of every ancestor.
//
// Example:
//
//	import "github.com/born-ml/gradeng/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    a, b := g.Leaf(2), g.Leaf(3)
//
//	    f := a.Mul(b).Add(a) // Operations recorded on g
//	    f.Backward()
//
//	    fmt.Println(f.Data(), a.Grad(), b.Grad()) // 8 4 2
//	}
package autodiff

import (
	"github.com/born-ml/gradeng/internal/autodiff"
)

// Graph records values for one forward pass.
type Graph = autodiff.Graph

// Value is a handle to a recorded scalar.
type Value = autodiff.Value

// OpKind identifies the operation that produced a Value.
type OpKind = autodiff.OpKind

// OpError reports an operation rejected during the forward pass.
type OpError = autodiff.OpError

// Operation kinds.
const (
	OpLeaf    = autodiff.OpLeaf
	OpAdd     = autodiff.OpAdd
	OpMul     = autodiff.OpMul
	OpNeg     = autodiff.OpNeg
	OpPow     = autodiff.OpPow
	OpReLU    = autodiff.OpReLU
	OpTanh    = autodiff.OpTanh
	OpExp     = autodiff.OpExp
	OpLog     = autodiff.OpLog
	OpSigmoid = autodiff.OpSigmoid
)

// Errors returned by operations, wrapped in *OpError.
var (
	ErrDomain       = autodiff.ErrDomain
	ErrDivideByZero = autodiff.ErrDivideByZero
	ErrTypeMismatch = autodiff.ErrTypeMismatch
)

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// RSub returns c - v.
func RSub(c float64, v Value) Value {
	return autodiff.RSub(c, v)
}

// RDiv returns c / v.
//
// Example:
//
//	inv, err := autodiff.RDiv(1, x)
func RDiv(c float64, v Value) (Value, error) {
	return autodiff.RDiv(c, v)
}

// Softmax normalises vs into probabilities that stay differentiable.
func Softmax(vs []Value) ([]Value, error) {
	return autodiff.Softmax(vs)
}
