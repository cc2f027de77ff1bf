package autodiff

import (
	"fmt"
	"strconv"
)

// Value is a handle to a node recorded in a Graph.
//
// Values are small and meant to be passed by value. The zero Value is not
// attached to any graph and panics when used in an operation.
type Value struct {
	g   *Graph
	id  int
	gen uint32
}

// Graph returns the graph that recorded v.
func (v Value) Graph() *Graph {
	return v.g
}

// ID returns the arena index of v. Dependencies always have a smaller ID
// than the values built from them.
func (v Value) ID() int {
	return v.id
}

// Valid reports whether v refers to a live node.
func (v Value) Valid() bool {
	return v.g != nil && v.gen == v.g.gen && v.id < len(v.g.nodes)
}

// Data returns the forward value.
func (v Value) Data() float64 {
	return v.node().value
}

// Grad returns the accumulated gradient.
func (v Value) Grad() float64 {
	return v.node().grad
}

// ZeroGrad resets the gradient of v alone.
func (v Value) ZeroGrad() {
	v.node().grad = 0
}

// Op returns the operation that produced v.
func (v Value) Op() OpKind {
	return v.node().op
}

// OpLabel returns a printable description of the producing operation,
// e.g. "+" or "**2".
func (v Value) OpLabel() string {
	n := v.node()
	if n.op == OpPow {
		return n.op.String() + strconv.FormatFloat(n.aux, 'g', -1, 64)
	}
	return n.op.String()
}

// Label returns the label given to a named leaf.
func (v Value) Label() string {
	return v.node().label
}

// IsLeaf reports whether v has no dependencies.
func (v Value) IsLeaf() bool {
	return v.node().ndeps == 0
}

// Deps returns the direct inputs of v in operand order.
func (v Value) Deps() []Value {
	n := v.node()
	deps := make([]Value, n.ndeps)
	for i := range deps {
		deps[i] = Value{g: v.g, id: n.deps[i], gen: v.gen}
	}
	return deps
}

// String renders v for debugging.
func (v Value) String() string {
	if !v.Valid() {
		return "Value(<invalid>)"
	}
	n := &v.g.nodes[v.id]
	return fmt.Sprintf("Value(data=%g, grad=%g)", n.value, n.grad)
}

func (v Value) node() *node {
	v.mustBeLive()
	return &v.g.nodes[v.id]
}

func (v Value) mustBeLive() {
	if v.g == nil {
		panic("autodiff: use of zero Value")
	}
	if v.gen != v.g.gen {
		panic("autodiff: use of stale Value (graph was reset)")
	}
}

// sameGraph returns the graph shared by a and b.
func sameGraph(op string, a, b Value) *Graph {
	a.mustBeLive()
	b.mustBeLive()
	if a.g != b.g {
		panic(fmt.Sprintf("autodiff: %s: operands belong to different graphs", op))
	}
	return a.g
}
