package nn

import (
	"fmt"

	"github.com/born-ml/gradeng/internal/autodiff"
)

// Parameter represents a trainable scalar.
//
// The number itself lives on the Parameter so it outlives any single graph.
// Bind attaches it to a graph as a leaf for one forward pass.
//
// Example:
//
//	w := nn.NewParameter("w", 0.5)
//	x := w.Bind(g).Mul(g.Leaf(2))
//	x.Backward()
//	w.AccumulateGrad()
//	fmt.Println(w.Grad()) // 2
type Parameter struct {
	name string         // Parameter name (e.g., "layer0.neuron1.w2")
	data float64        // Current value
	grad float64        // Gradient collected from the last backward passes
	node autodiff.Value // Leaf in the graph of the current forward pass
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, data float64) *Parameter {
	return &Parameter{
		name: name,
		data: data,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Data returns the current value.
func (p *Parameter) Data() float64 {
	return p.data
}

// SetData overwrites the current value. Optimizers call this.
func (p *Parameter) SetData(x float64) {
	p.data = x
}

// Grad returns the collected gradient.
func (p *Parameter) Grad() float64 {
	return p.grad
}

// SetGrad overwrites the collected gradient.
func (p *Parameter) SetGrad(grad float64) {
	p.grad = grad
}

// ZeroGrad clears the collected gradient.
func (p *Parameter) ZeroGrad() {
	p.grad = 0
}

// Bind records the parameter as a named leaf of g and returns it.
func (p *Parameter) Bind(g *autodiff.Graph) autodiff.Value {
	p.node = g.Named(p.data, p.name)
	return p.node
}

// Value returns the leaf created by the last Bind.
func (p *Parameter) Value() autodiff.Value {
	if !p.node.Valid() {
		panic(fmt.Sprintf("nn: parameter %q is not bound to a live graph", p.name))
	}
	return p.node
}

// AccumulateGrad adds the gradient of the bound leaf to the parameter.
// Unbound parameters are left untouched.
func (p *Parameter) AccumulateGrad() {
	if p.node.Valid() {
		p.grad += p.node.Grad()
	}
}

// String renders the parameter for debugging.
func (p *Parameter) String() string {
	return fmt.Sprintf("Parameter(%s, data=%g, grad=%g)", p.name, p.data, p.grad)
}
