// Package nn implements small neural network building blocks on top of
// scalar autodiff.
//
// This package provides:
//   - Module interface: anything that owns trainable parameters
//   - Parameter: a trainable scalar that survives across forward passes
//   - Neuron, Layer, MLP: fully connected networks
//   - Loss functions: MSE, Hinge, CrossEntropy, L2 penalty
//
// Parameters hold plain numbers between steps. Each training step builds a
// fresh graph, binds the parameters into it, runs the forward pass and
// Backward, then collects the gradients back:
//
//	g := autodiff.NewGraph()
//	nn.Bind(g, model)
//	loss := ... // forward pass using model.Forward
//	loss.Backward()
//	nn.CollectGrads(model)
//	optimizer.Step()
//	optimizer.ZeroGrad()
package nn

import (
	"github.com/born-ml/gradeng/internal/autodiff"
)

// Module is the base interface for all neural network components.
type Module interface {
	// Parameters returns all trainable parameters, including those of
	// nested modules, in a stable order.
	Parameters() []*Parameter
}

// Bind records every parameter of m as a leaf of g. It must be called
// before the forward pass on g.
func Bind(g *autodiff.Graph, m Module) {
	for _, p := range m.Parameters() {
		p.Bind(g)
	}
}

// CollectGrads adds the gradient of every bound parameter node into the
// parameter itself.
func CollectGrads(m Module) {
	for _, p := range m.Parameters() {
		p.AccumulateGrad()
	}
}

// ZeroGrad clears the gradients of all parameters of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// NumParameters returns the number of scalar parameters in m.
func NumParameters(m Module) int {
	return len(m.Parameters())
}
