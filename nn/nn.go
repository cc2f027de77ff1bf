// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/gradeng/autodiff"
	"github.com/born-ml/gradeng/internal/nn"
)

// Module is the base interface for all components owning parameters.
type Module = nn.Module

// Parameter is a trainable scalar.
type Parameter = nn.Parameter

// Activation selects a neuron nonlinearity.
type Activation = nn.Activation

// Neuron computes act(w·x + b).
type Neuron = nn.Neuron

// Layer is a fully connected layer.
type Layer = nn.Layer

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// Activations.
const (
	Identity = nn.Identity
	ReLU     = nn.ReLU
	Tanh     = nn.Tanh
	Sigmoid  = nn.Sigmoid
)

// NewParameter creates a trainable parameter.
func NewParameter(name string, data float64) *Parameter {
	return nn.NewParameter(name, data)
}

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(name string, nin, fanOut int, act Activation, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(name, nin, fanOut, act, rng)
}

// NewLayer creates a fully connected layer.
func NewLayer(name string, nin, nout int, act Activation, rng *rand.Rand) *Layer {
	return nn.NewLayer(name, nin, nout, act, rng)
}

// NewMLP creates an MLP; the last layer is linear.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1}, nn.ReLU, rng)
func NewMLP(nin int, nouts []int, hidden Activation, rng *rand.Rand) *MLP {
	return nn.NewMLP(nin, nouts, hidden, rng)
}

// ParseActivation maps a name to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Bind records every parameter of m as a leaf of g.
func Bind(g *autodiff.Graph, m Module) {
	nn.Bind(g, m)
}

// CollectGrads pulls leaf gradients into the parameters of m.
func CollectGrads(m Module) {
	nn.CollectGrads(m)
}

// ZeroGrad clears parameter gradients.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// MSELoss computes mean((predictions - targets)²).
func MSELoss(predictions []autodiff.Value, targets []float64) (autodiff.Value, error) {
	return nn.MSELoss(predictions, targets)
}

// HingeLoss computes mean(relu(1 - y*score)).
func HingeLoss(scores []autodiff.Value, labels []float64) (autodiff.Value, error) {
	return nn.HingeLoss(scores, labels)
}

// CrossEntropyLoss computes -log(softmax(logits)[target]).
func CrossEntropyLoss(logits []autodiff.Value, target int) (autodiff.Value, error) {
	return nn.CrossEntropyLoss(logits, target)
}

// L2Penalty computes alpha * sum(p²) over bound parameters.
func L2Penalty(g *autodiff.Graph, params []*Parameter, alpha float64) autodiff.Value {
	return nn.L2Penalty(g, params, alpha)
}
