// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over scalar autodiff.
//
// # Overview
//
// This package contains:
//   - Neuron, Layer, MLP: fully connected networks
//   - Activations: Identity, ReLU, Tanh, Sigmoid
//   - Loss functions: MSELoss, HingeLoss, CrossEntropyLoss, L2Penalty
//   - Utilities: Module interface, Parameter, Bind, CollectGrads
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gradeng/autodiff"
//	    "github.com/born-ml/gradeng/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(1337))
//	    model := nn.NewMLP(2, []int{16, 16, 1}, nn.ReLU, rng)
//
//	    g := autodiff.NewGraph()
//	    nn.Bind(g, model)
//	    score := model.Forward([]autodiff.Value{g.Leaf(0.5), g.Leaf(-1)})[0]
//	    loss, _ := nn.HingeLoss([]autodiff.Value{score}, []float64{1})
//	    loss.Backward()
//	    nn.CollectGrads(model)
//	}
//
// # Parameters
//
// Parameters keep their numbers between graphs. Each forward pass binds
// them into a fresh graph as leaves; CollectGrads copies the leaf gradients
// back so an optimizer from package optim can apply them.
package nn
