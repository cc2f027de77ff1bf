// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for scalar networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	model := nn.NewMLP(2, []int{16, 1}, nn.ReLU, rng)
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.01})
//
//	for step := 0; step < 100; step++ {
//	    g := autodiff.NewGraph()
//	    nn.Bind(g, model)
//	    loss := computeLoss(g, model)
//	    loss.Backward()
//	    nn.CollectGrads(model)
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim
