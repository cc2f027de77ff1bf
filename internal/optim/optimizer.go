// Package optim implements optimization algorithms for training networks
// built from scalar autodiff parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Example usage:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.01})
//
//	for step := range steps {
//	    g := autodiff.NewGraph()
//	    nn.Bind(g, model)
//	    loss := computeLoss(g, model, batch)
//	    loss.Backward()
//	    nn.CollectGrads(model)
//
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/born-ml/gradeng/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies the collected parameter gradients.
	Step()

	// ZeroGrad clears all parameter gradients. Gradients accumulate until
	// this is called.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate, for schedules.
	SetLR(lr float64)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

func zeroGrads(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
