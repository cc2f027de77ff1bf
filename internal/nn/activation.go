package nn

import (
	"fmt"

	"github.com/born-ml/gradeng/internal/autodiff"
)

// Activation selects the nonlinearity applied by a Neuron.
type Activation int

// Supported activations.
const (
	Identity Activation = iota
	ReLU
	Tanh
	Sigmoid
)

// Apply applies the activation to v.
func (a Activation) Apply(v autodiff.Value) autodiff.Value {
	switch a {
	case Identity:
		return v
	case ReLU:
		return v.ReLU()
	case Tanh:
		return v.Tanh()
	case Sigmoid:
		return v.Sigmoid()
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", int(a)))
	}
}

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case Identity:
		return "linear"
	case ReLU:
		return "relu"
	case Tanh:
		return "tanh"
	case Sigmoid:
		return "sigmoid"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// ParseActivation maps a name to an Activation.
func ParseActivation(name string) (Activation, error) {
	switch name {
	case "linear", "identity", "":
		return Identity, nil
	case "relu":
		return ReLU, nil
	case "tanh":
		return Tanh, nil
	case "sigmoid":
		return Sigmoid, nil
	default:
		return Identity, fmt.Errorf("nn: unknown activation %q", name)
	}
}
