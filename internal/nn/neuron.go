package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/gradeng/internal/autodiff"
)

// Neuron computes act(sum_i w_i*x_i + b).
//
// Weights are initialized with Xavier/Glorot uniform values, the bias with
// zero.
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
	act     Activation
}

// NewNeuron creates a neuron with nin inputs. fanOut is only used to scale
// the initial weights.
func NewNeuron(name string, nin, fanOut int, act Activation, rng *rand.Rand) *Neuron {
	weights := make([]*Parameter, nin)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("%s.w%d", name, i), Xavier(nin, fanOut, rng))
	}
	return &Neuron{
		weights: weights,
		bias:    NewParameter(name+".b", 0),
		act:     act,
	}
}

// Forward computes the neuron output. Parameters must be bound to the graph
// of x.
func (n *Neuron) Forward(x []autodiff.Value) autodiff.Value {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron expects %d inputs, got %d", len(n.weights), len(x)))
	}
	acc := n.bias.Value()
	for i, w := range n.weights {
		acc = acc.Add(w.Value().Mul(x[i]))
	}
	return n.act.Apply(acc)
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Activation returns the nonlinearity of the neuron.
func (n *Neuron) Activation() Activation {
	return n.act
}

// String describes the neuron.
func (n *Neuron) String() string {
	return fmt.Sprintf("%sNeuron(%d)", n.act, len(n.weights))
}
