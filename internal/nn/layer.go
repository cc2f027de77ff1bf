package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/gradeng/internal/autodiff"
)

// Layer implements a fully connected layer of independent neurons.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	layer := nn.NewLayer("hidden", 2, 16, nn.ReLU, rng)
//	out := layer.Forward(inputs) // 16 values
type Layer struct {
	inFeatures  int
	outFeatures int
	neurons     []*Neuron
}

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer(name string, nin, nout int, act Activation, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(fmt.Sprintf("%s.n%d", name, i), nin, nout, act, rng)
	}
	return &Layer{
		inFeatures:  nin,
		outFeatures: nout,
		neurons:     neurons,
	}
}

// Forward applies every neuron to x.
func (l *Layer) Forward(x []autodiff.Value) []autodiff.Value {
	out := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Parameters returns the parameters of all neurons.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// InFeatures returns the number of inputs.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of outputs.
func (l *Layer) OutFeatures() int {
	return l.outFeatures
}

// String describes the layer.
func (l *Layer) String() string {
	parts := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		parts[i] = n.String()
	}
	return "Layer of [" + strings.Join(parts, ", ") + "]"
}
