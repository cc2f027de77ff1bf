package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/gradeng/internal/autodiff"
)

// MLP is a multi-layer perceptron: a stack of fully connected layers.
//
// Every layer except the last applies the hidden activation; the last one
// is linear so it can produce unbounded scores.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1337))
//	model := nn.NewMLP(2, []int{16, 16, 1}, nn.ReLU, rng)
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
func NewMLP(nin int, nouts []int, hidden Activation, rng *rand.Rand) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		act := hidden
		if i == len(nouts)-1 {
			act = Identity
		}
		layers[i] = NewLayer(fmt.Sprintf("layer%d", i), sizes[i], sizes[i+1], act, rng)
	}
	return &MLP{layers: layers}
}

// Forward runs x through every layer.
func (m *MLP) Forward(x []autodiff.Value) []autodiff.Value {
	for _, l := range m.layers {
		x = l.Forward(x)
	}
	return x
}

// Parameters returns the parameters of all layers.
func (m *MLP) Parameters() []*Parameter {
	var params []*Parameter
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// String describes the network.
func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		parts[i] = l.String()
	}
	return "MLP of [" + strings.Join(parts, ", ") + "]"
}
