package nn_test

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/gradeng/autodiff"
	"github.com/born-ml/gradeng/nn"
)

func ExampleNewMLP() {
	rng := rand.New(rand.NewSource(1337))
	model := nn.NewMLP(2, []int{4, 1}, nn.Tanh, rng)

	g := autodiff.NewGraph()
	nn.Bind(g, model)
	out := model.Forward([]autodiff.Value{g.Leaf(0.5), g.Leaf(-1)})
	loss, _ := nn.MSELoss(out, []float64{1})
	loss.Backward()
	nn.CollectGrads(model)

	fmt.Println(len(model.Parameters()))
	// Output: 17
}
