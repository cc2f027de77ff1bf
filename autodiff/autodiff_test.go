package autodiff_test

import (
	"fmt"

	"github.com/born-ml/gradeng/autodiff"
)

func Example() {
	g := autodiff.NewGraph()
	a, b := g.Leaf(2), g.Leaf(3)

	f := a.Mul(b).Add(a)
	f.Backward()

	fmt.Println(f.Data(), a.Grad(), b.Grad())
	// Output: 8 4 2
}

func ExampleValue_Pow() {
	g := autodiff.NewGraph()
	x := g.Leaf(3)

	sq, _ := x.Pow(2)
	f := sq.SubConst(4).ReLU()
	f.Backward()

	fmt.Println(f, x)
	// Output: Value(data=5, grad=1) Value(data=3, grad=6)
}
