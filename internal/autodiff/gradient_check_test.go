package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradeng/internal/autodiff"
)

// builder constructs a scalar expression over the given inputs.
type builder func(g *autodiff.Graph, xs []autodiff.Value) (autodiff.Value, error)

// eval runs the forward pass on a fresh graph.
func eval(t *testing.T, f builder, point []float64) float64 {
	t.Helper()
	g := autodiff.NewGraph()
	xs := make([]autodiff.Value, len(point))
	for i, p := range point {
		xs[i] = g.Leaf(p)
	}
	out, err := f(g, xs)
	require.NoError(t, err)
	return out.Data()
}

// numericalGradient computes the gradient using central differences.
func numericalGradient(t *testing.T, f builder, point []float64, epsilon float64) []float64 {
	t.Helper()
	grads := make([]float64, len(point))
	for i := range point {
		shifted := append([]float64(nil), point...)
		shifted[i] = point[i] + epsilon
		plus := eval(t, f, shifted)
		shifted[i] = point[i] - epsilon
		minus := eval(t, f, shifted)
		grads[i] = (plus - minus) / (2 * epsilon)
	}
	return grads
}

// checkGradient compares Backward against central differences.
func checkGradient(t *testing.T, f builder, point []float64) {
	t.Helper()
	g := autodiff.NewGraph()
	xs := make([]autodiff.Value, len(point))
	for i, p := range point {
		xs[i] = g.Leaf(p)
	}
	out, err := f(g, xs)
	require.NoError(t, err)
	out.Backward()

	numeric := numericalGradient(t, f, point, 1e-6)
	for i, x := range xs {
		assert.InDelta(t, numeric[i], x.Grad(), 1e-5, "input %d", i)
	}
}

func TestNumericalGradient_Ops(t *testing.T) {
	tests := []struct {
		name  string
		f     builder
		point []float64
	}{
		{
			name: "mul_add",
			f: func(_ *autodiff.Graph, xs []autodiff.Value) (autodiff.Value, error) {
				return xs[0].Mul(xs[1]).Add(xs[0]), nil
			},
			point: []float64{2, 3},
		},
		{
			name: "div",
			f: func(_ *autodiff.Graph, xs []autodiff.Value) (autodiff.Value, error) {
				return xs[0].Div(xs[1])
			},
			point: []float64{1.3, -0.7},
		},
		{
			name: "pow_fractional",
			f: func(_ *autodiff.Graph, xs []autodiff.Value) (autodiff.Value, error) {
				return xs[0].Pow(1.5)
			},
			point: []float64{2.2},
		},
		{
			name: "pow_negative_integer",
			f: func(_ *autodiff.Graph, xs []autodiff.Value) (autodiff.Value, error) {
				return xs[0].Pow(-3)
			},
			point: []float64{-1.4},
		},
		{
			name: "tanh_exp",
			f: func(_ *autodiff.Graph, xs []autodiff.Value) (autodiff.Value, error) {
				return xs[0].Tanh().Mul(xs[1].Exp()), nil
			},
			point: []float64{0.4, -0.9},
		},
		{
			name: "log_sigmoid",
			f: func(_ *autodiff.Graph, xs []autodiff.Value) (autodiff.Value, error) {
				return xs[0].Sigmoid().Log()
			},
			point: []float64{-0.6},
		},
		{
			name: "relu_active_branch",
			f: func(_ *autodiff.Graph, xs []autodiff.Value) (autodiff.Value, error) {
				return xs[0].Mul(xs[1]).ReLU().Sub(xs[1]), nil
			},
			point: []float64{1.5, 2},
		},
		{
			name: "shared_subexpression",
			f: func(_ *autodiff.Graph, xs []autodiff.Value) (autodiff.Value, error) {
				h := xs[0].Mul(xs[1]).Tanh()
				return h.Mul(h).Add(h.MulConst(3)).Sub(xs[0]), nil
			},
			point: []float64{0.3, 0.8},
		},
		{
			name: "softmax_entry",
			f: func(_ *autodiff.Graph, xs []autodiff.Value) (autodiff.Value, error) {
				probs, err := autodiff.Softmax(xs)
				if err != nil {
					return autodiff.Value{}, err
				}
				return probs[1].Log()
			},
			point: []float64{0.1, -1.2, 2.3},
		},
		{
			name: "micrograd_expression",
			f: func(g *autodiff.Graph, xs []autodiff.Value) (autodiff.Value, error) {
				a, b := xs[0], xs[1]
				c := a.Add(b)
				d := a.Mul(b).Add(mustPow(b, 3))
				c = c.Add(c.AddConst(1))
				c = c.Add(c.AddConst(1)).Add(a.Neg())
				d = d.Add(d.MulConst(2)).Add(b.Add(a).ReLU())
				d = d.Add(d.MulConst(3)).Add(b.Sub(a).ReLU())
				e := c.Sub(d)
				f := mustPow(e, 2)
				half, err := f.DivConst(2)
				if err != nil {
					return autodiff.Value{}, err
				}
				ten, err := autodiff.RDiv(10, f)
				if err != nil {
					return autodiff.Value{}, err
				}
				return half.Add(ten), nil
			},
			point: []float64{-4, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkGradient(t, tt.f, tt.point)
		})
	}
}

// TestMicrogradReference pins the values of the classic micrograd sanity
// expression.
func TestMicrogradReference(t *testing.T) {
	g := autodiff.NewGraph()
	a, b := g.Leaf(-4), g.Leaf(2)

	c := a.Add(b)
	d := a.Mul(b).Add(mustPow(b, 3))
	c = c.Add(c.AddConst(1))
	c = c.Add(c.AddConst(1)).Add(a.Neg())
	d = d.Add(d.MulConst(2)).Add(b.Add(a).ReLU())
	d = d.Add(d.MulConst(3)).Add(b.Sub(a).ReLU())
	e := c.Sub(d)
	f := mustPow(e, 2)
	half, err := f.DivConst(2)
	require.NoError(t, err)
	ten, err := autodiff.RDiv(10, f)
	require.NoError(t, err)
	out := half.Add(ten)
	out.Backward()

	assert.InDelta(t, 24.70408163265306, out.Data(), 1e-9)
	assert.InDelta(t, 138.83381924198252, a.Grad(), 1e-9)
	assert.InDelta(t, 645.5772594752186, b.Grad(), 1e-9)
}

func mustPow(v autodiff.Value, k float64) autodiff.Value {
	out, err := v.Pow(k)
	if err != nil {
		panic(err)
	}
	return out
}
