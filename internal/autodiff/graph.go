package autodiff

// Graph records scalar nodes during the forward pass and propagates
// gradients through them during the backward pass.
//
// Nodes live in an arena in creation order. A node may only depend on nodes
// created before it, so the recorded graph is always acyclic.
//
// A Graph is not safe for concurrent use. Independent graphs share no state.
//
// Usage:
//
//	g := autodiff.NewGraph()
//	a, b := g.Leaf(2), g.Leaf(3)
//	f := a.Mul(b).Add(a)
//	f.Backward()
//	fmt.Println(a.Grad(), b.Grad()) // 4 2
type Graph struct {
	nodes []node // Recorded nodes (in creation order)
	gen   uint32 // Bumped by Reset to invalidate outstanding handles
}

// node is one entry of the arena.
type node struct {
	value float64 // Forward value, never mutated after creation
	grad  float64 // Accumulated by the backward pass
	op    OpKind
	deps  [2]int  // Dependency indices, only the first ndeps are valid
	ndeps uint8   // 0 for leaves, 1 for unary ops, 2 for binary ops
	aux   float64 // Captured constant (exponent for OpPow)
	label string
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Leaf records an input node holding x.
func (g *Graph) Leaf(x float64) Value {
	return g.push(node{value: x, op: OpLeaf})
}

// Const records a constant. It is an ordinary leaf; the name documents intent.
func (g *Graph) Const(x float64) Value {
	return g.Leaf(x)
}

// Named records a leaf carrying a descriptive label.
func (g *Graph) Named(x float64, label string) Value {
	return g.push(node{value: x, op: OpLeaf, label: label})
}

// Len returns the number of recorded nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// ZeroGrad sets the gradient of every recorded node to zero.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// Reset removes all recorded nodes. Values created before the reset become
// stale and panic when used.
func (g *Graph) Reset() {
	g.nodes = g.nodes[:0]
	g.gen++
}

func (g *Graph) push(n node) Value {
	g.nodes = append(g.nodes, n)
	return Value{g: g, id: len(g.nodes) - 1, gen: g.gen}
}

func (g *Graph) unary(op OpKind, in Value, out, aux float64) Value {
	return g.push(node{value: out, op: op, deps: [2]int{in.id}, ndeps: 1, aux: aux})
}

func (g *Graph) binary(op OpKind, a, b Value, out float64) Value {
	return g.push(node{value: out, op: op, deps: [2]int{a.id, b.id}, ndeps: 2})
}
