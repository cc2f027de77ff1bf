package autodiff

// Backward computes d(v)/d(x) for every node x reachable from v.
//
// Algorithm:
//  1. Seed v's gradient with 1 (assigned, not accumulated)
//  2. Order the reachable nodes so each one follows all of its dependencies
//  3. Walk that order from the end, applying each node's local rule
//
// Gradients accumulate, interior ones included: calling Backward again
// without ZeroGrad re-propagates grads that already hold the previous pass,
// so leaves feeding only v double while deeper graphs compound. Resetting
// between passes is the caller's job.
func (v Value) Backward() {
	v.mustBeLive()
	g := v.g
	order := g.topo(v.id)

	g.nodes[v.id].grad = 1.0
	for i := len(order) - 1; i >= 0; i-- {
		g.propagate(order[i])
	}
}

// TopoOrder returns every node reachable from root, each one after all of
// its dependencies. root is last.
func (g *Graph) TopoOrder(root Value) []Value {
	root.mustBeLive()
	if root.g != g {
		panic("autodiff: topo order: root belongs to a different graph")
	}
	ids := g.topo(root.id)
	order := make([]Value, len(ids))
	for i, id := range ids {
		order[i] = Value{g: g, id: id, gen: g.gen}
	}
	return order
}

// topo is a depth-first post-order walk with an explicit stack, so deep
// chains do not grow the goroutine stack.
func (g *Graph) topo(root int) []int {
	type frame struct {
		id   int
		next uint8
	}

	// Every reachable node has an index <= root.
	visited := make([]bool, root+1)
	order := make([]int, 0, root+1)
	stack := []frame{{id: root}}
	visited[root] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := &g.nodes[top.id]
		if top.next < n.ndeps {
			dep := n.deps[top.next]
			top.next++
			if !visited[dep] {
				visited[dep] = true
				stack = append(stack, frame{id: dep})
			}
			continue
		}
		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}
	return order
}

// propagate applies the local derivative rule of node id, accumulating into
// its dependencies.
func (g *Graph) propagate(id int) {
	n := &g.nodes[id]
	out := n.grad
	switch n.op {
	case OpLeaf:
		return
	case OpAdd:
		g.nodes[n.deps[0]].grad += out
		g.nodes[n.deps[1]].grad += out
	case OpMul:
		a, b := &g.nodes[n.deps[0]], &g.nodes[n.deps[1]]
		av, bv := a.value, b.value
		a.grad += bv * out
		b.grad += av * out
	case OpNeg:
		g.nodes[n.deps[0]].grad -= out
	case OpPow:
		in := &g.nodes[n.deps[0]]
		k := n.aux
		in.grad += k * powDeriv(in.value, k) * out
	case OpReLU:
		in := &g.nodes[n.deps[0]]
		if in.value > 0 {
			in.grad += out
		}
	case OpTanh:
		g.nodes[n.deps[0]].grad += (1 - n.value*n.value) * out
	case OpExp:
		g.nodes[n.deps[0]].grad += n.value * out
	case OpLog:
		in := &g.nodes[n.deps[0]]
		in.grad += out / in.value
	case OpSigmoid:
		g.nodes[n.deps[0]].grad += n.value * (1 - n.value) * out
	default:
		panic("autodiff: backward: unknown operation " + n.op.String())
	}
}
