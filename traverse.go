package hifgo

import (
	"iter"
	"sort"
)

// Visitor is the traversal callback. Return false to stop the traversal;
// no further nodes are visited after a stop.
type Visitor func(n *Node) bool

// TraverseBFS visits every node in breadth-first layer order: the root
// list first, then each layer's children in list order.
func (f *Forest) TraverseBFS(visit Visitor) {
	frontier := make([]*Node, len(f.roots))
	copy(frontier, f.roots)

	for len(frontier) > 0 {
		n := frontier[0]
		frontier = frontier[1:]

		if !visit(n) {
			return
		}

		frontier = append(frontier, n.children...)
	}
}

// TraverseDFS visits every node in pre-order: each root's subtree fully
// before the next root.
func (f *Forest) TraverseDFS(visit Visitor) {
	stack := make([]*Node, 0, len(f.roots))
	for i := len(f.roots) - 1; i >= 0; i-- {
		stack = append(stack, f.roots[i])
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(n) {
			return
		}

		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}

// TraverseByWeight snapshots every node, sorts the snapshot by weight
// descending, and visits it in that fixed order. This is not a live
// structural traversal; mutations during the visit do not affect the
// order.
func (f *Forest) TraverseByWeight(visit Visitor) {
	nodes := f.collectAll()

	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Weight() > nodes[j].Weight()
	})

	for _, n := range nodes {
		if !visit(n) {
			return
		}
	}
}

// All returns an iterator over every node in pre-order.
func (f *Forest) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := make([]*Node, 0, len(f.roots))
		for i := len(f.roots) - 1; i >= 0; i-- {
			stack = append(stack, f.roots[i])
		}

		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n) {
				return
			}

			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, n.children[i])
			}
		}
	}
}

// collectAll returns every node in pre-order as a flat slice.
func (f *Forest) collectAll() []*Node {
	nodes := make([]*Node, 0, f.size)
	for n := range f.All() {
		nodes = append(nodes, n)
	}

	return nodes
}
