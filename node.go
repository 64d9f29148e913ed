package hifgo

import "github.com/hupe1980/hifgo/hyperedge"

// Node is a tree element owning one hyperedge and an ordered list of child
// nodes. Children appear in insertion order, not weight order. A node's
// subtree is exclusively owned by it; nodes are never shared between
// parents.
type Node struct {
	edge     hyperedge.Hyperedge
	children []*Node
}

func newNode(edge hyperedge.Hyperedge) *Node {
	return &Node{edge: edge}
}

// Hyperedge returns the hyperedge carried by the node.
func (n *Node) Hyperedge() hyperedge.Hyperedge {
	return n.edge
}

// Weight returns the node's weight.
func (n *Node) Weight() float64 {
	return n.edge.Weight
}

// Set returns the node's canonical vertex set.
// Callers must treat the returned set as read-only.
func (n *Node) Set() *hyperedge.VertexSet {
	return n.edge.Set
}

// Vertices returns the node's vertices in ascending order.
func (n *Node) Vertices() []uint32 {
	return n.edge.Set.Vertices()
}

// VertexCount returns the number of vertices in the node's set.
func (n *Node) VertexCount() int {
	return n.edge.Set.Len()
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Children returns the node's direct children in insertion order.
// The returned slice aliases internal state; callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) addChild(c *Node) {
	n.children = append(n.children, c)
}

func (n *Node) removeChildAt(i int) {
	n.children = append(n.children[:i], n.children[i+1:]...)
}
