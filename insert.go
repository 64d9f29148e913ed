package hifgo

import "github.com/hupe1980/hifgo/hyperedge"

// insert places a new hyperedge into the forest and reports whether it
// ended up as a root.
//
// The scan over the roots does two things in one pass: any root the new
// edge dominates is captured as a child of the new node (its whole subtree
// moves with it), and the first root that dominates the new edge and
// contains its vertex set absorbs it. A new node that is neither captured
// nor absorbed becomes a root itself, carrying whatever it captured.
func (f *Forest) insert(edge hyperedge.Hyperedge) bool {
	n := newNode(edge)

	i := 0
	for i < len(f.roots) {
		root := f.roots[i]

		switch hyperedge.Compare(edge, root.edge) {
		case hyperedge.Dominates:
			// Capture the root and its subtree under the new node.
			// Do not advance: the next root shifted into slot i.
			f.roots = append(f.roots[:i], f.roots[i+1:]...)
			n.addChild(root)
		case hyperedge.Dominated:
			if f.place(root, n) {
				return false
			}
			i++
		default:
			i++
		}
	}

	f.roots = append(f.roots, n)

	return true
}

// place descends from root looking for the deepest node that dominates n
// and contains its vertex set, then attaches n there. Along the way any
// sibling that n dominates is stolen and reparented under n. Reports
// whether n was attached; false means n's vertex set is not contained in
// root's and the caller should keep scanning.
//
// The descent is a cursor loop rather than recursion so that adversarial
// chain-shaped forests cannot overflow the stack.
func (f *Forest) place(root, n *Node) bool {
	if !n.edge.Set.SubsetOf(root.edge.Set) {
		return false
	}

	cursor := root

scan:
	for {
		i := 0
		for i < len(cursor.children) {
			child := cursor.children[i]

			switch hyperedge.Compare(n.edge, child.edge) {
			case hyperedge.Dominated:
				if n.edge.Set.SubsetOf(child.edge.Set) {
					cursor = child
					continue scan
				}
				i++
			case hyperedge.Dominates:
				// Steal the dominated child; it keeps its subtree.
				cursor.removeChildAt(i)
				n.addChild(child)
			default:
				i++
			}
		}

		cursor.addChild(n)

		return true
	}
}
