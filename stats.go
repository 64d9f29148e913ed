package hifgo

import (
	"fmt"
	"io"

	"github.com/hupe1980/hifgo/hyperedge"
)

// Stats is a structural snapshot of the forest.
type Stats struct {
	NodeCount int
	RootCount int
	MaxDepth  int
	MaxFanout int
	MinWeight float64
	MaxWeight float64
	AvgWeight float64
}

// Stats computes structural statistics over the whole forest.
func (f *Forest) Stats() Stats {
	s := Stats{
		NodeCount: f.size,
		RootCount: len(f.roots),
		MaxDepth:  f.MaxDepth(),
	}

	first := true
	sum := 0.0
	for n := range f.All() {
		w := n.Weight()
		sum += w

		if first {
			s.MinWeight = w
			s.MaxWeight = w
			first = false
		} else {
			if w < s.MinWeight {
				s.MinWeight = w
			}
			if w > s.MaxWeight {
				s.MaxWeight = w
			}
		}

		if c := n.ChildCount(); c > s.MaxFanout {
			s.MaxFanout = c
		}
	}

	if f.size > 0 {
		s.AvgWeight = sum / float64(f.size)
	}

	return s
}

// Verify checks the forest's structural invariants and returns an error
// describing the first violation found, or nil.
//
// Checked: no empty vertex sets, child weight <= parent weight within
// tolerance, and node count consistency with Len.
func (f *Forest) Verify() error {
	counted := 0

	type frame struct {
		node   *Node
		parent *Node
	}

	stack := make([]frame, 0, len(f.roots))
	for i := len(f.roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: f.roots[i]})
	}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		counted++

		if fr.node.Set().IsEmpty() {
			return fmt.Errorf("node %s: empty vertex set", fr.node.Hyperedge())
		}

		if fr.parent != nil {
			if fr.node.Weight() > fr.parent.Weight()+hyperedge.WeightTolerance {
				return fmt.Errorf("weight monotonicity violated: child %s heavier than parent %s",
					fr.node.Hyperedge(), fr.parent.Hyperedge())
			}
		}

		for i := len(fr.node.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: fr.node.children[i], parent: fr.node})
		}
	}

	if counted != f.size {
		return fmt.Errorf("node count mismatch: counted %d, tracked %d", counted, f.size)
	}

	return nil
}

// Dump writes a human-readable tree rendering to w. This is a debugging
// aid; the output format is not a contract.
func (f *Forest) Dump(w io.Writer) error {
	type frame struct {
		node  *Node
		depth int
	}

	stack := make([]frame, 0, len(f.roots))
	for i := len(f.roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: f.roots[i]})
	}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for range fr.depth {
			if _, err := io.WriteString(w, "  "); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "%s\n", fr.node.Hyperedge()); err != nil {
			return err
		}

		for i := len(fr.node.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: fr.node.children[i], depth: fr.depth + 1})
		}
	}

	return nil
}
