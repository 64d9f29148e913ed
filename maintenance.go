package hifgo

import (
	"sort"
	"time"

	"github.com/hupe1980/hifgo/hyperedge"
)

// MergePolicy selects how duplicate weights are combined.
type MergePolicy int

const (
	// MergeKeepMax keeps the maximum weight across the duplicate group.
	MergeKeepMax MergePolicy = iota
	// MergeMean combines the group by arithmetic mean.
	MergeMean
)

// String returns a human-readable policy name.
func (p MergePolicy) String() string {
	switch p {
	case MergeKeepMax:
		return "keep-max"
	case MergeMean:
		return "mean"
	default:
		return "unknown"
	}
}

// Rebalance flattens the forest, sorts every hyperedge by weight
// descending, and reinserts each as a fresh node. This is a
// canonicalization pass: the resulting shape depends only on the sorted
// order and the comparator, not on the previous tree shape.
func (f *Forest) Rebalance() {
	start := time.Now()

	edges := make([]hyperedge.Hyperedge, 0, f.size)
	for n := range f.All() {
		edges = append(edges, n.edge)
	}

	f.rebuild(edges)

	f.metrics.RecordMaintenance(len(edges), time.Since(start))
	f.logger.LogMaintenance("rebalance", len(edges))
}

// MergeDuplicates coalesces nodes with identical canonical vertex sets.
// The pre-order-first node of each group survives with the combined weight
// per policy; the rest are removed. Returns the number of nodes removed.
// A rebalance runs whenever anything merged, since weight changes can
// invalidate monotonicity built under the old weights.
func (f *Forest) MergeDuplicates(policy MergePolicy) int {
	start := time.Now()

	type group struct {
		weightSum float64
		weightMax float64
		count     int
	}

	nodes := f.collectAll()

	groups := make(map[string]*group, len(nodes))
	for _, n := range nodes {
		key := n.Set().String()
		g, ok := groups[key]
		if !ok {
			groups[key] = &group{
				weightSum: n.Weight(),
				weightMax: n.Weight(),
				count:     1,
			}
			continue
		}

		g.weightSum += n.Weight()
		if w := n.Weight(); w > g.weightMax {
			g.weightMax = w
		}
		g.count++
	}

	merged := 0
	edges := make([]hyperedge.Hyperedge, 0, len(groups))
	seen := make(map[string]bool, len(groups))
	for _, n := range nodes {
		key := n.Set().String()
		if seen[key] {
			merged++
			continue
		}
		seen[key] = true

		g := groups[key]
		weight := n.Weight()
		if g.count > 1 {
			switch policy {
			case MergeMean:
				weight = g.weightSum / float64(g.count)
			default:
				weight = g.weightMax
			}
		}

		edges = append(edges, hyperedge.Hyperedge{Set: n.Set(), Weight: weight})
	}

	if merged > 0 {
		f.rebuild(edges)
	}

	f.metrics.RecordMaintenance(merged, time.Since(start))
	f.logger.LogMaintenance("merge_duplicates", merged)

	return merged
}

// PruneBelow removes every subtree whose root's weight is below the
// threshold. Monotonicity means a pruned node's descendants are below the
// threshold too, so subtrees are discarded whole. Returns the number of
// detached subtrees, not the number of nodes removed; Len reflects the
// node-level change.
func (f *Forest) PruneBelow(threshold float64) int {
	start := time.Now()

	pruned := 0

	i := 0
	for i < len(f.roots) {
		if f.roots[i].Weight() < threshold {
			f.size -= subtreeSize(f.roots[i])
			f.roots = append(f.roots[:i], f.roots[i+1:]...)
			pruned++
			continue
		}
		i++
	}

	stack := make([]*Node, 0, len(f.roots))
	stack = append(stack, f.roots...)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		j := 0
		for j < len(n.children) {
			child := n.children[j]
			if child.Weight() < threshold {
				f.size -= subtreeSize(child)
				n.removeChildAt(j)
				pruned++
				continue
			}
			stack = append(stack, child)
			j++
		}
	}

	f.metrics.RecordMaintenance(pruned, time.Since(start))
	f.logger.LogMaintenance("prune_below", pruned)

	return pruned
}

// Optimize runs MergeDuplicates with the keep-max policy followed by a
// rebalance.
func (f *Forest) Optimize() {
	f.MergeDuplicates(MergeKeepMax)
	f.Rebalance()
}

// rebuild resets the forest and reinserts the given edges heaviest-first.
func (f *Forest) rebuild(edges []hyperedge.Hyperedge) {
	sorted := make([]hyperedge.Hyperedge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	f.roots = nil
	f.size = 0

	for _, e := range sorted {
		f.insert(e)
		f.size++
	}
}

func subtreeSize(n *Node) int {
	size := 0
	stack := []*Node{n}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		size++
		stack = append(stack, cur.children...)
	}

	return size
}
