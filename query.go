package hifgo

import (
	"sort"
	"time"

	"github.com/hupe1980/hifgo/hyperedge"
	"github.com/hupe1980/hifgo/queue"
)

// TopK returns up to k nodes in breadth-first layer order: roots first,
// then their children in list order, layer by layer.
//
// This is O(k) but approximate: it matches true weight order only when the
// visited region forms a single dominance chain. Use TopKExact when the
// exact k heaviest nodes are required.
func (f *Forest) TopK(k int) []*Node {
	start := time.Now()

	if k <= 0 || len(f.roots) == 0 {
		return nil
	}

	results := make([]*Node, 0, k)
	frontier := make([]*Node, len(f.roots))
	copy(frontier, f.roots)

	for len(frontier) > 0 && len(results) < k {
		next := frontier[0]
		frontier = frontier[1:]

		results = append(results, next)
		frontier = append(frontier, next.children...)
	}

	f.metrics.RecordQuery(len(results), time.Since(start))
	f.logger.LogQuery("top_k", len(results))

	return results
}

// TopKExact returns the k heaviest nodes in descending weight order,
// using a bounded min-heap over a full walk. O(n log k).
func (f *Forest) TopKExact(k int) []*Node {
	start := time.Now()

	if k <= 0 || len(f.roots) == 0 {
		return nil
	}

	// Min-heap of the best k seen so far; the top is the weakest keeper.
	pq := queue.NewMin[*Node](k)
	for n := range f.All() {
		if pq.Len() < k {
			pq.Push(queue.Item[*Node]{Value: n, Weight: n.Weight()})
			continue
		}
		if top, ok := pq.Top(); ok && n.Weight() > top.Weight {
			pq.Pop()
			pq.Push(queue.Item[*Node]{Value: n, Weight: n.Weight()})
		}
	}

	results := make([]*Node, pq.Len())
	for i := len(results) - 1; i >= 0; i-- {
		item, _ := pq.Pop()
		results[i] = item.Value
	}

	f.metrics.RecordQuery(len(results), time.Since(start))
	f.logger.LogQuery("top_k_exact", len(results))

	return results
}

// walkPruned visits the forest in pre-order, calling visit on every node.
// When visit returns false the node's subtree is skipped (the walk itself
// continues with the node's siblings).
func (f *Forest) walkPruned(visit func(n *Node) bool) {
	stack := make([]*Node, 0, len(f.roots))
	for i := len(f.roots) - 1; i >= 0; i-- {
		stack = append(stack, f.roots[i])
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(n) {
			continue
		}

		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}

// CountAboveThreshold returns the number of nodes with weight >= threshold.
// Weight monotonicity lets the walk skip a whole subtree as soon as its
// root falls below the threshold.
func (f *Forest) CountAboveThreshold(threshold float64) int {
	start := time.Now()

	count := 0
	f.walkPruned(func(n *Node) bool {
		if n.Weight() < threshold {
			return false
		}
		count++
		return true
	})

	f.metrics.RecordQuery(count, time.Since(start))
	f.logger.LogQuery("count_above_threshold", count)

	return count
}

// AboveThreshold returns all nodes with weight >= threshold in pre-order,
// pruning subtrees below it.
func (f *Forest) AboveThreshold(threshold float64) []*Node {
	start := time.Now()

	var results []*Node
	f.walkPruned(func(n *Node) bool {
		if n.Weight() < threshold {
			return false
		}
		results = append(results, n)
		return true
	})

	f.metrics.RecordQuery(len(results), time.Since(start))
	f.logger.LogQuery("above_threshold", len(results))

	return results
}

// Clusters returns the nodes at or above the given weight, the candidates
// for weight-band grouping. Identical to AboveThreshold; kept as a named
// operation for callers thinking in terms of weight clusters.
func (f *Forest) Clusters(threshold float64) []*Node {
	return f.AboveThreshold(threshold)
}

// WeightRange returns all nodes whose weight lies within [min, max]
// inclusive, pruning subtrees that fall below min.
func (f *Forest) WeightRange(min, max float64) []*Node {
	start := time.Now()

	var results []*Node
	f.walkPruned(func(n *Node) bool {
		if n.Weight() < min {
			return false
		}
		if n.Weight() <= max {
			results = append(results, n)
		}
		return true
	})

	f.metrics.RecordQuery(len(results), time.Since(start))
	f.logger.LogQuery("weight_range", len(results))

	return results
}

// Supersets returns all nodes whose vertex set contains the query set, in
// pre-order. The walk descends only into matches: below a subset-guarded
// edge a child's set is contained in its parent's, so a non-matching node
// cannot have a matching descendant.
func (f *Forest) Supersets(vertices []uint32) []*Node {
	start := time.Now()

	query := hyperedge.NewVertexSet(vertices...)

	var results []*Node
	f.walkPruned(func(n *Node) bool {
		if !query.SubsetOf(n.Set()) {
			return false
		}
		results = append(results, n)
		return true
	})

	f.metrics.RecordQuery(len(results), time.Since(start))
	f.logger.LogQuery("supersets", len(results))

	return results
}

// Subsets returns all nodes whose vertex set is contained in the query set,
// in pre-order. Containment of this direction is not monotonic top-down, so
// the walk descends unconditionally.
func (f *Forest) Subsets(vertices []uint32) []*Node {
	start := time.Now()

	query := hyperedge.NewVertexSet(vertices...)

	var results []*Node
	for n := range f.All() {
		if n.Set().SubsetOf(query) {
			results = append(results, n)
		}
	}

	f.metrics.RecordQuery(len(results), time.Since(start))
	f.logger.LogQuery("subsets", len(results))

	return results
}

// MinimalSuperset returns the superset of the query set with the fewest
// vertices, or nil when no node contains the query set. Ties keep the
// first match in pre-order.
func (f *Forest) MinimalSuperset(vertices []uint32) *Node {
	query := hyperedge.NewVertexSet(vertices...)

	var best *Node
	f.walkPruned(func(n *Node) bool {
		if !query.SubsetOf(n.Set()) {
			return false
		}
		if best == nil || n.VertexCount() < best.VertexCount() {
			best = n
		}
		return true
	})

	return best
}

// HeaviestSuperset returns the superset of the query set with the largest
// weight, or nil when no node contains the query set. Ties keep the first
// match in pre-order.
func (f *Forest) HeaviestSuperset(vertices []uint32) *Node {
	query := hyperedge.NewVertexSet(vertices...)

	var best *Node
	f.walkPruned(func(n *Node) bool {
		if !query.SubsetOf(n.Set()) {
			return false
		}
		if best == nil || n.Weight() > best.Weight() {
			best = n
		}
		return true
	})

	return best
}

// Containing returns all nodes whose vertex set contains every vertex of
// the required set. Same walk as Supersets; kept as a named operation for
// the containment-search use case.
func (f *Forest) Containing(vertices []uint32) []*Node {
	return f.Supersets(vertices)
}

// KMostSimilar returns the k nodes with the highest overlap ratio against
// the query set, in descending overlap order. Ties keep pre-order
// collection order. This is a full-forest scan, O(n log n).
func (f *Forest) KMostSimilar(vertices []uint32, k int) []*Node {
	start := time.Now()

	if k <= 0 || len(f.roots) == 0 {
		return nil
	}

	query := hyperedge.NewVertexSet(vertices...)

	type scored struct {
		node    *Node
		overlap float64
	}

	var candidates []scored
	for n := range f.All() {
		candidates = append(candidates, scored{
			node:    n,
			overlap: hyperedge.Overlap(query, n.Set()),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].overlap > candidates[j].overlap
	})

	if k > len(candidates) {
		k = len(candidates)
	}

	results := make([]*Node, k)
	for i := range results {
		results[i] = candidates[i].node
	}

	f.metrics.RecordQuery(len(results), time.Since(start))
	f.logger.LogQuery("k_most_similar", len(results))

	return results
}
