package hifgo

import (
	"sort"
	"time"

	"github.com/hupe1980/hifgo/hyperedge"
)

// Edge is a plain (vertices, weight) pair used for batch and bulk loading.
type Edge struct {
	Vertices []uint32
	Weight   float64
}

// Forest is a dynamic forest of weighted hyperedges ordered by dominance.
// Heavier and more inclusive hyperedges sit near the roots; lighter or
// contained ones sit near the leaves.
//
// A Forest is not safe for concurrent use.
type Forest struct {
	roots []*Node
	size  int

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty forest.
func New(optFns ...Option) *Forest {
	opts := applyOptions(optFns)

	return &Forest{
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
}

// BuildBulk creates a forest from a batch of edges, sorted by descending
// weight before insertion. Inserting heaviest-first means no insertion ever
// captures an existing subtree, which produces the canonical shape directly
// and is faster than arbitrary-order insertion.
func BuildBulk(edges []Edge, optFns ...Option) *Forest {
	f := New(optFns...)

	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	for _, e := range sorted {
		f.Insert(e.Vertices, e.Weight)
	}

	return f
}

// Insert adds a hyperedge to the forest, placing it by dominance.
// Duplicate vertex sets are inserted as distinct nodes; use MergeDuplicates
// to coalesce them. Inserting an empty vertex set is a no-op.
func (f *Forest) Insert(vertices []uint32, weight float64) {
	start := time.Now()

	edge := hyperedge.New(vertices, weight)
	if edge.Set.IsEmpty() {
		return
	}

	newRoot := f.insert(edge)
	f.size++

	f.metrics.RecordInsert(time.Since(start))
	f.logger.LogInsert(edge.Set.Len(), edge.Weight, newRoot)
}

// InsertBatch adds a batch of edges in the given order.
// Empty vertex sets are skipped.
func (f *Forest) InsertBatch(edges []Edge) {
	skipped := 0
	for _, e := range edges {
		if len(e.Vertices) == 0 {
			skipped++
			continue
		}
		f.Insert(e.Vertices, e.Weight)
	}

	f.logger.LogBatchInsert(len(edges), skipped)
}

// Roots returns the forest's root nodes in insertion order.
// The returned slice aliases internal state; callers must not modify it.
func (f *Forest) Roots() []*Node {
	return f.roots
}

// RootCount returns the number of trees in the forest.
func (f *Forest) RootCount() int {
	return len(f.roots)
}

// Len returns the total number of nodes in the forest.
func (f *Forest) Len() int {
	return f.size
}

// IsEmpty reports whether the forest contains no nodes.
func (f *Forest) IsEmpty() bool {
	return f.size == 0
}

// MaxWeight returns the largest weight in the forest. Weight monotonicity
// means only roots need to be inspected. Returns 0 for an empty forest.
func (f *Forest) MaxWeight() float64 {
	if len(f.roots) == 0 {
		return 0
	}

	maxW := f.roots[0].Weight()
	for _, r := range f.roots[1:] {
		if w := r.Weight(); w > maxW {
			maxW = w
		}
	}

	return maxW
}

// MinWeight returns the smallest weight in the forest.
// Returns 0 for an empty forest.
func (f *Forest) MinWeight() float64 {
	first := true
	minW := 0.0

	for n := range f.All() {
		if first || n.Weight() < minW {
			minW = n.Weight()
			first = false
		}
	}

	return minW
}

// MaxDepth returns the depth of the deepest node, where a root has depth 1.
// Returns 0 for an empty forest.
func (f *Forest) MaxDepth() int {
	type frame struct {
		node  *Node
		depth int
	}

	maxDepth := 0
	stack := make([]frame, 0, len(f.roots))
	for _, r := range f.roots {
		stack = append(stack, frame{node: r, depth: 1})
	}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if fr.depth > maxDepth {
			maxDepth = fr.depth
		}

		for _, c := range fr.node.children {
			stack = append(stack, frame{node: c, depth: fr.depth + 1})
		}
	}

	return maxDepth
}
