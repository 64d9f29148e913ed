// Package hifgo provides a hyperedge inclusion forest: a dynamic forest of
// weighted vertex sets in which heavier and more inclusive hyperedges sit
// near the roots and lighter or contained ones sit near the leaves.
//
// The forest maintains a weight-monotonicity invariant (a child is never
// heavier than its parent, within tolerance) and a structural-justification
// invariant (a node sits below another only if it lost the dominance
// comparison and, below the top of a dominance chain, its vertex set is
// contained in the ancestor's). Queries exploit this structure to prune:
// top-k, weight thresholds and ranges, superset/subset containment,
// similarity ranking, and weight clusters.
//
// # Quick Start
//
//	f := hifgo.New()
//	f.Insert([]uint32{1, 2, 3}, 1.0)
//	f.Insert([]uint32{1, 2}, 0.5)
//
//	top := f.TopK(10)
//	heavy := f.AboveThreshold(0.8)
//
// Bulk loading sorts by weight first, which produces the canonical shape
// directly:
//
//	f := hifgo.BuildBulk(edges)
//
// # Maintenance
//
// Insertion never merges duplicate vertex sets; deduplication, pruning and
// rebalancing are explicit passes:
//
//	merged := f.MergeDuplicates(hifgo.MergeKeepMax)
//	removed := f.PruneBelow(0.1)
//	f.Optimize()
//
// # Snapshots
//
// A forest serializes to a deterministic pre-order binary format, to plain
// files or through a blobstore.Store (memory, local disk, S3-compatible):
//
//	_ = f.Save("forest.bin")
//	f2, _ := hifgo.Load("forest.bin")
//
// # Concurrency
//
// A Forest is not safe for concurrent use. All operations run to completion
// on the calling goroutine; callers needing shared access must synchronize
// externally.
package hifgo
