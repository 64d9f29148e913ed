package hyperedge

import "math"

// WeightTolerance is the absolute tolerance below which two weights are
// treated as equal by Compare. It matches the invariant tolerance used by
// the forest (child weight may exceed parent weight by at most this much).
const WeightTolerance = 1e-9

// similarityTolerance is the relative tolerance used by WeightsSimilar,
// expressed as a fraction of the average magnitude of the two weights.
const similarityTolerance = 0.15

// Relation is the outcome of a dominance comparison between two hyperedges.
type Relation int

const (
	// Incomparable means neither hyperedge may be the ancestor of the other.
	// Incomparable pairs become siblings or separate roots.
	Incomparable Relation = iota
	// Dominates means the first hyperedge is eligible to be the ancestor.
	Dominates
	// Dominated means the second hyperedge is eligible to be the ancestor.
	Dominated
)

func (r Relation) String() string {
	switch r {
	case Dominates:
		return "dominates"
	case Dominated:
		return "dominated"
	default:
		return "incomparable"
	}
}

// Compare decides which of a and b is eligible to be the structural ancestor
// of the other, in strict order:
//
//  1. The heavier hyperedge (by more than WeightTolerance) dominates.
//  2. At effectively equal weight, a strict superset dominates its subset.
//  3. Still unresolved, the larger vertex set dominates.
//  4. Exact ties on weight and cardinality are Incomparable.
//
// Compare establishes eligibility only; attachment below a subtree root
// additionally requires subset containment (the subset guard applied by the
// insertion engine).
func Compare(a, b Hyperedge) Relation {
	if a.Weight > b.Weight+WeightTolerance {
		return Dominates
	}
	if b.Weight > a.Weight+WeightTolerance {
		return Dominated
	}

	aInB := a.Set.SubsetOf(b.Set)
	bInA := b.Set.SubsetOf(a.Set)
	if bInA && !aInB {
		return Dominates
	}
	if aInB && !bInA {
		return Dominated
	}

	if a.Set.Len() > b.Set.Len() {
		return Dominates
	}
	if b.Set.Len() > a.Set.Len() {
		return Dominated
	}

	return Incomparable
}

// Overlap returns the overlap coefficient between two vertex sets:
// |intersection| / min(|a|, |b|). It is 0 when either set is empty.
func Overlap(a, b *VertexSet) float64 {
	minSize := a.Len()
	if b.Len() < minSize {
		minSize = b.Len()
	}
	if minSize == 0 {
		return 0
	}
	return float64(a.IntersectionCount(b)) / float64(minSize)
}

// WeightsSimilar reports whether the relative difference between two weights
// is below a fixed fraction of their average magnitude. Two near-zero
// weights are always similar.
//
// The insertion engine does not consult this predicate; it is exported for
// callers building their own overlap-clustering heuristics on top of
// similarity queries.
func WeightsSimilar(w1, w2 float64) bool {
	if math.Abs(w1) < WeightTolerance && math.Abs(w2) < WeightTolerance {
		return true
	}
	diff := math.Abs(w1 - w2)
	avg := (math.Abs(w1) + math.Abs(w2)) / 2
	return diff < avg*similarityTolerance
}
