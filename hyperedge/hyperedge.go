// Package hyperedge defines the weighted vertex-set value type and the
// dominance rules that order hyperedges inside the forest.
package hyperedge

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// VertexSet is a canonical set of vertex identifiers: sorted ascending,
// no duplicates. It wraps a roaring bitmap, so normalization of arbitrary
// input (unsorted, with duplicates) is inherent to construction.
type VertexSet struct {
	rb *roaring.Bitmap
}

// NewVertexSet creates a canonical vertex set from an arbitrary vertex list.
// The input may be empty, unsorted, and contain duplicates.
func NewVertexSet(vertices ...uint32) *VertexSet {
	rb := roaring.New()
	rb.AddMany(vertices)
	return &VertexSet{rb: rb}
}

// Len returns the number of vertices in the set.
func (s *VertexSet) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty returns true if the set contains no vertices.
func (s *VertexSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Contains reports whether v is a member of the set.
func (s *VertexSet) Contains(v uint32) bool {
	return s.rb.Contains(v)
}

// SubsetOf reports whether every vertex of s is also in other.
// An empty set is a subset of everything.
func (s *VertexSet) SubsetOf(other *VertexSet) bool {
	return s.rb.AndCardinality(other.rb) == s.rb.GetCardinality()
}

// IntersectionCount returns the number of vertices shared with other.
func (s *VertexSet) IntersectionCount(other *VertexSet) int {
	return int(s.rb.AndCardinality(other.rb))
}

// Equal reports whether both sets contain exactly the same vertices.
func (s *VertexSet) Equal(other *VertexSet) bool {
	return s.rb.Equals(other.rb)
}

// Clone returns a deep copy of the set.
func (s *VertexSet) Clone() *VertexSet {
	return &VertexSet{rb: s.rb.Clone()}
}

// Vertices returns the members in ascending order.
func (s *VertexSet) Vertices() []uint32 {
	return s.rb.ToArray()
}

// String renders the set as "{v1,v2,...}".
func (s *VertexSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	it := s.rb.Iterator()
	first := true
	for it.HasNext() {
		if !first {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", it.Next())
		first = false
	}
	b.WriteByte('}')
	return b.String()
}

// Hyperedge is a weighted canonical vertex set. It is the value carried by
// every node in the forest. Two hyperedges with equal vertex sets are
// duplicates regardless of weight.
type Hyperedge struct {
	Set    *VertexSet
	Weight float64
}

// New creates a hyperedge with a normalized vertex set.
func New(vertices []uint32, weight float64) Hyperedge {
	return Hyperedge{
		Set:    NewVertexSet(vertices...),
		Weight: weight,
	}
}

// String renders the hyperedge as "w=<weight> {v1,v2,...}".
func (h Hyperedge) String() string {
	return fmt.Sprintf("w=%.2f %s", h.Weight, h.Set)
}
