package hifgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// traversalForest:
//
//	{1,2,3} w3        {7,8} w2
//	  {1,2} w2.5
//	    {1} w1
func traversalForest() *Forest {
	f := New()
	f.Insert([]uint32{1, 2, 3}, 3)
	f.Insert([]uint32{1, 2}, 2.5)
	f.Insert([]uint32{1}, 1)
	f.Insert([]uint32{7, 8}, 2)
	return f
}

func weightsVisited(traverse func(Visitor)) []float64 {
	var weights []float64
	traverse(func(n *Node) bool {
		weights = append(weights, n.Weight())
		return true
	})
	return weights
}

func TestTraverseBFS(t *testing.T) {
	f := traversalForest()

	assert.Equal(t, []float64{3, 2, 2.5, 1}, weightsVisited(f.TraverseBFS))
}

func TestTraverseDFS(t *testing.T) {
	f := traversalForest()

	assert.Equal(t, []float64{3, 2.5, 1, 2}, weightsVisited(f.TraverseDFS))
}

func TestTraverseByWeight(t *testing.T) {
	f := traversalForest()

	assert.Equal(t, []float64{3, 2.5, 2, 1}, weightsVisited(f.TraverseByWeight))
}

func TestTraversalEarlyStop(t *testing.T) {
	f := traversalForest()

	for name, traverse := range map[string]func(Visitor){
		"BFS":      f.TraverseBFS,
		"DFS":      f.TraverseDFS,
		"ByWeight": f.TraverseByWeight,
	} {
		t.Run(name, func(t *testing.T) {
			visited := 0
			traverse(func(n *Node) bool {
				visited++
				return visited < 2
			})

			assert.Equal(t, 2, visited)
		})
	}
}

func TestAll(t *testing.T) {
	f := traversalForest()

	var weights []float64
	for n := range f.All() {
		weights = append(weights, n.Weight())
	}

	// Pre-order, same as DFS.
	assert.Equal(t, []float64{3, 2.5, 1, 2}, weights)

	t.Run("EarlyBreak", func(t *testing.T) {
		count := 0
		for range f.All() {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})

	t.Run("Empty", func(t *testing.T) {
		count := 0
		for range New().All() {
			count++
		}
		assert.Equal(t, 0, count)
	})
}

func TestVerifyDetectsViolation(t *testing.T) {
	f := New()
	f.Insert([]uint32{1, 2}, 1.0)
	f.Insert([]uint32{1}, 0.5)

	require.NoError(t, f.Verify())

	// Corrupt the child's weight directly.
	f.Roots()[0].Children()[0].edge.Weight = 99

	assert.Error(t, f.Verify())
}
