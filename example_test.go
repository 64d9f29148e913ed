package hifgo_test

import (
	"fmt"

	"github.com/hupe1980/hifgo"
)

func Example() {
	f := hifgo.New()

	f.Insert([]uint32{1, 2, 3}, 1.0)
	f.Insert([]uint32{1, 2}, 0.5)
	f.Insert([]uint32{7, 8}, 0.8)

	for _, n := range f.TopKExact(3) {
		fmt.Println(n.Hyperedge())
	}

	// Output:
	// w=1.00 {1,2,3}
	// w=0.80 {7,8}
	// w=0.50 {1,2}
}

func ExampleForest_AboveThreshold() {
	f := hifgo.BuildBulk([]hifgo.Edge{
		{Vertices: []uint32{1, 2, 3, 4}, Weight: 2.0},
		{Vertices: []uint32{1, 2}, Weight: 1.0},
		{Vertices: []uint32{1}, Weight: 0.1},
	})

	for _, n := range f.AboveThreshold(0.5) {
		fmt.Println(n.Hyperedge())
	}

	// Output:
	// w=2.00 {1,2,3,4}
	// w=1.00 {1,2}
}

func ExampleForest_MergeDuplicates() {
	f := hifgo.New()
	f.Insert([]uint32{1, 2}, 0.4)
	f.Insert([]uint32{1, 2}, 0.9)

	merged := f.MergeDuplicates(hifgo.MergeKeepMax)
	fmt.Println(merged, f.Roots()[0].Hyperedge())

	// Output:
	// 1 w=0.90 {1,2}
}
