// Package queue provides a value-based priority queue ordered by weight.
// It is used by the exact top-k query to keep the k heaviest nodes while
// scanning the forest.
package queue

// Item pairs an arbitrary value with its weight priority.
type Item[T any] struct {
	Value  T
	Weight float64
}

// PriorityQueue is a binary heap of Items.
// Value-based storage avoids pointer indirection and per-push allocations.
type PriorityQueue[T any] struct {
	isMaxHeap bool
	items     []Item[T]
}

// NewMin creates a min-heap (lightest item on top).
func NewMin[T any](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{items: make([]Item[T], 0, max(capacity, 0))}
}

// NewMax creates a max-heap (heaviest item on top).
func NewMax[T any](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{isMaxHeap: true, items: make([]Item[T], 0, max(capacity, 0))}
}

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int {
	return len(pq.items)
}

// Top returns the top element without removing it.
func (pq *PriorityQueue[T]) Top() (Item[T], bool) {
	if len(pq.items) == 0 {
		return Item[T]{}, false
	}
	return pq.items[0], true
}

// Push inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue[T]) Push(item Item[T]) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// Pop removes and returns the top element while maintaining the heap invariant.
func (pq *PriorityQueue[T]) Pop() (Item[T], bool) {
	n := len(pq.items)
	if n == 0 {
		return Item[T]{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = Item[T]{}
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

func (pq *PriorityQueue[T]) less(i, j int) bool {
	if pq.isMaxHeap {
		return pq.items[i].Weight > pq.items[j].Weight
	}
	return pq.items[i].Weight < pq.items[j].Weight
}

func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue[T]) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
