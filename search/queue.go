package search

import (
	"container/heap"

	"github.com/katalvlaran/gridwalk/grid"
)

// PriorityQueue is a min-heap of cells keyed by a float priority.
// Equal priorities pop in insertion order, which keeps runs deterministic
// and reproduces the neighbor-order tie-break of a stable sort.
//
// Decrease-key is lazy: pushing a cell again with a better priority leaves
// the stale entry in the heap, and callers skip it on pop by checking
// whether the cell is already Visited. The same cell may therefore appear
// in the frontier more than once.
//
// Complexity: Push and Pop are O(log n).
type PriorityQueue struct {
	items itemHeap
	seq   uint64
}

// NewPriorityQueue returns an empty queue with room for capacity items.
func NewPriorityQueue(capacity int) *PriorityQueue {
	return &PriorityQueue{items: make(itemHeap, 0, capacity)}
}

// Len returns the number of entries, stale ones included.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Push inserts c with priority p.
func (pq *PriorityQueue) Push(c *grid.Cell, p float64) {
	heap.Push(&pq.items, item{cell: c, priority: p, seq: pq.seq})
	pq.seq++
}

// Pop removes and returns the entry with the lowest (priority, sequence).
func (pq *PriorityQueue) Pop() (*grid.Cell, float64) {
	it := heap.Pop(&pq.items).(item)
	return it.cell, it.priority
}

// item is one heap entry.
type item struct {
	cell     *grid.Cell
	priority float64
	seq      uint64
}

// itemHeap implements heap.Interface ordered by (priority, seq).
type itemHeap []item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(item)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
