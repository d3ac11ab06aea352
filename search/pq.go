package search

import "github.com/katalvlaran/pathrace/grid"

// frontierItem is one queued entry: a cell, its priority key, and the
// insertion sequence number used as the deterministic tie-break.
type frontierItem struct {
	cell     grid.Cell
	priority float64
	seq      uint64
}

// frontierHeap is a min-heap of frontier entries ordered by priority,
// then by insertion order. We use the lazy-decrease-key pattern: a
// relaxation pushes a fresh entry and the stale one is discarded when
// popped, via the caller's explored check.
type frontierHeap []*frontierItem

// Len returns the number of queued entries.
func (h frontierHeap) Len() int { return len(h) }

// Less orders by priority ascending; equal priorities fall back to
// insertion order, which makes popping fully deterministic.
func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a new entry; called through container/heap.
func (h *frontierHeap) Push(x any) { *h = append(*h, x.(*frontierItem)) }

// Pop removes and returns the last entry; called through container/heap.
func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// cells snapshots the queued cells in the heap's internal order.
func (h frontierHeap) cells() []grid.Cell {
	out := make([]grid.Cell, len(h))
	for i, it := range h {
		out[i] = it.cell
	}

	return out
}
