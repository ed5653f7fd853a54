// SPDX-License-Identifier: MIT
// Package similarity: bounded per-row top-k selection.

package similarity

import "container/heap"

// collector gathers the surviving matches of one source row.
// With k == 0 it keeps everything; with k > 0 it keeps the best k in a
// bounded min-heap whose root is the worst retained match.
type collector struct {
	k int
	h matchHeap
}

// reset prepares the collector for a new row, keeping its buffer.
func (c *collector) reset(k int) {
	c.k = k
	c.h = c.h[:0]
}

// push offers m to the collector.
// Complexity: O(1) unbounded, O(log k) bounded.
func (c *collector) push(m Match) {
	if c.k == 0 {
		c.h = append(c.h, m)
		return
	}
	if len(c.h) < c.k {
		heap.Push(&c.h, m)
		return
	}
	// Replace the root only if m beats the worst retained match.
	if compareMatches(m, c.h[0]) < 0 {
		c.h[0] = m
		heap.Fix(&c.h, 0)
	}
}

// drain returns a freshly allocated, best-first sorted copy of the retained
// matches, or nil when there are none.
func (c *collector) drain() []Match {
	if len(c.h) == 0 {
		return nil
	}
	out := make([]Match, len(c.h))
	copy(out, c.h)
	sortMatches(out)

	return out
}

// matchHeap is a min-heap ordered worst-first (lowest score, then highest index).
type matchHeap []Match

func (h matchHeap) Len() int           { return len(h) }
func (h matchHeap) Less(i, j int) bool { return compareMatches(h[i], h[j]) > 0 }
func (h matchHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *matchHeap) Push(x any) { *h = append(*h, x.(Match)) }

func (h *matchHeap) Pop() any {
	old := *h
	n := len(old)
	m := old[n-1]
	*h = old[:n-1]

	return m
}
