// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap provides a binary min-heap over a slice of values.
// A heap is a tree with the property that each node is the
// minimum-valued node in its subtree.
//
// The minimum element in the tree is the root, at index 0.
//
// A heap is a common way to implement a priority queue. Equal
// elements are popped in no particular order; callers that need a
// reproducible order must make the less function total, for example
// by comparing an insertion sequence number when priorities tie.
package heap

// New returns a binary heap holding items, using less to compare.
// The heap takes ownership of the items slice.
func New[E any](items []E, less func(E, E) bool) *Heap[E] {
	h := &Heap[E]{
		items: items,
		less:  less,
	}
	h.init()
	return h
}

// Heap implements a binary heap.
// The zero value is not usable; use New.
type Heap[E any] struct {
	items []E
	less  func(E, E) bool
}

// Len returns the number of items in the heap.
func (h *Heap[E]) Len() int {
	return len(h.items)
}

// Push pushes the element x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Push(x E) {
	h.items = append(h.items, x)
	h.up(len(h.items) - 1)
}

// Pop removes and returns the minimum element (according to the less function) from the heap.
// The complexity is O(log n) where n = h.Len().
// Pop panics if the heap is empty.
func (h *Heap[E]) Pop() E {
	n := len(h.items) - 1
	h.swap(0, n)
	h.down(0, n)
	x := h.items[n]
	var zero E
	h.items[n] = zero
	h.items = h.items[0:n]
	return x
}

// Peek returns the minimum element without removing it.
// The second result is false if the heap is empty.
func (h *Heap[E]) Peek() (E, bool) {
	if len(h.items) == 0 {
		var zero E
		return zero, false
	}
	return h.items[0], true
}

// Reset removes all elements, keeping the allocated storage
// for reuse.
func (h *Heap[E]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
}

// init establishes the heap invariants.
// The complexity is O(n) where n = h.Len().
func (h *Heap[E]) init() {
	n := len(h.items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

func (h *Heap[E]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *Heap[E]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(h.items[j], h.items[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap[E]) down(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(h.items[j2], h.items[j1]) {
			j = j2 // = 2*i + 2  // right child
		}
		if !h.less(h.items[j], h.items[i]) {
			break
		}
		h.swap(i, j)
		i = j
	}
}
