// SPDX-License-Identifier: MIT
package dijkstra

import "container/heap"

// frontier is a min-heap of Routes ordered by TotalWeight ascending.
// Equal weights have no secondary ordering; whichever the heap yields
// first wins. Several stale Routes to the same vertex may coexist
// (lazy decrease-key); the visited check at expansion discards them.
type frontier []Route

// Len returns the number of routes in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders cheaper routes first. container/heap is a min-heap on
// Less, so no comparison inversion is needed here.
func (f frontier) Less(i, j int) bool { return f[i].weight < f[j].weight }

// Swap swaps two routes in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push only.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(Route)) }

// Pop removes the last element; called by heap.Pop only.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	r := old[n-1]
	old[n-1] = Route{} // drop the edge slice reference
	*f = old[:n-1]

	return r
}

// push adds r keeping the heap invariant.
func (f *frontier) push(r Route) { heap.Push(f, r) }

// pop removes and returns the cheapest route. ok is false when the
// frontier is empty.
func (f *frontier) pop() (Route, bool) {
	if f.Len() == 0 {
		return Route{}, false
	}

	return heap.Pop(f).(Route), true
}
