// SPDX-License-Identifier: MIT
// Package dijkstra_test provides runnable examples for ShortestPath.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/routefinder/core"
	"github.com/katalvlaran/routefinder/dijkstra"
)

// ExampleShortestPath finds a detour that is cheaper than the direct arc.
func ExampleShortestPath() {
	//	1 ──4──► 4
	//	│        ▲
	//	1        1
	//	▼        │
	//	2 ──1──► 3
	g := core.FromEdges([]core.EdgeRecord{
		{Src: 1, Dst: 2, W: 1},
		{Src: 2, Dst: 3, W: 1},
		{Src: 3, Dst: 4, W: 1},
		{Src: 1, Dst: 4, W: 4},
	})

	r, ok := dijkstra.ShortestPath(g, 1, 4)
	fmt.Println(ok, r.Path(), r.TotalWeight())

	_, ok = dijkstra.ShortestPath(g, 4, 1)
	fmt.Println(ok)

	// Output:
	// true [1 2 3 4] 3
	// false
}

// ExampleShortestPath_outgoingFunc searches an implicit graph described by
// a function: every vertex n has arcs to n+1 (cost 1) and 2n (cost 1).
func ExampleShortestPath_outgoingFunc() {
	g := core.OutgoingFunc(func(n core.Label) ([]core.Edge, bool) {
		if n == 0 || n > 64 {
			return nil, false
		}
		return []core.Edge{{To: n + 1, Weight: 1}, {To: 2 * n, Weight: 1}}, true
	})

	r, ok := dijkstra.ShortestPath(g, 1, 10)
	fmt.Println(ok, r.TotalWeight())

	// Output:
	// true 4
}

// ExampleWithOnPop counts how many routes were taken off the frontier.
func ExampleWithOnPop() {
	g := core.FromEdges([]core.EdgeRecord{
		{Src: 1, Dst: 2, W: 2},
		{Src: 1, Dst: 3, W: 1},
		{Src: 3, Dst: 2, W: 2},
	})

	pops := 0
	r, _ := dijkstra.ShortestPath(g, 1, 2, dijkstra.WithOnPop(func(dijkstra.Route) { pops++ }))
	fmt.Println(r, pops)

	// Output:
	// 1→2 (w=2) 2
}
