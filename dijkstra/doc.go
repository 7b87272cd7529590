// SPDX-License-Identifier: MIT
// Package dijkstra finds minimum-weight routes between two vertices of a
// static directed graph with non-negative arc weights.
//
// Overview:
//
//   - ShortestPath runs a best-first search over partial routes. The frontier is
//     a min-heap of Routes keyed by total weight; the cheapest route is expanded
//     first and the search stops as soon as a route ending at the target is popped.
//   - Any core.WeightedDirectedGraph can be searched: the algorithm only ever asks
//     for the arcs leaving a vertex.
//   - "Not found" is a normal outcome reported through a boolean, never an error.
//     Unknown source, unknown target and unreachable target are not distinguished.
//
// Frontier policy:
//
//   - Routes are ordered by TotalWeight ascending with no secondary key; among
//     equally cheap routes any may be returned.
//   - There is no decrease-key. Several routes to the same vertex may sit in the
//     heap at once; once a vertex is finalized, later routes ending there are
//     discarded without expansion.
//   - Extending a route copies its arc slice, so each push costs O(route length).
//
// Hooks:
//
//	WithOnPush and WithOnPop observe the frontier without affecting the result.
//	They are handy for counting work or tracing a search:
//
//	    pops := 0
//	    r, ok := dijkstra.ShortestPath(g, 1, 4, dijkstra.WithOnPop(func(dijkstra.Route) { pops++ }))
//
// Concurrency:
//
//	ShortestPath keeps all of its state local to the call. Concurrent calls over
//	one shared, unmodified graph are safe.
package dijkstra
