// SPDX-License-Identifier: MIT
// Package core provides the graph side of routefinder: vertex labels,
// weighted arcs and a static adjacency-list graph.
//
// A graph G = (V, E) is assembled exactly once from a flat list of edge
// records and is read-only afterwards:
//
//	g := core.FromEdges([]core.EdgeRecord{
//	    {Src: 1, Dst: 2, W: 1},
//	    {Src: 2, Dst: 3, W: 1},
//	})
//	edges, ok := g.Outgoing(1) // [{2 1}], true
//
// Key contracts:
//
//   - Vertices appear in the graph only as sources of arcs. A vertex that is
//     only ever a destination reports no outgoing arcs, exactly like a vertex
//     the graph has never heard of.
//   - Parallel arcs are preserved. Two records 1→2(5) and 1→2(3) yield two
//     entries in Outgoing(1).
//   - Absence is a value, not an error: Outgoing and OutgoingUnvisited never
//     fail.
//
// Searches depend only on the WeightedDirectedGraph interface, so any type
// answering Outgoing (a plain function via OutgoingFunc, a mock, an
// external store) gets shortest-path search from package dijkstra for free.
//
// Concurrency:
//
//	FromEdges is single-threaded. Once it returns, the *AdjacencyList may be
//	published to and read by any number of goroutines without synchronization.
//	VisitedSet is per-search scratch state and is never shared.
package core
