// SPDX-License-Identifier: MIT
// Package routefinder answers least-cost path queries over static,
// weighted, directed graphs.
//
// The module is organized as:
//
//	core/         — Label, Weight, Edge, the WeightedDirectedGraph interface and the immutable AdjacencyList
//	dijkstra/     — Route, the min-heap frontier and ShortestPath
//	journey/      — JSON/YAML graph and journey codecs, concurrent batch Solver
//	cmd/journeys/ — command-line entry point
//	examples/     — runnable sample programs
//
// Quick example:
//
//	g := core.FromEdges([]core.EdgeRecord{{Src: 1, Dst: 2, W: 1}, {Src: 2, Dst: 3, W: 1}})
//	r, ok := dijkstra.ShortestPath(g, 1, 3) // r.Path() == [1 2 3], ok == true
package routefinder
