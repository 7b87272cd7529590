// SPDX-License-Identifier: MIT
// File: adjacency_list.go
// Role: immutable adjacency-list graph (FromEdges, Outgoing) and read-only accessors.
// Concurrency:
//   - Construction is single-threaded; once FromEdges returns, every method is a pure read
//     and an *AdjacencyList may be shared across goroutines without locking.

package core

import "sort"

// AdjacencyList is a static weighted directed graph stored as
// vertex → outgoing arcs. Only vertices with at least one outgoing
// arc are keys; a destination-only vertex is indistinguishable from
// an unknown one.
//
// Parallel arcs between the same ordered pair are kept as separate
// entries, never merged or summed.
type AdjacencyList struct {
	vertices map[Label][]Edge
	edges    int
}

// FromEdges builds an AdjacencyList from an ordered sequence of edge
// records. Each record appends (To, Weight) to the arc list of From,
// creating the list on first use.
//
// Complexity: O(E) time and space.
func FromEdges[S EdgeSource](records []S) *AdjacencyList {
	vertices := make(map[Label][]Edge)
	for _, r := range records {
		from := r.From()
		vertices[from] = append(vertices[from], Edge{To: r.To(), Weight: r.Weight()})
	}

	return &AdjacencyList{vertices: vertices, edges: len(records)}
}

// Outgoing implements WeightedDirectedGraph. It returns false when
// label never appears as a source. The slice is shared with the graph
// and must not be modified.
//
// Complexity: O(1)
func (g *AdjacencyList) Outgoing(label Label) ([]Edge, bool) {
	if g == nil {
		return nil, false
	}
	edges, ok := g.vertices[label]

	return edges, ok
}

// Len returns the number of vertices with at least one outgoing arc.
func (g *AdjacencyList) Len() int {
	if g == nil {
		return 0
	}

	return len(g.vertices)
}

// EdgeCount returns the total number of arcs, parallel arcs included.
func (g *AdjacencyList) EdgeCount() int {
	if g == nil {
		return 0
	}

	return g.edges
}

// Sources returns every vertex with outgoing arcs, sorted ascending.
//
// Complexity: O(V log V)
func (g *AdjacencyList) Sources() []Label {
	if g == nil {
		return nil
	}
	out := make([]Label, 0, len(g.vertices))
	for l := range g.vertices {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// OutgoingUnvisited returns the arcs leaving label whose destination
// is not in visited.
//
// The result distinguishes "no arcs" from "arcs exist but all lead to
// visited vertices":
//   - (nil, false) when g.Outgoing(label) reports no arcs;
//   - (empty non-nil slice, true) when every arc is filtered out.
//
// The returned slice is a fresh copy and may be retained by the caller.
//
// Complexity: O(deg(label))
func OutgoingUnvisited(g WeightedDirectedGraph, label Label, visited VisitedSet) ([]Edge, bool) {
	all, ok := g.Outgoing(label)
	if !ok {
		return nil, false
	}

	out := make([]Edge, 0, len(all))
	for _, e := range all {
		if visited.Contains(e.To) {
			continue
		}
		out = append(out, e)
	}

	return out, true
}
