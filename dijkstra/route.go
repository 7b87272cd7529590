// SPDX-License-Identifier: MIT
package dijkstra

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/routefinder/core"
)

// Route is a candidate path: a start vertex followed by the arcs taken
// so far. Routes are immutable; Extend returns a new Route with its own
// copy of the arc sequence.
//
// The zero Route starts at label 0 and has no arcs. ShortestPath never
// returns a zero-length Route.
type Route struct {
	start  core.Label
	edges  []core.Edge
	weight core.Weight // sum of edges[i].Weight, fixed at construction
}

// NewRoute returns a Route starting at start and following edges in order.
// The edge slice is copied.
func NewRoute(start core.Label, edges ...core.Edge) Route {
	r := Route{start: start, edges: make([]core.Edge, len(edges))}
	copy(r.edges, edges)
	for _, e := range edges {
		r.weight += e.Weight
	}

	return r
}

// Extend returns a new Route equal to r followed by e.
//
// Complexity: O(len(r)) for the copy.
func (r Route) Extend(e core.Edge) Route {
	edges := make([]core.Edge, len(r.edges), len(r.edges)+1)
	copy(edges, r.edges)

	return Route{
		start:  r.start,
		edges:  append(edges, e),
		weight: r.weight + e.Weight,
	}
}

// Start returns the vertex the route begins at.
func (r Route) Start() core.Label { return r.start }

// End returns the destination of the last arc, or Start when the route
// has no arcs.
func (r Route) End() core.Label {
	if len(r.edges) == 0 {
		return r.start
	}

	return r.edges[len(r.edges)-1].To
}

// Len returns the number of arcs in the route.
func (r Route) Len() int { return len(r.edges) }

// Edges returns a copy of the arcs in traversal order.
func (r Route) Edges() []core.Edge {
	out := make([]core.Edge, len(r.edges))
	copy(out, r.edges)

	return out
}

// TotalWeight returns the sum of the route's arc weights.
func (r Route) TotalWeight() core.Weight { return r.weight }

// Path returns the visited vertices: Start followed by the destination
// of every arc, in traversal order.
func (r Route) Path() []core.Label {
	out := make([]core.Label, 0, len(r.edges)+1)
	out = append(out, r.start)
	for _, e := range r.edges {
		out = append(out, e.To)
	}

	return out
}

// String renders the route as "1→2→3 (w=2)".
func (r Route) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(r.start), 10))
	for _, e := range r.edges {
		sb.WriteString("→")
		sb.WriteString(strconv.FormatUint(uint64(e.To), 10))
	}
	sb.WriteString(" (w=")
	sb.WriteString(strconv.FormatUint(uint64(r.weight), 10))
	sb.WriteString(")")

	return sb.String()
}
