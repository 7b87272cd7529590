// SPDX-License-Identifier: MIT
package dijkstra

import "github.com/katalvlaran/routefinder/core"

// ShortestPath returns the minimum-weight route from `from` to `to` in g.
//
// The boolean is false when no route exists. Unknown vertices, vertices
// without outgoing arcs and unreachable targets all collapse into that
// single "not found" outcome; it is never an error.
//
// No zero-length route is ever synthesized, and because the source is
// finalized before the first expansion no arc back into it is ever
// followed: ShortestPath(g, v, v) reports "not found" even when v lies on
// a cycle. A nil g behaves like an empty graph.
//
// Algorithm (best-first over partial routes):
//  1. Mark `from` visited and seed the frontier with one single-arc route per
//     arc leaving `from`.
//  2. Pop the cheapest route. An empty frontier means no route exists.
//  3. If it ends at `to`, return it. Otherwise finalize its end vertex and push
//     one extended route per arc leaving it towards an unvisited vertex.
//
// With non-negative weights the first route popped for any vertex is the
// cheapest one, so each vertex is expanded at most once.
//
// Complexity:
//
//   - Time:  O(E log E + E·L) where L bounds route length (route cloning).
//   - Space: O(E·L) for the frontier in the worst case.
func ShortestPath(g core.WeightedDirectedGraph, from, to core.Label, opts ...Option) (Route, bool) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Route{}, false
	}

	s := &search{
		g:       g,
		options: cfg,
		visited: core.NewVisitedSet(0),
	}
	s.seed(from)

	return s.run(to)
}

// search holds the per-call state of one ShortestPath execution.
type search struct {
	g        core.WeightedDirectedGraph
	options  Options
	visited  core.VisitedSet
	frontier frontier
}

// seed finalizes the source and pushes its single-arc routes.
func (s *search) seed(from core.Label) {
	s.visited.Add(from)
	edges, ok := core.OutgoingUnvisited(s.g, from, s.visited)
	if !ok {
		return
	}
	s.frontier = make(frontier, 0, len(edges))
	for _, e := range edges {
		s.push(NewRoute(from, e))
	}
}

// run drives the expand-or-terminate loop.
func (s *search) run(to core.Label) (Route, bool) {
	for {
		cheapest, ok := s.frontier.pop()
		if !ok {
			return Route{}, false
		}
		if cheapest.Len() == 0 {
			panic("dijkstra: zero-length route on frontier")
		}
		s.options.OnPop(cheapest)

		end := cheapest.End()
		if end == to {
			return cheapest, true
		}
		if s.visited.Contains(end) {
			// Stale entry: a cheaper route already finalized end.
			continue
		}
		s.visited.Add(end)

		edges, ok := core.OutgoingUnvisited(s.g, end, s.visited)
		if !ok {
			continue
		}
		for _, e := range edges {
			s.push(cheapest.Extend(e))
		}
	}
}

func (s *search) push(r Route) {
	s.frontier.push(r)
	s.options.OnPush(r)
}
