// SPDX-License-Identifier: MIT
// Package core defines the Label, Weight and Edge primitives, the
// WeightedDirectedGraph capability consumed by the search algorithms,
// and the adjacency-list graph built once from flat edge records.
//
// This file declares the value types, the EdgeSource record contract,
// the WeightedDirectedGraph interface and its OutgoingFunc adapter.
package core

// Label identifies a vertex. Labels may be dense or sparse; no
// contiguity is assumed anywhere in the package.
type Label uint64

// Weight is a non-negative edge cost. Zero is a legal weight.
type Weight uint64

// Edge is a directed arc from an implicit source vertex: the
// destination label and the cost of traversing the arc.
type Edge struct {
	// To is the destination vertex.
	To Label

	// Weight is the cost of the arc.
	Weight Weight
}

// EdgeSource is implemented by edge records that can feed FromEdges.
// Decoders for external graph formats expose their records through it
// so the graph never depends on a particular serialization.
type EdgeSource interface {
	// From returns the source vertex of the record.
	From() Label

	// To returns the destination vertex of the record.
	To() Label

	// Weight returns the cost of the arc.
	Weight() Weight
}

// EdgeRecord is the plain EdgeSource implementation.
type EdgeRecord struct {
	Src Label
	Dst Label
	W   Weight
}

// From implements EdgeSource.
func (r EdgeRecord) From() Label { return r.Src }

// To implements EdgeSource.
func (r EdgeRecord) To() Label { return r.Dst }

// Weight implements EdgeSource.
func (r EdgeRecord) Weight() Weight { return r.W }

// WeightedDirectedGraph is implemented by any storage that can answer
// "which arcs leave this vertex". Search algorithms only ever need this
// single query, so adjacency lists, matrices or external stores can all
// be searched the same way.
//
//go:generate mockgen -destination=mocks/mock_graph.go -package=mocks github.com/katalvlaran/routefinder/core WeightedDirectedGraph
type WeightedDirectedGraph interface {
	// Outgoing returns the arcs leaving label. The boolean is false when
	// the label has no recorded outgoing arcs, including when it is not
	// known to the graph at all; callers cannot tell the two apart.
	// The returned slice must be treated as read-only.
	Outgoing(label Label) ([]Edge, bool)
}

// The OutgoingFunc type is an adapter to allow the use of ordinary
// functions as graphs. If f is a function with the appropriate
// signature, OutgoingFunc(f) is a WeightedDirectedGraph that calls f.
type OutgoingFunc func(label Label) ([]Edge, bool)

// Outgoing calls f(label).
func (f OutgoingFunc) Outgoing(label Label) ([]Edge, bool) {
	return f(label)
}

// VisitedSet records the vertices a search has finalized.
// It is owned by a single search call and is not safe for concurrent use.
type VisitedSet map[Label]struct{}

// NewVisitedSet returns an empty set sized for roughly n labels.
func NewVisitedSet(n int) VisitedSet {
	return make(VisitedSet, n)
}

// Add marks label as visited.
func (s VisitedSet) Add(label Label) { s[label] = struct{}{} }

// Contains reports whether label has been visited.
func (s VisitedSet) Contains(label Label) bool {
	_, ok := s[label]
	return ok
}

// Len returns the number of visited labels.
func (s VisitedSet) Len() int { return len(s) }
