// SPDX-License-Identifier: MIT
// Package journey is the I/O layer around package dijkstra: it decodes a
// graph file and a batch of journey queries, answers every query against
// the shared graph, and encodes the answers.
//
// Graph files hold a list of arcs, journey files a list of (from, to)
// pairs; both may be JSON or YAML:
//
//	[{"from": 1, "to": 2, "weight": 1}, ...]      graph
//	[{"from": 1, "to": 4}, ...]                   journeys
//
// Answers keep the input order and carry the vertex sequence of the
// cheapest route, or null when there is none:
//
//	[{"from": 1, "to": 4, "route": [1, 2, 3, 4]}, {"from": 1, "to": 5, "route": null}]
package journey
