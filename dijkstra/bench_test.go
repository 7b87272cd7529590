// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/routefinder/core"
	"github.com/katalvlaran/routefinder/dijkstra"
)

// gridRecords returns a side×side grid with right and down arcs of
// varying weight; vertex id = row*side + col.
func gridRecords(side int) []core.EdgeRecord {
	out := make([]core.EdgeRecord, 0, 2*side*side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			id := core.Label(r*side + c)
			if c+1 < side {
				out = append(out, core.EdgeRecord{Src: id, Dst: id + 1, W: core.Weight(1 + (r+c)%3)})
			}
			if r+1 < side {
				out = append(out, core.EdgeRecord{Src: id, Dst: id + core.Label(side), W: core.Weight(1 + (r*c)%4)})
			}
		}
	}

	return out
}

func BenchmarkShortestPath_Grid30(b *testing.B) {
	const side = 30
	g := core.FromEdges(gridRecords(side))
	target := core.Label(side*side - 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := dijkstra.ShortestPath(g, 0, target); !ok {
			b.Fatal("corner must be reachable")
		}
	}
}
