// SPDX-License-Identifier: MIT
// Package core_test verifies that a built AdjacencyList can be read concurrently.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routefinder/core"
)

// TestConcurrentOutgoing runs many readers against one published graph.
// Results are collected and asserted on the test goroutine; run with -race.
func TestConcurrentOutgoing(t *testing.T) {
	g := core.FromEdges(FixtureEdges())

	var wg sync.WaitGroup
	lens := make([]int, NReaders)
	wg.Add(NReaders)
	for i := 0; i < NReaders; i++ {
		go func(idx int) {
			defer wg.Done()
			total := 0
			for r := 0; r < NRounds; r++ {
				visited := core.NewVisitedSet(1)
				visited.Add(core.Label(r % 7))
				for _, l := range g.Sources() {
					edges, _ := core.OutgoingUnvisited(g, l, visited)
					total += len(edges)
				}
			}
			lens[idx] = total
		}(i)
	}
	wg.Wait()

	for i := 1; i < NReaders; i++ {
		require.Equal(t, lens[0], lens[i], "readers must observe the same graph")
	}
}
