// SPDX-License-Identifier: MIT
package dijkstra

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routefinder/core"
)

func TestFrontier_PopsCheapestFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var f frontier
	for i := 0; i < 200; i++ {
		f.push(NewRoute(0, core.Edge{To: core.Label(i), Weight: core.Weight(rng.Intn(50))}))
	}

	var last core.Weight
	for i := 0; i < 200; i++ {
		r, ok := f.pop()
		require.True(t, ok)
		require.GreaterOrEqual(t, r.TotalWeight(), last, "min-heap order violated at pop %d", i)
		last = r.TotalWeight()
	}

	_, ok := f.pop()
	require.False(t, ok, "empty frontier reports absence")
}

func TestFrontier_DuplicatesCoexist(t *testing.T) {
	var f frontier
	f.push(NewRoute(1, core.Edge{To: 2, Weight: 5}))
	f.push(NewRoute(1, core.Edge{To: 3, Weight: 1}, core.Edge{To: 2, Weight: 1}))
	require.Equal(t, 2, f.Len())

	r, _ := f.pop()
	require.Equal(t, []core.Label{1, 3, 2}, r.Path())
	r, _ = f.pop()
	require.Equal(t, []core.Label{1, 2}, r.Path())
}
