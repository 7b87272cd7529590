// SPDX-License-Identifier: MIT
package journey

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routefinder/core"
	"github.com/katalvlaran/routefinder/internal/ctxlog"
)

func loadFixture(t *testing.T) (*core.AdjacencyList, []Journey) {
	t.Helper()
	g, err := LoadGraph("testdata/graph.json")
	require.NoError(t, err)
	js, err := LoadJourneys("testdata/journeys.json")
	require.NoError(t, err)

	return g, js
}

func TestSolve_Fixture(t *testing.T) {
	g, js := loadFixture(t)

	var logs bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	got, sum, err := NewSolver(g, WithWorkers(3)).Solve(ctx, js)
	require.NoError(t, err)

	want := []Journey{
		{From: 1, To: 2, Route: Path{1, 2}},
		{From: 1, To: 4, Route: Path{1, 2, 3, 4}},
		{From: 1, To: 5},
		{From: 8, To: 1},
		{From: 8, To: 9},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, 5, sum.Journeys)
	require.Equal(t, 2, sum.Found)
	require.Equal(t, 3, sum.NotFound)
	require.Positive(t, sum.Pops)

	require.Contains(t, logs.String(), "Journeys solved.")
	require.Contains(t, logs.String(), "No route for journey.")
	require.Contains(t, logs.String(), "found=2")
}

func TestSolve_InputUntouched(t *testing.T) {
	g, js := loadFixture(t)
	before := append([]Journey(nil), js...)

	_, _, err := NewSolver(g).Solve(context.Background(), js)
	require.NoError(t, err)
	require.Equal(t, before, js)
}

func TestSolve_OrderStableAcrossWorkerCounts(t *testing.T) {
	g, _ := loadFixture(t)

	var js []Journey
	for from := core.Label(0); from < 8; from++ {
		for to := core.Label(0); to < 8; to++ {
			js = append(js, Journey{From: from, To: to})
		}
	}

	serial, _, err := NewSolver(g, WithWorkers(1)).Solve(context.Background(), js)
	require.NoError(t, err)
	parallel, _, err := NewSolver(g, WithWorkers(16)).Solve(context.Background(), js)
	require.NoError(t, err)

	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Fatalf("parallel answers differ (-serial +parallel):\n%s", diff)
	}
	for i, j := range serial {
		require.Equal(t, js[i].From, j.From)
		require.Equal(t, js[i].To, j.To)
		if j.Found() {
			require.Equal(t, j.From, j.Route[0])
			require.Equal(t, j.To, j.Route[len(j.Route)-1])
		}
	}
}

func TestSolve_Empty(t *testing.T) {
	got, sum, err := NewSolver(core.FromEdges([]core.EdgeRecord{})).Solve(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Zero(t, sum.Journeys)
}

func TestSolve_Cancelled(t *testing.T) {
	g, js := loadFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewSolver(g).Solve(ctx, js)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWithWorkers_IgnoresNonPositive(t *testing.T) {
	s := NewSolver(nil, WithWorkers(0), WithWorkers(-3))
	require.Positive(t, s.workers)

	s = NewSolver(nil, WithWorkers(2))
	require.Equal(t, 2, s.workers)
}
