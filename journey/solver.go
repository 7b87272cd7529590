// SPDX-License-Identifier: MIT
package journey

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/routefinder/core"
	"github.com/katalvlaran/routefinder/dijkstra"
	"github.com/katalvlaran/routefinder/internal/ctxlog"
)

// Summary aggregates the outcome of one Solve call.
type Summary struct {
	Journeys int
	Found    int
	NotFound int
	Pops     int64 // frontier pops across all searches
	Elapsed  time.Duration
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithWorkers bounds the number of concurrent searches. Values < 1 are
// ignored.
func WithWorkers(n int) SolverOption {
	return func(s *Solver) {
		if n > 0 {
			s.workers = n
		}
	}
}

// Solver answers batches of journeys against one read-only graph.
type Solver struct {
	graph   core.WeightedDirectedGraph
	workers int
}

// NewSolver returns a Solver over g. By default it runs one search per CPU.
func NewSolver(g core.WeightedDirectedGraph, opts ...SolverOption) *Solver {
	s := &Solver{graph: g, workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve answers every journey and returns them in input order with Route
// set, or nil when no route exists. The input slice is not modified.
//
// Searches run concurrently on at most the configured number of workers.
// A cancelled ctx stops scheduling further searches and Solve returns the
// context error.
func (s *Solver) Solve(ctx context.Context, journeys []Journey) ([]Journey, Summary, error) {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	out := make([]Journey, len(journeys))
	var pops, found atomic.Int64

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(s.workers)
	for i := range journeys {
		if gctx.Err() != nil {
			break
		}
		i := i
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			j := journeys[i]
			var n int64
			r, ok := dijkstra.ShortestPath(s.graph, j.From, j.To,
				dijkstra.WithOnPop(func(dijkstra.Route) { n++ }))
			pops.Add(n)

			res := Journey{From: j.From, To: j.To}
			if ok {
				res.Route = r.Path()
				found.Add(1)
				logger.Debug("Journey solved.", "from", j.From, "to", j.To, "weight", r.TotalWeight(), "hops", r.Len(), "pops", n)
			} else {
				logger.Debug("No route for journey.", "from", j.From, "to", j.To, "pops", n)
			}
			out[i] = res

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, Summary{}, fmt.Errorf("journey: solve: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, Summary{}, fmt.Errorf("journey: solve: %w", err)
	}

	sum := Summary{
		Journeys: len(journeys),
		Found:    int(found.Load()),
		Pops:     pops.Load(),
		Elapsed:  time.Since(start),
	}
	sum.NotFound = sum.Journeys - sum.Found
	logger.Info("Journeys solved.",
		"journeys", sum.Journeys, "found", sum.Found, "not_found", sum.NotFound,
		"pops", sum.Pops, "workers", s.workers, "elapsed", sum.Elapsed)

	return out, sum, nil
}
