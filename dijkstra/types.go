// SPDX-License-Identifier: MIT
package dijkstra

// Options holds observation hooks for a single ShortestPath call.
// Hooks never influence the result; they exist for tracing and
// statistics.
type Options struct {
	// OnPush is called for every route pushed onto the frontier,
	// including the seed routes out of the source.
	OnPush func(r Route)

	// OnPop is called for every route popped from the frontier, before
	// the target check.
	OnPop func(r Route)
}

// Option configures ShortestPath via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnPush: func(Route) {},
		OnPop:  func(Route) {},
	}
}

// WithOnPush registers a callback run on every frontier push.
func WithOnPush(fn func(r Route)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop registers a callback run on every frontier pop.
func WithOnPop(fn func(r Route)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}
