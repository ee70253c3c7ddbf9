package solver

import "time"

// DefaultMaxDepth matches the longest optimal solution for any solvable
// 4x4 position, so the default never cuts off a reachable goal.
const DefaultMaxDepth = 80

// Options configures the shortest-path search.
type Options struct {
	MaxDepth int           // Maximum path length to explore
	Timeout  time.Duration // Timeout aborts long searches (0 = none)
}

// DefaultOptions returns standard search options.
func DefaultOptions() *Options {
	return &Options{
		MaxDepth: DefaultMaxDepth,
		Timeout:  0,
	}
}
