// SPDX-License-Identifier: MIT
// Package: syncgraph/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Edge order: i→i+1 for i ascending; Cycle closes with (n-1)→0.
// Directed graphs get a single orientation, so a directed Path is a chain
// and a directed Cycle is the only way back to the start.

package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	minPathNodes   = 2
	minCycleNodes  = 3
	pathEdgeOffset = 1
)

// Path returns a Constructor for the n-vertex path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(s Sink, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(s, n, false)
	}
}

// Cycle returns a Constructor for the n-vertex cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(s Sink, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(s, n, true)
	}
}

func chain(s Sink, n int, closed bool) error {
	if err := addVertices(s, n); err != nil {
		return err
	}
	for i := 0; i+pathEdgeOffset < n; i++ {
		if err := s.AddEdge(i, i+pathEdgeOffset); err != nil {
			return err
		}
	}
	if !closed {
		return nil
	}

	return s.AddEdge(n-1, 0)
}
