// SPDX-License-Identifier: MIT
// Package: syncgraph/builder
//
// impl_complete.go - Complete(n).
//
// Undirected: unordered pairs {i,j}, i<j, in lexicographic order.
// Directed: ordered pairs (i,j), i≠j, i then j ascending.
// No self-loops in either mode.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(s Sink, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(s, n); err != nil {
			return err
		}

		return eachPair(s, n, func(_, _ int) bool { return true })
	}
}

// eachPair visits every admissible pair of the graph's mode in the stable
// order above and emits the ones keep accepts.
func eachPair(s Sink, n int, keep func(i, j int) bool) error {
	directed := s.Directed()
	for i := 0; i < n; i++ {
		j := i + 1
		if directed {
			j = 0
		}
		for ; j < n; j++ {
			if i == j {
				continue
			}
			if !keep(i, j) {
				continue
			}
			if err := s.AddEdge(i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
