// SPDX-License-Identifier: MIT
// Package: syncgraph/builder
//
// impl_star.go - Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub; leaves are 1..n-1.
//   - Spokes are emitted hub→leaf in ascending leaf order. Directed graphs
//     also get leaf→hub right after each spoke, so every leaf reaches every
//     other leaf in two hops in both modes.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHub      = 0
)

// Star returns a Constructor for a star with one hub and n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(s Sink, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(s, n); err != nil {
			return err
		}

		directed := s.Directed()
		for leaf := starHub + 1; leaf < n; leaf++ {
			if err := s.AddEdge(starHub, leaf); err != nil {
				return err
			}
			if !directed {
				continue
			}
			if err := s.AddEdge(leaf, starHub); err != nil {
				return err
			}
		}

		return nil
	}
}
