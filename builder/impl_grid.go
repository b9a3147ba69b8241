// SPDX-License-Identifier: MIT
// Package: syncgraph/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r, c) is vertex index r*cols + c; GridIndex computes it.
//   - Row-major scan; each cell emits its right then its down neighbor.
//     Directed graphs mirror each arc right after it, so shortest paths
//     are Manhattan distances in both modes.

package builder

import "fmt"

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// GridIndex returns the vertex index of cell (r, c) in a grid with cols
// columns.
func GridIndex(r, c, cols int) int { return r*cols + c }

// Grid returns a Constructor for a rows×cols 4-neighbor lattice.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(s Sink, _ builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		if err := addVertices(s, rows*cols); err != nil {
			return err
		}

		directed := s.Directed()
		link := func(u, v int) error {
			if err := s.AddEdge(u, v); err != nil {
				return err
			}
			if !directed {
				return nil
			}

			return s.AddEdge(v, u)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridIndex(r, c, cols)
				if c+1 < cols {
					if err := link(u, GridIndex(r, c+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridIndex(r+1, c, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
