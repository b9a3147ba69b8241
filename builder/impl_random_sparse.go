// SPDX-License-Identifier: MIT
// Package: syncgraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Erdős–Rényi-like sampling: every admissible pair of the Complete(n) order
// is kept independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required only when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: the trial order is fixed, so a fixed seed yields a fixed
// edge set.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each admissible edge over
// n vertices with probability p.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(s Sink, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(s, n); err != nil {
			return err
		}

		return eachPair(s, n, func(_, _ int) bool {
			if rng == nil {
				return p == probMax
			}

			return rng.Float64() < p
		})
	}
}
