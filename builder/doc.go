// SPDX-License-Identifier: MIT
// Package: syncgraph/builder
//
// Package builder assembles deterministic graph topologies (paths, cycles,
// stars, complete graphs, grids and seeded random graphs) on top of
// core.Graph.
//
// Constructors work in index space: vertex i and edge (i, j) are plain
// ints. A Scheme maps indices to the graph's own identity types, so the same
// Constructor can populate a Graph[int, int], a Graph[string, string] or any
// caller-defined identity pair.
//
//	g, err := builder.BuildGraph(builder.Strings(),
//		[]core.GraphOption{core.WithDirected(true)}, nil,
//		builder.Cycle(5))
//
// Determinism:
//   - Vertices are added in ascending index order.
//   - Edges are emitted in a fixed, documented order per constructor.
//   - Stochastic constructors draw only from the configured RNG (WithSeed).
//
// Errors:
//   - Invalid parameters surface as sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource).
//   - An edge the graph refuses (duplicate identity or an existing link)
//     surfaces as ErrEdgeRefused, so composing overlapping constructors on
//     one graph fails loudly instead of silently dropping edges.
//   - Option constructors panic on meaningless input (nil RNG, nil scheme).
//
// Concurrency:
//   - Build may run from several goroutines against one shared graph; every
//     mutation goes through the graph's own lock. Each call keeps its own
//     edge sequence, so concurrent calls need disjoint schemes.
package builder
