// SPDX-License-Identifier: MIT
// Package: syncgraph/builder
//
// scheme.go - index-to-identity mapping for vertices and edges.

package builder

import "strconv"

// Scheme maps the index space constructors work in to the identity types of
// a core.Graph.
//
// Vertex must be injective over the indices a build uses. Edge receives the
// per-build emission sequence number together with both endpoint indices;
// it must return a distinct identity for every emitted edge, otherwise the
// graph refuses the duplicate and the build fails with ErrEdgeRefused.
type Scheme[V, E comparable] struct {
	Vertex func(i int) V
	Edge   func(seq, from, to int) E
}

// Ints maps vertex i to i and numbers edges by emission order.
func Ints() Scheme[int, int] {
	return Scheme[int, int]{
		Vertex: func(i int) int { return i },
		Edge:   func(seq, _, _ int) int { return seq },
	}
}

// Strings maps vertex i to its decimal form and names edge (i, j) "i-j".
// Names are unique because a simple graph links an ordered pair once.
func Strings() Scheme[string, string] {
	return Scheme[string, string]{
		Vertex: strconv.Itoa,
		Edge: func(_, from, to int) string {
			return strconv.Itoa(from) + "-" + strconv.Itoa(to)
		},
	}
}

// Offset shifts both vertex indices and edge sequence numbers of s by
// delta. Concurrent builds into one graph use disjoint offsets.
func Offset[V, E comparable](s Scheme[V, E], delta int) Scheme[V, E] {
	return Scheme[V, E]{
		Vertex: func(i int) V { return s.Vertex(i + delta) },
		Edge: func(seq, from, to int) E {
			return s.Edge(seq+delta, from+delta, to+delta)
		},
	}
}

func (s Scheme[V, E]) complete() bool {
	return s.Vertex != nil && s.Edge != nil
}
