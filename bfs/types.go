// File: types.go
// Role: Reader contract and the predecessor-arena node.

package bfs

import "github.com/katalvlaran/syncgraph/adjacency"

// Reader is the read-only adjacency surface the search needs.
// *adjacency.Store satisfies it.
type Reader[V comparable] interface {
	// IsVertex reports whether v exists.
	IsVertex(v V) bool

	// AdjacentVertices returns the direct successors of v; empty for unknown v.
	AdjacentVertices(v V) adjacency.View[V]
}

// root marks a node whose predecessor is the start vertex.
const root = -1

// node is one queue entry. prev indexes the predecessor node in the same
// arena, or is root.
type node[V comparable] struct {
	vertex V
	prev   int
}
