// File: mode.go
// Role: The two behavioral variants of a Graph.
// Concurrency:
//   - Methods run with the Graph's lock already held by the caller.

package core

import "github.com/katalvlaran/syncgraph/adjacency"

// mode holds the operations that differ between directed and undirected
// graphs. Everything else is shared.
type mode[V, E comparable] interface {
	isDirected() bool
	addEdge(s *adjacency.Store[V, E], e E, v1, v2 V) bool
	isConnection(s *adjacency.Store[V, E], v1, v2 V) bool
}

// directed links each edge one way.
type directed[V, E comparable] struct{}

func (directed[V, E]) isDirected() bool { return true }

func (directed[V, E]) addEdge(s *adjacency.Store[V, E], e E, v1, v2 V) bool {
	return s.AddDirectEdge(e, v1, v2)
}

func (directed[V, E]) isConnection(s *adjacency.Store[V, E], v1, v2 V) bool {
	return s.IsDirectConnection(v1, v2)
}

// undirected links each edge both ways.
type undirected[V, E comparable] struct{}

func (undirected[V, E]) isDirected() bool { return false }

func (undirected[V, E]) addEdge(s *adjacency.Store[V, E], e E, v1, v2 V) bool {
	return s.AddBidirectionalEdge(e, v1, v2)
}

// isConnection requires both links. Insertion always creates them together.
func (undirected[V, E]) isConnection(s *adjacency.Store[V, E], v1, v2 V) bool {
	return s.IsDirectConnection(v1, v2) && s.IsDirectConnection(v2, v1)
}
