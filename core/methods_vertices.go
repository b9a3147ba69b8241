// File: methods_vertices.go
// Role: Vertex insertion, membership, enumeration and adjacency.
// Determinism:
//   - Vertices() and AdjacentVertices() return insertion order.
// Concurrency:
//   - AddVertex holds the write lock; queries hold the read lock.

package core

// AddVertex inserts v with no neighbors.
//
// Returns true if v was inserted, false if it was already present (no-op).
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddVertex(v V) bool {
	mustIdentity(v, "vertex")

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.store.AddVertex(v)
}

// HasVertex reports whether v is a vertex of the graph.
// Complexity: O(1).
func (g *Graph[V, E]) HasVertex(v V) bool {
	mustIdentity(v, "vertex")

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.IsVertex(v)
}

// Vertices returns a snapshot of all vertices in insertion order.
// The slice is owned by the caller.
// Complexity: O(V).
func (g *Graph[V, E]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.Vertices().Slice()
}

// AdjacentVertices returns a snapshot of the vertices directly reachable from
// v, in the order their edges were added. Unknown v yields an empty slice.
// Complexity: O(deg(v)).
func (g *Graph[V, E]) AdjacentVertices(v V) []V {
	mustIdentity(v, "vertex")

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.AdjacentVertices(v).Slice()
}
