// File: methods_edges.go
// Role: Edge insertion, membership, enumeration, incidence and connectivity.
// Determinism:
//   - Edges() and IncidentEdges() return insertion order.
// Concurrency:
//   - AddEdge holds the write lock; queries hold the read lock.

package core

// AddEdge inserts edge e between v1 and v2 and creates either endpoint that
// does not exist yet.
//
// Directed graphs link v1→v2. Undirected graphs link v1→v2 and v2→v1 through
// the same e; the incident pair is still recorded as [v1, v2].
//
// Returns false, changing nothing, when:
//   - e is already an edge of the graph, or
//   - v1 already links to v2 (directed), or v1 and v2 are already linked in
//     either direction (undirected).
//
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEdge(e E, v1, v2 V) bool {
	mustIdentity(e, "edge")
	mustIdentity(v1, "vertex")
	mustIdentity(v2, "vertex")

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.mode.addEdge(g.store, e, v1, v2)
}

// HasEdge reports whether e is an edge of the graph.
// Complexity: O(1).
func (g *Graph[V, E]) HasEdge(e E) bool {
	mustIdentity(e, "edge")

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.IsEdge(e)
}

// Edges returns a snapshot of all edges in insertion order.
// Complexity: O(E).
func (g *Graph[V, E]) Edges() []E {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.Edges().Slice()
}

// Edge returns the edge linking v1 to v2 in that direction, if any.
// In an undirected graph Edge(v1, v2) and Edge(v2, v1) return the same edge.
// Complexity: O(1).
func (g *Graph[V, E]) Edge(v1, v2 V) (E, bool) {
	mustIdentity(v1, "vertex")
	mustIdentity(v2, "vertex")

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.Edge(v1, v2)
}

// IsConnection reports whether v1 is connected to v2 by a single edge.
// Directed graphs test v1→v2 only; undirected graphs require both links.
// Complexity: O(1).
func (g *Graph[V, E]) IsConnection(v1, v2 V) bool {
	mustIdentity(v1, "vertex")
	mustIdentity(v2, "vertex")

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.mode.isConnection(g.store, v1, v2)
}

// IncidentEdges returns a snapshot of the edges leaving v: in a directed graph
// the edges whose source is v, in an undirected graph every edge touching v.
// Unknown v yields an empty slice.
// Complexity: O(deg(v)).
func (g *Graph[V, E]) IncidentEdges(v V) []E {
	mustIdentity(v, "vertex")

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.IncidentEdges(v).Slice()
}

// IncidentVertices returns the incident pair of e as [v1, v2] in the order
// given to AddEdge, or an empty slice if e is unknown.
// Complexity: O(1).
func (g *Graph[V, E]) IncidentVertices(e E) []V {
	mustIdentity(e, "edge")

	g.mu.RLock()
	defer g.mu.RUnlock()

	if vs := g.store.IncidentVertices(e); vs != nil {
		return vs
	}

	return []V{}
}
