// File: api.go
// Role: Mode and size getters, Stats snapshot, invariant check.
// Concurrency:
//   - Directed() reads immutable state and takes no lock.
//   - Everything else holds the read lock for its whole body.

package core

// Stats is a point-in-time summary of a Graph, taken under one read hold.
type Stats struct {
	Directed    bool
	VertexCount int
	EdgeCount   int
	SelfLoops   int // edges whose two endpoints are the same vertex
}

// Directed reports whether the graph was constructed as directed.
// Complexity: O(1).
func (g *Graph[V, E]) Directed() bool { return g.mode.isDirected() }

// VertexCount returns the number of distinct vertices.
// Complexity: O(1).
func (g *Graph[V, E]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.VertexCount()
}

// EdgeCount returns the number of distinct edges.
// Complexity: O(1).
func (g *Graph[V, E]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.EdgeCount()
}

// Stats returns counts and the mode in one consistent read.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Read both counts, then scan edges once for self-loops.
//
// Complexity: Time O(E), Space O(1).
func (g *Graph[V, E]) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := Stats{
		Directed:    g.mode.isDirected(),
		VertexCount: g.store.VertexCount(),
		EdgeCount:   g.store.EdgeCount(),
	}
	for e := range g.store.Edges().All() {
		if p, ok := g.store.Endpoints(e); ok && p.Loop() {
			st.SelfLoops++
		}
	}

	return st
}

// Validate scans the whole graph and reports the first broken invariant, as
// an error wrapping one of the adjacency sentinel errors. A nil result means
// every edge's incident pair agrees with the stored links for the graph's mode
// and all counts are consistent.
//
// Validate is meant for tests and diagnostics; a Graph only mutated through
// its own API always validates.
//
// Complexity: Time O(V + E), Space O(1).
func (g *Graph[V, E]) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.Validate(!g.mode.isDirected())
}
