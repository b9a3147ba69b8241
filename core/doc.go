// Package core provides Graph, a generic, thread-safe, insert-only graph over
// user-supplied vertex and edge identities, in a directed or an undirected
// variant, with breadth-first shortest-path queries.
//
// A Graph[V, E] wraps one adjacency.Store with one sync.RWMutex:
//
//   - Read operations (membership, counts, enumeration, adjacency and
//     incidence queries, connectivity tests, Path, Stats, Validate) hold the
//     read lock for their whole body; many may run at once.
//   - Write operations (AddVertex, AddEdge) hold the write lock and exclude
//     everything else.
//   - Path runs the whole search under one read hold, so it observes a single
//     consistent snapshot even while writers are waiting.
//
// Modes (fixed at construction):
//
//	Directed    AddEdge links v1→v2 only; IsConnection(v1,v2) tests v1→v2.
//	Undirected  AddEdge links v1→v2 and v2→v1 through the same edge;
//	            IsConnection(v1,v2) requires both links.
//
// Quick start:
//
//	g := core.NewDirected[int, string]()
//	g.AddEdge("a", 1, 2)
//	g.AddEdge("b", 2, 3)
//	g.Path(1, 3) // [1 2 3]
//	g.Path(3, 1) // []
//
// API summary:
//
//	// Construction
//	NewGraph[V,E](opts ...GraphOption)   // undirected unless WithDirected(true)
//	NewDirected[V,E](), NewUndirected[V,E]()
//
//	// Mutation (write lock)
//	AddVertex(v V) bool                  // false if v exists
//	AddEdge(e E, v1, v2 V) bool          // false if e exists or v1,v2 already linked
//
//	// Query (read lock)
//	HasVertex(v) / HasEdge(e) bool
//	VertexCount() / EdgeCount() int      // O(1)
//	Vertices() []V / Edges() []E         // snapshot, insertion order
//	AdjacentVertices(v) []V              // direct successors, insertion order
//	IncidentEdges(v) []E                 // edges leaving v
//	IncidentVertices(e) []V              // [from, to] or empty
//	Edge(v1, v2) (E, bool)               // link v1→v2 only
//	IsConnection(v1, v2) bool            // mode-dependent
//	Path(from, to) []V                   // fewest hops; empty if none
//	Stats() Stats, Validate() error
//
// Failure model:
//
//	Nothing fails for an absent vertex or edge: queries return empty slices,
//	false, or (zero, false); refused insertions return false. A nil interface
//	identity (possible when V or E is an interface type) is a programmer error
//	and panics with ErrNilIdentity.
//
// Identities and the lock:
//
//	Vertex and edge identities are compared with == while the lock is held.
//	Keep them plain comparable values; an identity whose comparison could call
//	back into the same Graph would deadlock.
package core
