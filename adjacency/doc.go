// Package adjacency provides the sequential ground truth behind a syncgraph
// graph: the vertex catalog, the edge catalog, and the per-vertex neighbor
// maps implied by the edges.
//
// A Store is NOT safe for concurrent use. Callers that share a Store across
// goroutines must serialize access themselves; core.Graph does so with a
// single sync.RWMutex.
//
// Model
//
//	vertices[v]        → neighborhood of v (position, neighbor → link index)
//	edges[e]           → Pair{From, To} and position (incident pair, insertion order)
//
// A direct edge e from a to b stores one link a→b. A bidirectional edge stores
// a→b and b→a through the same e (a self-loop is stored once). At most one
// edge may link an ordered pair of vertices.
//
// Determinism
//
//	Vertices(), Edges(), AdjacentVertices() and IncidentEdges() enumerate in
//	insertion order. Nothing is ever removed, so a View taken earlier remains a
//	valid prefix of any later View of the same set. Contains on a View answers
//	for that prefix only, by comparing the element's recorded position with
//	the View's length.
//
// Complexity
//
//   - Membership and single-link lookups: O(1) expected.
//   - Insertions: O(1) amortized.
//   - Validate: O(V + E).
package adjacency
