// Package bfs finds fewest-hop paths over an adjacency Reader with
// breadth-first search.
//
// What
//
//   - ShortestPath(g, from, to) returns the vertex sequence of a shortest path
//     (by edge count) from "from" to "to", or nil when either endpoint is
//     unknown or "to" is unreachable.
//   - The returned slice has length hops+1 and starts with "from".
//
// Start-vertex rule
//
//	The start vertex is never enqueued and never pre-marked as visited. The
//	search is seeded with the neighbors of "from" instead. A query for
//	ShortestPath(v, v) therefore succeeds only when v is discovered again
//	through a cycle:
//
//	  - a self-loop v→v yields [v v];
//	  - in an undirected graph any neighbor n yields [v n v];
//	  - a directed vertex with no way back to itself yields nil.
//
//	There is no trivial zero-hop answer [v].
//
// Determinism
//
//	The queue is strict FIFO and neighbors are scanned in the order the Reader
//	enumerates them (insertion order for adjacency.Store). Among several
//	shortest paths, the one whose prefix was discovered first wins. The result
//	is implementation-defined but reproducible for a given insertion history.
//
// Concurrency
//
//	ShortestPath takes no locks. The caller must keep the Reader unchanged for
//	the duration of the call; core.Graph.Path holds its read lock across the
//	whole search.
//
// Complexity (V = |Vertices|, E = |links|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the predecessor arena and the visited set.
package bfs
