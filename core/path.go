// File: path.go
// Role: Fewest-hop path query under a single read hold.

package core

import "github.com/katalvlaran/syncgraph/bfs"

// Path returns a fewest-hop path from "from" to "to" as [from, ..., to],
// following edge direction in directed graphs.
//
// The result is empty when either vertex is unknown or "to" is unreachable.
// Path(v, v) is not the trivial [v]: it is non-empty only if v is reached
// again through a cycle starting at one of its own neighbors (a self-loop
// gives [v v]; in an undirected graph any neighbor n gives [v n v]).
//
// Among several shortest paths the result is deterministic for a given
// insertion history (see package bfs).
//
// Complexity: Time O(V + E), Space O(V + E). The read lock is held for the
// whole search.
func (g *Graph[V, E]) Path(from, to V) []V {
	mustIdentity(from, "vertex")
	mustIdentity(to, "vertex")

	g.mu.RLock()
	defer g.mu.RUnlock()

	if p := bfs.ShortestPath[V](g.store, from, to); p != nil {
		return p
	}

	return []V{}
}
