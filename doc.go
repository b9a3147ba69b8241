// Package syncgraph is a generic, thread-safe, insert-only graph library
// with directed and undirected variants and fewest-hop path queries.
//
// What is inside:
//
//	adjacency/  unsynchronized adjacency store, read-only views, invariant scan
//	bfs/        breadth-first shortest path over any adjacency reader
//	core/       Graph[V, E]: the concurrent facade with one RWMutex
//	builder/    deterministic topologies (paths, cycles, stars, grids, random)
//
// Vertices and edges are identified by caller-chosen comparable types. An
// edge identity is used at most once, and at most one edge joins an ordered
// pair of vertices (an unordered pair in undirected graphs). Nothing is ever
// removed.
//
// Quick example:
//
//	g := core.NewDirected[string, int]()
//	g.AddEdge(1, "A", "B")
//	g.AddEdge(2, "B", "C")
//	g.Path("A", "C") // [A B C]
//
// Every enumeration follows insertion order, so among several shortest paths
// the one returned is fixed by the insertion history.
//
//	go get github.com/katalvlaran/syncgraph
package syncgraph
