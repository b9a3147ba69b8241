// File: bfs.go
// Role: Fewest-hop path search with FIFO frontier and index-linked predecessors.
// Determinism:
//   - First-discovered predecessor wins; neighbors scanned in Reader order.

package bfs

// walker holds the state of one ShortestPath call. arena is both the FIFO
// queue (entries at index >= head are pending) and the predecessor store.
type walker[V comparable] struct {
	g       Reader[V]
	from    V
	to      V
	arena   []node[V]
	head    int
	visited map[V]struct{}
}

// ShortestPath returns a fewest-hop path from "from" to "to" as
// [from, ..., to], or nil if either vertex is unknown to g or "to" cannot be
// reached. See the package documentation for the start-vertex rule.
//
// Complexity: O(V + E) time and memory.
func ShortestPath[V comparable](g Reader[V], from, to V) []V {
	if !g.IsVertex(from) || !g.IsVertex(to) {
		return nil
	}

	w := &walker[V]{
		g:       g,
		from:    from,
		to:      to,
		visited: make(map[V]struct{}),
	}
	w.seed()

	return w.loop()
}

// seed enqueues every neighbor of the start vertex with the root as predecessor.
func (w *walker[V]) seed() {
	for v := range w.g.AdjacentVertices(w.from).All() {
		w.arena = append(w.arena, node[V]{vertex: v, prev: root})
	}
}

// loop drains the queue until the target is dequeued or nothing is left.
func (w *walker[V]) loop() []V {
	for ; w.head < len(w.arena); w.head++ {
		cur := w.arena[w.head]
		if cur.vertex == w.to {
			return w.path(w.head)
		}
		if _, seen := w.visited[cur.vertex]; seen {
			continue
		}
		w.visited[cur.vertex] = struct{}{}
		w.expand(cur.vertex, w.head)
	}

	return nil
}

// expand enqueues the unvisited neighbors of v with idx as their predecessor.
func (w *walker[V]) expand(v V, idx int) {
	for nbr := range w.g.AdjacentVertices(v).All() {
		if _, seen := w.visited[nbr]; seen {
			continue
		}
		w.arena = append(w.arena, node[V]{vertex: nbr, prev: idx})
	}
}

// path rebuilds [from, ..., arena[idx].vertex] by following prev links.
func (w *walker[V]) path(idx int) []V {
	hops := 0
	for i := idx; i != root; i = w.arena[i].prev {
		hops++
	}

	out := make([]V, hops+1)
	out[0] = w.from
	for i, k := idx, hops; i != root; i, k = w.arena[i].prev, k-1 {
		out[k] = w.arena[i].vertex
	}

	return out
}
