// File: store.go
// Role: Membership, enumeration, adjacency and incidence queries; insertions.
// Determinism:
//   - Every enumeration follows insertion order.
// Concurrency:
//   - Not safe for concurrent use; callers serialize.

package adjacency

// VertexCount returns the number of distinct vertices.
func (s *Store[V, E]) VertexCount() int { return len(s.vertices) }

// EdgeCount returns the number of distinct edges.
func (s *Store[V, E]) EdgeCount() int { return len(s.edges) }

// IsVertex reports whether v is a vertex of the store.
func (s *Store[V, E]) IsVertex(v V) bool {
	_, ok := s.vertices[v]

	return ok
}

// IsEdge reports whether e is an edge of the store.
func (s *Store[V, E]) IsEdge(e E) bool {
	_, ok := s.edges[e]

	return ok
}

// Vertices returns a view over all vertices in insertion order.
func (s *Store[V, E]) Vertices() View[V] {
	return newView(s.vertexOrder, func(v V) (int, bool) {
		nb, ok := s.vertices[v]
		if !ok {
			return 0, false
		}

		return nb.pos, true
	})
}

// Edges returns a view over all edges in insertion order.
func (s *Store[V, E]) Edges() View[E] {
	return newView(s.edgeOrder, func(e E) (int, bool) {
		ent, ok := s.edges[e]

		return ent.pos, ok
	})
}

// AdjacentVertices returns the vertices directly reachable from v, in the
// order their links were created. An unknown v yields the empty view.
func (s *Store[V, E]) AdjacentVertices(v V) View[V] {
	nb := s.vertices[v]
	if nb == nil {
		return View[V]{}
	}

	return newView(nb.order, func(w V) (int, bool) {
		i, ok := nb.at[w]

		return i, ok
	})
}

// IncidentEdges returns the edges leaving v: for a direct edge, those whose
// From is v; for a bidirectional edge, those touching v on either side.
// An unknown v yields the empty view.
func (s *Store[V, E]) IncidentEdges(v V) View[E] {
	nb := s.vertices[v]
	if nb == nil {
		return View[E]{}
	}

	return newView(nb.out, func(e E) (int, bool) {
		ent, ok := s.edges[e]
		if !ok {
			return 0, false
		}
		if i, linked := nb.at[ent.To]; linked && ent.From == v && nb.out[i] == e {
			return i, true
		}
		i, linked := nb.at[ent.From]

		return i, linked && ent.To == v && nb.out[i] == e
	})
}

// Endpoints returns the incident pair of e.
func (s *Store[V, E]) Endpoints(e E) (Pair[V], bool) {
	ent, ok := s.edges[e]

	return ent.Pair, ok
}

// IncidentVertices returns the incident pair of e as [from, to], or nil when
// e is unknown.
func (s *Store[V, E]) IncidentVertices(e E) []V {
	ent, ok := s.edges[e]
	if !ok {
		return nil
	}

	return ent.Slice()
}

// Edge returns the edge linking v1 to v2 in that direction.
func (s *Store[V, E]) Edge(v1, v2 V) (E, bool) {
	var zero E
	nb := s.vertices[v1]
	if nb == nil {
		return zero, false
	}
	i, ok := nb.at[v2]
	if !ok {
		return zero, false
	}

	return nb.out[i], true
}

// IsDirectConnection reports whether a link v1→v2 exists. The test is
// one-directional even for bidirectional edges.
func (s *Store[V, E]) IsDirectConnection(v1, v2 V) bool {
	_, ok := s.Edge(v1, v2)

	return ok
}

// AddVertex inserts v with no neighbors. It returns false when v already exists.
// Complexity: O(1) amortized.
func (s *Store[V, E]) AddVertex(v V) bool {
	if _, ok := s.vertices[v]; ok {
		return false
	}
	s.vertices[v] = &neighborhood[V, E]{pos: len(s.vertexOrder)}
	s.vertexOrder = append(s.vertexOrder, v)

	return true
}

// AddDirectEdge records e as the single link v1→v2.
//
// It refuses, without mutating anything, when e already exists or a link
// v1→v2 already exists. Missing endpoints are inserted.
// Complexity: O(1) amortized.
func (s *Store[V, E]) AddDirectEdge(e E, v1, v2 V) bool {
	if s.IsEdge(e) || s.IsDirectConnection(v1, v2) {
		return false
	}

	s.AddVertex(v1)
	s.AddVertex(v2)
	s.link(v1, v2, e)
	s.register(e, v1, v2)

	return true
}

// AddBidirectionalEdge records e as the links v1→v2 and v2→v1.
//
// It refuses, without mutating anything, when e already exists or v1 and v2
// are already linked in either direction. Missing endpoints are inserted.
// A self-loop is linked once.
// Complexity: O(1) amortized.
func (s *Store[V, E]) AddBidirectionalEdge(e E, v1, v2 V) bool {
	if s.IsEdge(e) || s.IsDirectConnection(v1, v2) || s.IsDirectConnection(v2, v1) {
		return false
	}

	s.AddVertex(v1)
	s.AddVertex(v2)
	s.link(v1, v2, e)
	s.link(v2, v1, e)
	s.register(e, v1, v2)

	return true
}

// link stores from→to via e unless that link already exists.
// Both vertices must already be present.
func (s *Store[V, E]) link(from, to V, e E) {
	nb := s.vertices[from]
	if nb.at == nil {
		nb.at = make(map[V]int)
	}
	if _, ok := nb.at[to]; ok {
		return
	}
	nb.at[to] = len(nb.order)
	nb.order = append(nb.order, to)
	nb.out = append(nb.out, e)
}

func (s *Store[V, E]) register(e E, from, to V) {
	s.edges[e] = edgeEntry[V]{Pair: Pair[V]{From: from, To: to}, pos: len(s.edgeOrder)}
	s.edgeOrder = append(s.edgeOrder, e)
}
