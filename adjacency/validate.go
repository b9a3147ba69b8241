// File: validate.go
// Role: Full consistency scan of a Store against its invariants.
// Determinism:
//   - Scans in insertion order, so the first reported violation is stable.

package adjacency

import "fmt"

// Validate checks every structural invariant of the store and returns the
// first violation found, wrapped around one of ErrCountMismatch,
// ErrDanglingEndpoint or ErrAdjacencyMismatch.
//
// bidirectional selects the linking rule the edges were inserted with:
// false for AddDirectEdge (one link per edge), true for AddBidirectionalEdge
// (two links per edge, one for a self-loop).
//
// Checks:
//  1. Catalog sizes match their insertion-order slices and every recorded
//     position points back at its element.
//  2. Every edge's endpoints are vertices and its link(s) point back to it.
//  3. Every link's edge exists and its pair matches the link direction.
//  4. The total number of links matches the edge count for the rule.
//
// Complexity: O(V + E).
func (s *Store[V, E]) Validate(bidirectional bool) error {
	if len(s.vertexOrder) != len(s.vertices) {
		return fmt.Errorf("%w: %d ordered vertices, %d in catalog", ErrCountMismatch, len(s.vertexOrder), len(s.vertices))
	}
	if len(s.edgeOrder) != len(s.edges) {
		return fmt.Errorf("%w: %d ordered edges, %d in catalog", ErrCountMismatch, len(s.edgeOrder), len(s.edges))
	}
	for i, v := range s.vertexOrder {
		if nb, ok := s.vertices[v]; !ok || nb == nil || nb.pos != i {
			return fmt.Errorf("%w: vertex %v is not recorded at position %d", ErrCountMismatch, v, i)
		}
	}

	var wantLinks int
	for i, e := range s.edgeOrder {
		ent, ok := s.edges[e]
		if !ok || ent.pos != i {
			return fmt.Errorf("%w: edge %v is not recorded at position %d", ErrCountMismatch, e, i)
		}
		if !s.IsVertex(ent.From) || !s.IsVertex(ent.To) {
			return fmt.Errorf("%w: edge %v (%v, %v)", ErrDanglingEndpoint, e, ent.From, ent.To)
		}
		if got, ok := s.Edge(ent.From, ent.To); !ok || got != e {
			return fmt.Errorf("%w: edge %v missing link %v→%v", ErrAdjacencyMismatch, e, ent.From, ent.To)
		}
		wantLinks++
		if !bidirectional || ent.Loop() {
			continue
		}
		if got, ok := s.Edge(ent.To, ent.From); !ok || got != e {
			return fmt.Errorf("%w: edge %v missing link %v→%v", ErrAdjacencyMismatch, e, ent.To, ent.From)
		}
		wantLinks++
	}

	var links int
	for _, v := range s.vertexOrder {
		nb := s.vertices[v]
		if len(nb.order) != len(nb.at) || len(nb.out) != len(nb.at) {
			return fmt.Errorf("%w: vertex %v has %d links, %d ordered", ErrCountMismatch, v, len(nb.at), len(nb.order))
		}
		for i, w := range nb.order {
			if j, ok := nb.at[w]; !ok || j != i {
				return fmt.Errorf("%w: vertex %v link %d out of order", ErrAdjacencyMismatch, v, i)
			}
			e := nb.out[i]
			ent, ok := s.edges[e]
			if !ok {
				return fmt.Errorf("%w: link %v→%v uses unknown edge %v", ErrAdjacencyMismatch, v, w, e)
			}
			forward := ent.From == v && ent.To == w
			backward := bidirectional && ent.From == w && ent.To == v
			if !forward && !backward {
				return fmt.Errorf("%w: link %v→%v via %v, pair is (%v, %v)", ErrAdjacencyMismatch, v, w, e, ent.From, ent.To)
			}
		}
		links += len(nb.order)
	}
	if links != wantLinks {
		return fmt.Errorf("%w: %d links for %d edges", ErrCountMismatch, links, len(s.edges))
	}

	return nil
}
