// File: types.go
// Role: Store, Pair and neighborhood declarations, sentinel errors, constructor.
// Concurrency:
//   - None. Store has no lock of its own.

package adjacency

import "errors"

// Sentinel errors reported by Store.Validate.
var (
	// ErrCountMismatch indicates that a catalog, its ordering, or the number of
	// adjacency links disagree on how many elements exist or where they sit.
	ErrCountMismatch = errors.New("adjacency: count mismatch")

	// ErrDanglingEndpoint indicates an edge whose endpoint is not a vertex.
	ErrDanglingEndpoint = errors.New("adjacency: edge endpoint is not a vertex")

	// ErrAdjacencyMismatch indicates a link that does not agree with its edge's incident pair.
	ErrAdjacencyMismatch = errors.New("adjacency: link does not match incident pair")
)

// Pair is the incident pair of an edge, in the order the edge was inserted.
type Pair[V comparable] struct {
	From V
	To   V
}

// Slice returns the pair as the two-element sequence [From, To].
func (p Pair[V]) Slice() []V { return []V{p.From, p.To} }

// Loop reports whether both endpoints are the same vertex.
func (p Pair[V]) Loop() bool { return p.From == p.To }

// neighborhood holds one vertex's position in vertexOrder and its outgoing
// links. order lists neighbors in insertion order and out the matching
// edges; at maps a neighbor to its index in both (nil until the first link).
type neighborhood[V, E comparable] struct {
	pos   int
	at    map[V]int
	order []V
	out   []E
}

// edgeEntry is an edge's incident pair and its position in edgeOrder.
type edgeEntry[V comparable] struct {
	Pair[V]
	pos int
}

// Store is the unsynchronized adjacency structure.
//
// vertices maps every vertex to its neighborhood. edges maps every edge to
// its incident pair. vertexOrder and edgeOrder keep insertion order for
// deterministic enumeration; the recorded positions let a View answer
// membership for the prefix it was taken over.
type Store[V, E comparable] struct {
	vertices    map[V]*neighborhood[V, E]
	vertexOrder []V

	edges     map[E]edgeEntry[V]
	edgeOrder []E
}

// New returns an empty Store.
// Complexity: O(1).
func New[V, E comparable]() *Store[V, E] {
	return &Store[V, E]{
		vertices: make(map[V]*neighborhood[V, E]),
		edges:    make(map[E]edgeEntry[V]),
	}
}
