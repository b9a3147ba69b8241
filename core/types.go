// File: types.go
// Role: Graph declaration, construction options, sentinel errors.
// Concurrency:
//   - mu guards store for the lifetime of the Graph.
//   - mode is set once in NewGraph and never changes.

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/syncgraph/adjacency"
)

// ErrNilIdentity is the panic value raised when a nil interface is passed
// where a vertex or edge identity is required.
var ErrNilIdentity = errors.New("core: nil identity")

// GraphOption configures a Graph before creation.
type GraphOption func(c *config)

// config collects construction-time settings.
type config struct {
	directed bool
}

// WithDirected selects the directed (true) or undirected (false) variant.
// Graphs are undirected by default.
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// Graph is a thread-safe, insert-only graph over vertex identities V and edge
// identities E.
//
// The zero value is not usable; construct with NewGraph, NewDirected or
// NewUndirected.
type Graph[V, E comparable] struct {
	mu    sync.RWMutex // guards store
	store *adjacency.Store[V, E]
	mode  mode[V, E]
}

// NewGraph creates an empty Graph. Options are applied left to right.
// Complexity: O(len(opts)).
func NewGraph[V, E comparable](opts ...GraphOption) *Graph[V, E] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	g := &Graph[V, E]{store: adjacency.New[V, E]()}
	if c.directed {
		g.mode = directed[V, E]{}
	} else {
		g.mode = undirected[V, E]{}
	}

	return g
}

// NewDirected creates an empty directed Graph.
func NewDirected[V, E comparable]() *Graph[V, E] {
	return NewGraph[V, E](WithDirected(true))
}

// NewUndirected creates an empty undirected Graph.
func NewUndirected[V, E comparable]() *Graph[V, E] {
	return NewGraph[V, E](WithDirected(false))
}

// mustIdentity panics with ErrNilIdentity if x is a nil interface value.
// For non-interface type arguments the check is always false.
func mustIdentity[T comparable](x T, role string) {
	if any(x) == nil {
		panic(fmt.Errorf("%w: %s", ErrNilIdentity, role))
	}
}
