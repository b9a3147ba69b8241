// SPDX-License-Identifier: MIT
// Package: syncgraph/builder
//
// api.go - public entry points: Sink, Constructor, BuildGraph and Build.
//
// Contract:
//   - One orchestrator per target: BuildGraph creates the graph, Build fills
//     an existing one. Both resolve options once and run constructors in order.
//   - Same scheme, options, seed and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/syncgraph/core"
)

// Sink receives index-level vertices and edges from a Constructor.
type Sink interface {
	// Directed reports whether the target graph is directed.
	Directed() bool
	// AddVertex adds vertex i. Adding a present vertex is not an error.
	AddVertex(i int) error
	// AddEdge links from to to with the next edge identity of the build.
	AddEdge(from, to int) error
}

// Constructor emits a topology into a Sink using the resolved configuration.
// Constructors validate their parameters before emitting anything and
// return sentinel errors instead of panicking.
type Constructor func(s Sink, cfg builderConfig) error

// graphSink adapts a core.Graph to Sink through a Scheme.
type graphSink[V, E comparable] struct {
	g      *core.Graph[V, E]
	scheme Scheme[V, E]
	seq    int
}

func (s *graphSink[V, E]) Directed() bool { return s.g.Directed() }

func (s *graphSink[V, E]) AddVertex(i int) error {
	s.g.AddVertex(s.scheme.Vertex(i))

	return nil
}

func (s *graphSink[V, E]) AddEdge(from, to int) error {
	e := s.scheme.Edge(s.seq, from, to)
	s.seq++
	if !s.g.AddEdge(e, s.scheme.Vertex(from), s.scheme.Vertex(to)) {
		return fmt.Errorf("%w: edge %v (%d→%d)", ErrEdgeRefused, e, from, to)
	}

	return nil
}

// BuildGraph creates a core.Graph with gopts and applies cons in order.
// The first failing constructor aborts the build; the partial graph is
// discarded.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph[V, E comparable](scheme Scheme[V, E], gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[V, E], error) {
	g := core.NewGraph[V, E](gopts...)
	if err := Build(g, scheme, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Build applies cons in order to an existing graph. Unlike BuildGraph it
// leaves whatever the constructors emitted before a failure in place, since
// the graph is insert-only. A nil g yields ErrConstructFailed.
func Build[V, E comparable](g *core.Graph[V, E], scheme Scheme[V, E], bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Build: nil graph: %w", ErrConstructFailed)
	}
	if !scheme.complete() {
		return fmt.Errorf("Build: scheme without vertex or edge mapping: %w", ErrConstructFailed)
	}

	cfg := newBuilderConfig(bopts...)
	sink := &graphSink[V, E]{g: g, scheme: scheme}
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(sink, cfg); err != nil {
			return err
		}
	}

	return nil
}

// addVertices emits vertices 0..n-1 in ascending order.
func addVertices(s Sink, n int) error {
	for i := 0; i < n; i++ {
		if err := s.AddVertex(i); err != nil {
			return err
		}
	}

	return nil
}
