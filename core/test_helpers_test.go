// Package core_test contains fixtures and assertion helpers shared by the
// core tests.
//
// Concurrency rule: helpers take *testing.T and must only be called from the
// test goroutine. Workers report failures as errors instead.

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/syncgraph/core"
)

// Concurrency sizes used by the stress tests.
const (
	NWorkers      = 5
	NEdgeOps      = 500
	NVertexBound  = 50
	NPathFactor   = 3
	NReaders      = 32
	NReaderPasses = 50
)

// assembleGraph builds the twelve-vertex fixture used by the path tests.
// Edge identities are sequential ints. In undirected mode 11–7 duplicates
// the earlier 7–11 and is refused.
//
// Directed layout (arrow heads marked *):
//
//	          (3)---------------*(4)-------*(5)
//	         * * \                *           \
//	       /   |   \              |             \
//	     /     |     \            |               \
//	   /       |       *          |                 *
//	(1)------*(2)      (6)       (7)------*(8)-----*(9)--
//	  \        *       /          * *       |       / *  \
//	    \      |     /            |  \      |     /    \_/
//	      \    |   /              |    \    |   /
//	        *  | *                *      \  * *
//	         (10)--------------*(11)*-----(12)
func assembleGraph(t *testing.T, g *core.Graph[int, int]) {
	t.Helper()

	links := [][2]int{
		{1, 2}, {1, 3}, {1, 10}, {2, 3}, {3, 4}, {3, 6}, {4, 5}, {5, 9},
		{6, 10}, {7, 4}, {7, 8}, {7, 11}, {8, 9}, {8, 12}, {9, 9}, {9, 12},
		{10, 2}, {10, 11},
	}
	eid := 0
	for _, l := range links {
		eid++
		require.True(t, g.AddEdge(eid, l[0], l[1]), "AddEdge(%d,%d)", l[0], l[1])
	}

	eid++
	require.Equal(t, g.Directed(), g.AddEdge(eid, 11, 7), "AddEdge(11,7)")

	for _, l := range [][2]int{{12, 7}, {12, 11}} {
		eid++
		require.True(t, g.AddEdge(eid, l[0], l[1]), "AddEdge(%d,%d)", l[0], l[1])
	}

	verifyGraphConnections(t, g)
}

// verifyConnections checks that e, v1 and v2 agree across Edge, IsConnection,
// IncidentEdges and IncidentVertices for the graph's mode.
func verifyConnections[V, E comparable](t *testing.T, g *core.Graph[V, E], e E, v1, v2 V) {
	t.Helper()

	pair := g.IncidentVertices(e)
	inc1 := g.IncidentEdges(v1)
	inc2 := g.IncidentEdges(v2)
	e12, ok12 := g.Edge(v1, v2)
	e21, ok21 := g.Edge(v2, v1)

	if ok12 && e12 == e {
		require.Contains(t, inc1, e)
		if !g.Directed() {
			require.Contains(t, inc2, e)
		}
	}
	if ok21 && e21 == e {
		require.Contains(t, inc2, e)
		if !g.Directed() {
			require.Contains(t, inc1, e)
		}
	}

	require.Equal(t, g.IsConnection(v1, v2), ok12, "IsConnection(%v,%v)", v1, v2)
	require.Equal(t, g.IsConnection(v2, v1), ok21, "IsConnection(%v,%v)", v2, v1)

	if !ok12 || e12 != e {
		return
	}
	require.Len(t, pair, 2)
	require.True(t, g.IsConnection(v1, v2))
	if g.Directed() {
		require.Equal(t, []V{v1, v2}, pair)
		return
	}
	require.True(t, g.IsConnection(v2, v1))
	require.True(t, (pair[0] == v1 && pair[1] == v2) || (pair[0] == v2 && pair[1] == v1),
		"pair %v does not join %v and %v", pair, v1, v2)
}

// verifyGraphConnections runs verifyConnections for every edge against every
// ordered vertex pair. O(E·V²): keep it for small fixtures.
func verifyGraphConnections[V, E comparable](t *testing.T, g *core.Graph[V, E]) {
	t.Helper()

	require.NoError(t, g.Validate())
	vertices := g.Vertices()
	for _, e := range g.Edges() {
		for _, v1 := range vertices {
			for _, v2 := range vertices {
				verifyConnections(t, g, e, v1, v2)
			}
		}
	}
}

// verifyEdgeEndpoints is the O(E) consistency scan for large graphs: every
// edge's pair must be linked through that edge in the graph's mode.
func verifyEdgeEndpoints[V, E comparable](g *core.Graph[V, E]) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if got, want := len(g.Vertices()), g.VertexCount(); got != want {
		return fmt.Errorf("Vertices() has %d entries, VertexCount()=%d", got, want)
	}
	if got, want := len(g.Edges()), g.EdgeCount(); got != want {
		return fmt.Errorf("Edges() has %d entries, EdgeCount()=%d", got, want)
	}
	for _, e := range g.Edges() {
		pair := g.IncidentVertices(e)
		if len(pair) != 2 {
			return fmt.Errorf("edge %v: incident pair %v", e, pair)
		}
		if got, ok := g.Edge(pair[0], pair[1]); !ok || got != e {
			return fmt.Errorf("edge %v: missing link %v→%v", e, pair[0], pair[1])
		}
		if g.Directed() {
			continue
		}
		if got, ok := g.Edge(pair[1], pair[0]); !ok || got != e {
			return fmt.Errorf("edge %v: missing link %v→%v", e, pair[1], pair[0])
		}
	}

	return nil
}

// verifyPath asserts that path equals steps exactly.
func verifyPath[V comparable](t *testing.T, path []V, steps ...V) {
	t.Helper()
	require.Equal(t, steps, path)
}

// verifyHops asserts that every consecutive pair of path is a direct link.
func verifyHops[V, E comparable](t *testing.T, g *core.Graph[V, E], path []V) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		_, ok := g.Edge(path[i-1], path[i])
		require.True(t, ok, "hop %v→%v of %v is not a link", path[i-1], path[i], path)
	}
}

// checker drives a Graph through insertions and asserts counts and
// connectivity before and after each step. Methods return the receiver so
// scenarios read as one chain.
type checker[V, E comparable] struct {
	t *testing.T
	g *core.Graph[V, E]
}

func newChecker[V, E comparable](t *testing.T, directed bool) *checker[V, E] {
	return &checker[V, E]{t: t, g: core.NewGraph[V, E](core.WithDirected(directed))}
}

// vertexRef is a vertex together with whether it must already exist.
type vertexRef[V comparable] struct {
	v     V
	exist bool
}

// edgeRef is an edge together with whether it must already exist.
type edgeRef[E comparable] struct {
	e     E
	exist bool
}

func origV[V comparable](v V) vertexRef[V]  { return vertexRef[V]{v: v} }
func existV[V comparable](v V) vertexRef[V] { return vertexRef[V]{v: v, exist: true} }
func origE[E comparable](e E) edgeRef[E]    { return edgeRef[E]{e: e} }
func existE[E comparable](e E) edgeRef[E]   { return edgeRef[E]{e: e, exist: true} }

func added(exist bool) int {
	if exist {
		return 0
	}

	return 1
}

func (c *checker[V, E]) vertexCount(n int) *checker[V, E] {
	c.t.Helper()
	require.Equal(c.t, n, c.g.VertexCount())
	require.Len(c.t, c.g.Vertices(), n)

	return c
}

func (c *checker[V, E]) edgeCount(n int) *checker[V, E] {
	c.t.Helper()
	require.Equal(c.t, n, c.g.EdgeCount())
	require.Len(c.t, c.g.Edges(), n)

	return c
}

func (c *checker[V, E]) isEmpty() *checker[V, E] {
	c.t.Helper()

	return c.vertexCount(0).edgeCount(0)
}

// addOrigVertex inserts a vertex that must be new.
func (c *checker[V, E]) addOrigVertex(v V) *checker[V, E] {
	c.t.Helper()
	nv, ne := c.g.VertexCount(), c.g.EdgeCount()

	require.False(c.t, c.g.HasVertex(v))
	require.True(c.t, c.g.AddVertex(v))
	require.True(c.t, c.g.HasVertex(v))

	require.Equal(c.t, nv+1, c.g.VertexCount())
	require.Equal(c.t, ne, c.g.EdgeCount())

	return c
}

// addExistVertex re-inserts a vertex that must already be present.
func (c *checker[V, E]) addExistVertex(v V) *checker[V, E] {
	c.t.Helper()
	nv, ne := c.g.VertexCount(), c.g.EdgeCount()

	require.True(c.t, c.g.HasVertex(v))
	require.False(c.t, c.g.AddVertex(v))
	require.True(c.t, c.g.HasVertex(v))

	require.Equal(c.t, nv, c.g.VertexCount())
	require.Equal(c.t, ne, c.g.EdgeCount())

	return c
}

// addEdge inserts e between two not-yet-connected vertices. It succeeds iff
// the edge identity is new.
func (c *checker[V, E]) addEdge(e edgeRef[E], v1, v2 vertexRef[V]) *checker[V, E] {
	c.t.Helper()
	nv, ne := c.g.VertexCount(), c.g.EdgeCount()

	require.Equal(c.t, v1.exist, c.g.HasVertex(v1.v))
	require.Equal(c.t, v2.exist, c.g.HasVertex(v2.v))
	require.Equal(c.t, e.exist, c.g.HasEdge(e.e))

	require.False(c.t, c.g.IsConnection(v1.v, v2.v))
	if !c.g.Directed() {
		require.False(c.t, c.g.IsConnection(v2.v, v1.v))
	}

	c.verifyPair(e.e, e.exist, v1.v, v2.v)
	ok := c.g.AddEdge(e.e, v1.v, v2.v)
	require.NotEqual(c.t, e.exist, ok)
	c.verifyPair(e.e, ok || e.exist, v1.v, v2.v)

	require.True(c.t, c.g.HasEdge(e.e))
	if ok {
		require.True(c.t, c.g.HasVertex(v1.v))
		require.True(c.t, c.g.HasVertex(v2.v))
		got, linked := c.g.Edge(v1.v, v2.v)
		require.True(c.t, linked)
		require.Equal(c.t, e.e, got)
	}

	wantV := nv
	if ok {
		wantV += added(v1.exist) + added(v2.exist)
		if v1.v == v2.v && !v1.exist {
			wantV--
		}
	}
	require.Equal(c.t, wantV, c.g.VertexCount())
	require.Equal(c.t, ne+added(e.exist), c.g.EdgeCount())

	return c
}

// addLinkedEdge tries to insert e between two vertices that are already
// connected; the insert must be refused whatever e is.
func (c *checker[V, E]) addLinkedEdge(e edgeRef[E], v1, v2 V) *checker[V, E] {
	c.t.Helper()
	nv, ne := c.g.VertexCount(), c.g.EdgeCount()

	require.True(c.t, c.g.HasVertex(v1))
	require.True(c.t, c.g.HasVertex(v2))
	require.Equal(c.t, e.exist, c.g.HasEdge(e.e))

	require.True(c.t, c.g.IsConnection(v1, v2))
	if !c.g.Directed() {
		require.True(c.t, c.g.IsConnection(v2, v1))
	}

	c.verifyPair(e.e, e.exist, v1, v2)
	require.False(c.t, c.g.AddEdge(e.e, v1, v2))
	c.verifyPair(e.e, e.exist, v1, v2)

	require.Equal(c.t, e.exist, c.g.HasEdge(e.e))
	require.Equal(c.t, nv, c.g.VertexCount())
	require.Equal(c.t, ne, c.g.EdgeCount())

	return c
}

func (c *checker[V, E]) verifyPair(e E, exist bool, v1, v2 V) {
	c.t.Helper()
	pair := c.g.IncidentVertices(e)
	require.Equal(c.t, exist, len(pair) == 2)
	require.Equal(c.t, !exist, len(pair) == 0)
	verifyConnections(c.t, c.g, e, v1, v2)
}
