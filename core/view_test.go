package core_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tutte/core"
)

// edgeShape renders each edge as "ID:from-to" with endpoints sorted, so that
// undirected edges compare independently of insertion orientation.
func edgeShape(g *core.Graph) []string {
	out := make([]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		a, b := e.From, e.To
		if b < a {
			a, b = b, a
		}
		out = append(out, e.ID+":"+a+"-"+b)
	}

	return out
}

// triangleWithParallel builds A-B, A-B, B-C, C-A (e1..e4).
func triangleWithParallel(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewMultigraph()
	for _, p := range [][2]string{{"A", "B"}, {"A", "B"}, {"B", "C"}, {"C", "A"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

func TestClone_Independent(t *testing.T) {
	g := triangleWithParallel(t)
	c := g.Clone()

	assert.Equal(t, edgeShape(g), edgeShape(c))
	require.NoError(t, c.RemoveEdge("e1"))
	assert.Equal(t, 4, g.EdgeCount(), "source untouched")

	// Generated IDs continue the source sequence.
	id, err := c.AddEdge("A", "C")
	require.NoError(t, err)
	assert.Equal(t, "e5", id)
}

func TestDeleteEdge(t *testing.T) {
	g := triangleWithParallel(t)

	d, err := core.DeleteEdge(g, "e3")
	require.NoError(t, err)
	assert.Equal(t, []string{"e1:A-B", "e2:A-B", "e4:A-C"}, edgeShape(d))
	assert.Equal(t, 3, d.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())

	_, err = core.DeleteEdge(g, "e99")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = core.DeleteEdge(nil, "e1")
	assert.ErrorIs(t, err, core.ErrGraphNil)
}

func TestContractEdge_ParallelBecomesLoop(t *testing.T) {
	g := triangleWithParallel(t)

	c, err := core.ContractEdge(g, "e1")
	require.NoError(t, err)

	// A and B merge into w1; e2 (parallel A-B) becomes a loop, e3/e4 keep IDs.
	assert.Equal(t, []string{"C", "w1"}, c.Vertices())
	assert.Equal(t, []string{"e2:w1-w1", "e3:C-w1", "e4:C-w1"}, edgeShape(c))
	assert.Equal(t, 1, c.Stats().LoopCount)

	// Source is unchanged.
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestContractEdge_Errors(t *testing.T) {
	g := core.NewMultigraph()
	_, _ = g.AddEdge("A", "A")

	_, err := core.ContractEdge(g, "e1")
	assert.ErrorIs(t, err, core.ErrContractLoop)
	_, err = core.ContractEdge(g, "e2")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = core.ContractEdge(nil, "e1")
	assert.ErrorIs(t, err, core.ErrGraphNil)
}

func TestContractEdge_FreshVertexID(t *testing.T) {
	g := core.NewMultigraph()
	_, _ = g.AddEdge("w1", "B")
	_, _ = g.AddEdge("B", "C")

	c, err := core.ContractEdge(g, "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "w2"}, c.Vertices(), "w1 is taken, merge must pick w2")

	c2, err := core.ContractEdge(c, "e2")
	require.NoError(t, err)
	assert.Equal(t, []string{"w3"}, c2.Vertices())
	assert.Equal(t, 0, c2.EdgeCount())
}

func TestContractEdge_SimpleSourceYieldsMultigraph(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")

	c, err := core.ContractEdge(g, "e1")
	require.NoError(t, err)
	assert.True(t, c.Multigraph())
	assert.True(t, c.Looped())
	assert.Equal(t, []string{"e2:C-w1", "e3:C-w1"}, edgeShape(c))
}

// Deleting and contracting distinct edges commute up to the merged vertex name.
func TestDeleteContract_Commute(t *testing.T) {
	g := triangleWithParallel(t)

	a, err := core.DeleteEdge(g, "e3")
	require.NoError(t, err)
	a, err = core.ContractEdge(a, "e1")
	require.NoError(t, err)

	b, err := core.ContractEdge(g, "e1")
	require.NoError(t, err)
	b, err = core.DeleteEdge(b, "e3")
	require.NoError(t, err)

	assert.Equal(t, edgeShape(a), edgeShape(b))
	assert.Equal(t, a.Vertices(), b.Vertices())
}

func TestInducedSubgraph(t *testing.T) {
	g := triangleWithParallel(t)
	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true})

	got := sub.Vertices()
	sort.Strings(got)
	assert.Equal(t, []string{"A", "B"}, got)
	assert.Equal(t, []string{"e1:A-B", "e2:A-B"}, edgeShape(sub))
}
