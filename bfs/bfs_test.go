package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tutte/bfs"
	"github.com/katalvlaran/tutte/core"
)

func multigraph(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewMultigraph()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

func TestComponents(t *testing.T) {
	g := multigraph(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"D", "E"}, [2]string{"F", "F"})
	require.NoError(t, g.AddVertex("G"))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D", "E"}, {"F"}, {"G"}}, comps)

	k, err := bfs.CountComponents(g)
	require.NoError(t, err)
	assert.Equal(t, 4, k)

	k, err = bfs.CountComponents(core.NewGraph())
	require.NoError(t, err)
	assert.Zero(t, k)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.ComponentGraphs(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestComponents_VisitOrder(t *testing.T) {
	// A-B-C-D-A with a loop on A and a parallel A-B.
	g := multigraph(t,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"},
		[2]string{"D", "A"}, [2]string{"A", "A"}, [2]string{"A", "B"})

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "D", "C"}}, comps)
}

func TestComponents_DirectedIsWeak(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, p := range [][2]string{{"B", "A"}, {"B", "C"}, {"X", "Y"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"X", "Y"}}, comps)
}

func TestComponentGraphs(t *testing.T) {
	g := multigraph(t,
		[2]string{"a", "b"}, [2]string{"a", "b"}, [2]string{"b", "c"},
		[2]string{"x", "x"}, [2]string{"x", "y"})
	require.NoError(t, g.AddVertex("solo"))

	parts, err := bfs.ComponentGraphs(g)
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.Equal(t, []string{"a", "b", "c"}, parts[0].Vertices())
	assert.Equal(t, 3, parts[0].EdgeCount())
	assert.Equal(t, []string{"solo"}, parts[1].Vertices())
	assert.Zero(t, parts[1].EdgeCount())
	assert.Equal(t, []string{"x", "y"}, parts[2].Vertices())
	assert.Equal(t, 2, parts[2].EdgeCount())

	// edge IDs survive
	var ids []string
	for _, part := range parts {
		for _, e := range part.Edges() {
			ids = append(ids, e.ID)
		}
	}
	assert.ElementsMatch(t, []string{"e1", "e2", "e3", "e4", "e5"}, ids)
}
