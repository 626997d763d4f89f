package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tutte/builder"
	"github.com/katalvlaran/tutte/core"
	"github.com/katalvlaran/tutte/matrix"
)

// fromRows builds a Dense from int64 rows.
func fromRows(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := matrix.NewDense(len(rows), cols)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, big.NewInt(v)))
		}
	}

	return m
}

func TestDense_Accessors(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, big.NewInt(7)))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Int64())

	v.SetInt64(99) // At returns a copy
	v, _ = m.At(1, 2)
	assert.Equal(t, int64(7), v.Int64())

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, big.NewInt(1)), matrix.ErrOutOfRange)

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	assert.Equal(t, "[0, 0, 0]\n[0, 0, 7]\n", m.String())
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int64
		want int64
	}{
		{"empty", [][]int64{}, 1},
		{"1x1", [][]int64{{-4}}, -4},
		{"2x2", [][]int64{{3, 8}, {4, 6}}, -14},
		{"3x3", [][]int64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"zero pivot needs swap", [][]int64{{0, 1}, {1, 0}}, -1},
		{"singular", [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"zero column", [][]int64{{0, 1}, {0, 5}}, 0},
		{"4x4 swap mid-way", [][]int64{
			{1, 2, 3, 4},
			{2, 4, 7, 9},
			{0, 1, 0, 2},
			{1, 0, 2, 1},
		}, -2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := fromRows(t, tc.rows)
			before := m.String()
			got, err := matrix.Determinant(m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Int64())
			assert.Equal(t, before, m.String(), "input must not be modified")
		})
	}

	_, err := matrix.Determinant(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Determinant(fromRows(t, [][]int64{{1, 2}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestLaplacian(t *testing.T) {
	g := core.NewMultigraph()
	for _, p := range [][2]string{{"a", "b"}, {"a", "b"}, {"b", "c"}, {"c", "c"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	l, err := matrix.NewLaplacian(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, l.Vertices)
	assert.Equal(t, 1, l.VertexIndex["b"])
	assert.Equal(t, "[2, -2, 0]\n[-2, 3, -1]\n[0, -1, 1]\n", l.Mat.String())

	minor, err := l.Minor(0)
	require.NoError(t, err)
	assert.Equal(t, "[3, -1]\n[-1, 1]\n", minor.String())
	_, err = l.Minor(3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewLaplacian(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
	_, err = matrix.NewLaplacian(core.NewGraph(core.WithDirected(true)))
	assert.ErrorIs(t, err, matrix.ErrDirectedGraph)
}

func TestSpanningTrees(t *testing.T) {
	tests := []struct {
		name string
		cons builder.Constructor
		want string
	}{
		{"K5 (Cayley 5^3)", builder.Complete(5), "125"},
		{"K8 (Cayley 8^6)", builder.Complete(8), "262144"},
		{"C6", builder.Cycle(6), "6"},
		{"Path(5)", builder.Path(5), "1"},
		{"single vertex", builder.Path(1), "1"},
		{"K3,3", builder.CompleteBipartite(3, 3), "81"},
		{"Grid 3x3", builder.Grid(3, 3), "192"},
		{"Wheel(6)", builder.Wheel(6), "121"},
		{"Dipole(4)", builder.Dipole(4), "4"},
		{"Bouquet(3)", builder.Bouquet(3), "1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildMultigraph(nil, tc.cons)
			require.NoError(t, err)
			got, err := matrix.SpanningTrees(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}

	// Disconnected: two components.
	g, err := builder.BuildMultigraph(nil, builder.Path(2))
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("island"))
	got, err := matrix.SpanningTrees(g)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Sign())

	got, err = matrix.SpanningTrees(core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())
}
