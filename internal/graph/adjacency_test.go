package graph_test

import (
	"testing"

	"NovaCom/internal/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeSymmetric(t *testing.T) {
	t.Parallel()
	a := make(graph.Adjacency)

	require.True(t, a.AddEdge(1, 2))
	assert.Equal(t, []uint64{2}, a.Neighbors(1))
	assert.Equal(t, []uint64{1}, a.Neighbors(2))
}

func TestAddEdgeIdempotent(t *testing.T) {
	t.Parallel()
	a := make(graph.Adjacency)

	require.True(t, a.AddEdge(1, 2))
	assert.False(t, a.AddEdge(1, 2))
	assert.False(t, a.AddEdge(2, 1))
	assert.Len(t, a.Neighbors(1), 1)
	assert.Len(t, a.Neighbors(2), 1)
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	t.Parallel()
	a := make(graph.Adjacency)

	assert.False(t, a.AddEdge(7, 7))
	assert.Empty(t, a.Neighbors(7))
}

func TestRemoveEdgeBothSides(t *testing.T) {
	t.Parallel()
	a := make(graph.Adjacency)
	a.AddEdge(1, 2)
	a.AddEdge(1, 3)

	require.True(t, a.RemoveEdge(2, 1))
	assert.Equal(t, []uint64{3}, a.Neighbors(1))
	assert.Empty(t, a.Neighbors(2))

	// 再删一次是 no-op
	assert.False(t, a.RemoveEdge(1, 2))
}

func TestNeighborsSortedAndCopied(t *testing.T) {
	t.Parallel()
	a := make(graph.Adjacency)
	a.AddEdge(1, 5)
	a.AddEdge(1, 2)
	a.AddEdge(1, 9)

	n := a.Neighbors(1)
	assert.Equal(t, []uint64{2, 5, 9}, n)

	// 返回的是副本，改它不影响内部状态
	n[0] = 42
	assert.Equal(t, []uint64{2, 5, 9}, a.Neighbors(1))
}

func TestRemoveNodeCleansAllEdges(t *testing.T) {
	t.Parallel()
	a := make(graph.Adjacency)
	a.AddEdge(1, 2)
	a.AddEdge(1, 3)
	a.AddEdge(2, 3)

	a.RemoveNode(1)
	assert.Empty(t, a.Neighbors(1))
	assert.Equal(t, []uint64{3}, a.Neighbors(2))
	assert.Equal(t, []uint64{2}, a.Neighbors(3))
}

func TestEdgesDeduplicated(t *testing.T) {
	t.Parallel()
	a := make(graph.Adjacency)
	a.AddEdge(2, 1)
	a.AddEdge(2, 3)

	edges := a.Edges()
	assert.Equal(t, [][2]uint64{{1, 2}, {2, 3}}, edges)
}
