package graph_test

import (
	"testing"

	"NovaCom/internal/graph"

	"github.com/stretchr/testify/assert"
)

// chain 构造 1-2-3-4-5 链
func chain(ids ...uint64) graph.Adjacency {
	a := make(graph.Adjacency)
	for i := 0; i+1 < len(ids); i++ {
		a.AddEdge(ids[i], ids[i+1])
	}
	return a
}

func TestDegreeChain(t *testing.T) {
	t.Parallel()
	a := chain(1, 2, 3, 4, 5)

	assert.Equal(t, 0, graph.Degree(a, 1, 1))
	assert.Equal(t, 1, graph.Degree(a, 1, 2))
	assert.Equal(t, 2, graph.Degree(a, 1, 3))
	assert.Equal(t, 3, graph.Degree(a, 1, 4))
	// 第 4 跳超出上限
	assert.Equal(t, graph.Unreachable, graph.Degree(a, 1, 5))
}

func TestDegreeDisconnected(t *testing.T) {
	t.Parallel()
	a := chain(1, 2)
	a.AddEdge(10, 11)

	assert.Equal(t, graph.Unreachable, graph.Degree(a, 1, 10))
}

func TestDegreeIsolatedStart(t *testing.T) {
	t.Parallel()
	a := chain(1, 2)

	// 没有任何边的起点：到自己仍是 0，其它不可达
	assert.Equal(t, 0, graph.Degree(a, 99, 99))
	assert.Equal(t, graph.Unreachable, graph.Degree(a, 99, 1))
}

func TestDegreeShortestPathWins(t *testing.T) {
	t.Parallel()
	// 1-2-3 和 1-3 同时存在，取短的
	a := chain(1, 2, 3)
	a.AddEdge(1, 3)

	assert.Equal(t, 1, graph.Degree(a, 1, 3))
}

func TestAtDegreeExactDistance(t *testing.T) {
	t.Parallel()
	a := chain(1, 2, 3, 4, 5)
	a.AddEdge(2, 6)

	assert.Equal(t, []uint64{1}, graph.AtDegree(a, 1, 0))
	assert.Equal(t, []uint64{2}, graph.AtDegree(a, 1, 1))
	assert.Equal(t, []uint64{3, 6}, graph.AtDegree(a, 1, 2))
	assert.Equal(t, []uint64{4}, graph.AtDegree(a, 1, 3))
	// 超过上限为空
	assert.Empty(t, graph.AtDegree(a, 1, 4))
	assert.Empty(t, graph.AtDegree(a, 1, -1))
}

func TestAtDegreeNoDeeperExpansion(t *testing.T) {
	t.Parallel()
	// 菱形：1-2, 1-3, 2-4, 3-4；4 只应出现在 degree 2
	a := make(graph.Adjacency)
	a.AddEdge(1, 2)
	a.AddEdge(1, 3)
	a.AddEdge(2, 4)
	a.AddEdge(3, 4)

	assert.Equal(t, []uint64{2, 3}, graph.AtDegree(a, 1, 1))
	assert.Equal(t, []uint64{4}, graph.AtDegree(a, 1, 2))
	assert.Empty(t, graph.AtDegree(a, 1, 3))
}

func TestDistancesBall(t *testing.T) {
	t.Parallel()
	a := chain(1, 2, 3, 4, 5)

	dist := graph.Distances(a, 1)
	assert.Equal(t, map[uint64]int{1: 0, 2: 1, 3: 2, 4: 3}, dist)
}
