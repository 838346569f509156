package graph

import "sort"

// Adjacency 无向好友图：用户 id -> 有序去重的邻居列表。
// 对称性由 AddEdge/RemoveEdge 原子维护，调用方不直接改里面的切片。
type Adjacency map[uint64][]uint64

// AddEdge 幂等加边；自环与重复边直接忽略，返回本次是否发生变化
func (a Adjacency) AddEdge(u, v uint64) bool {
	if u == v {
		return false
	}
	if a.hasEdge(u, v) {
		return false
	}
	a[u] = insertSorted(a[u], v)
	a[v] = insertSorted(a[v], u)
	return true
}

// RemoveEdge 对称删边，不存在则为 no-op
func (a Adjacency) RemoveEdge(u, v uint64) bool {
	if !a.hasEdge(u, v) {
		return false
	}
	a[u] = removeID(a[u], v)
	a[v] = removeID(a[v], u)
	return true
}

// Neighbors 返回邻居的副本（已排序），空表返回 nil
func (a Adjacency) Neighbors(u uint64) []uint64 {
	ns, ok := a[u]
	if !ok || len(ns) == 0 {
		return nil
	}
	return append([]uint64(nil), ns...)
}

// RemoveNode 删除节点及其在所有邻居表中的出现（账号注销用）
func (a Adjacency) RemoveNode(u uint64) {
	for _, v := range a[u] {
		a[v] = removeID(a[v], u)
	}
	delete(a, u)
}

func (a Adjacency) hasEdge(u, v uint64) bool {
	ns := a[u]
	i := sort.Search(len(ns), func(i int) bool { return ns[i] >= v })
	return i < len(ns) && ns[i] == v
}

func (a Adjacency) Clone() Adjacency {
	out := make(Adjacency, len(a))
	for id, ns := range a {
		out[id] = append([]uint64(nil), ns...)
	}
	return out
}

// Edges 每条边输出一次 (小id, 大id)，用于全图可视化与快照落库
func (a Adjacency) Edges() [][2]uint64 {
	var out [][2]uint64
	for u, ns := range a {
		for _, v := range ns {
			if u < v {
				out = append(out, [2]uint64{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

func insertSorted(ns []uint64, v uint64) []uint64 {
	i := sort.Search(len(ns), func(i int) bool { return ns[i] >= v })
	if i < len(ns) && ns[i] == v {
		return ns
	}
	ns = append(ns, 0)
	copy(ns[i+1:], ns[i:])
	ns[i] = v
	return ns
}

func removeID(ns []uint64, v uint64) []uint64 {
	i := sort.Search(len(ns), func(i int) bool { return ns[i] >= v })
	if i < len(ns) && ns[i] == v {
		return append(ns[:i], ns[i+1:]...)
	}
	return ns
}
