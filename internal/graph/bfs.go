package graph

// MaxHops 关系度查询与推荐的 BFS 跳数上限
const MaxHops = 3

// Unreachable 3 跳内不可达
const Unreachable = -1

type bfsItem struct {
	id    uint64
	depth int
}

// Degree 返回 start 到 target 的最短好友路径长度（≤3），start==target 时为 0
func Degree(a Adjacency, start, target uint64) int {
	if start == target {
		return 0
	}
	if _, ok := a[start]; !ok {
		return Unreachable
	}
	queue := []bfsItem{{start, 0}}
	visited := map[uint64]struct{}{start: {}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.id == target {
			return cur.depth
		}
		if cur.depth >= MaxHops {
			continue
		}
		for _, n := range a[cur.id] {
			if _, seen := visited[n]; !seen {
				visited[n] = struct{}{}
				queue = append(queue, bfsItem{n, cur.depth + 1})
			}
		}
	}
	return Unreachable
}

// AtDegree 收集与 start 恰好相距 degree 跳的节点（升序）。degree 0 恒为 {start}。
// 到达目标深度的节点不再继续扩展。
func AtDegree(a Adjacency, start uint64, degree int) []uint64 {
	if degree < 0 {
		return nil
	}
	var result []uint64
	queue := []bfsItem{{start, 0}}
	visited := map[uint64]struct{}{start: {}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth == degree {
			result = insertSorted(result, cur.id)
			continue
		}
		if cur.depth > degree || cur.depth >= MaxHops {
			continue
		}
		for _, n := range a[cur.id] {
			if _, seen := visited[n]; !seen {
				visited[n] = struct{}{}
				queue = append(queue, bfsItem{n, cur.depth + 1})
			}
		}
	}
	return result
}

// Distances 一次 BFS 得到 start 到 3 跳球内每个节点的最短距离（含自身 0）
func Distances(a Adjacency, start uint64) map[uint64]int {
	dist := map[uint64]int{start: 0}
	queue := []bfsItem{{start, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth >= MaxHops {
			continue
		}
		for _, n := range a[cur.id] {
			if _, seen := dist[n]; !seen {
				dist[n] = cur.depth + 1
				queue = append(queue, bfsItem{n, cur.depth + 1})
			}
		}
	}
	return dist
}
