package store

import (
	"sort"
	"sync"
	"time"

	"NovaCom/internal/graph"
	"NovaCom/internal/model"
)

// CommunityIDBase 社区 id 计数器的保留起点，与历史数据区分
const CommunityIDBase uint64 = 100

// Store 全量内存状态：用户、好友图、社区。单把读写锁串行化所有写操作，
// BFS 等读路径持读锁，保证每次遍历/快照看到一致的状态。
type Store struct {
	mu sync.RWMutex

	users         map[uint64]*model.User
	usernameIndex map[string]uint64
	adj           graph.Adjacency
	communities   map[uint64]*model.Community

	nextUserID      uint64
	nextCommunityID uint64

	now func() string
}

func New() *Store {
	return &Store{
		users:           make(map[uint64]*model.User),
		usernameIndex:   make(map[string]uint64),
		adj:             make(graph.Adjacency),
		communities:     make(map[uint64]*model.Community),
		nextUserID:      1,
		nextCommunityID: CommunityIDBase,
		now:             func() string { return time.Now().Format("15:04") },
	}
}

// Snapshot 持久化协作方看到的完整一致状态
type Snapshot struct {
	Users       []model.User
	Edges       [][2]uint64
	Communities []model.Community
}

// Snapshot 在读锁内深拷贝全量状态，flush 永远不会看到写了一半的数据
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Edges: s.adj.Edges()}
	snap.Users = make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		snap.Users = append(snap.Users, u.Clone())
	}
	sort.Slice(snap.Users, func(i, j int) bool { return snap.Users[i].ID < snap.Users[j].ID })

	snap.Communities = make([]model.Community, 0, len(s.communities))
	for _, c := range s.communities {
		snap.Communities = append(snap.Communities, c.Clone())
	}
	sort.Slice(snap.Communities, func(i, j int) bool { return snap.Communities[i].ID < snap.Communities[j].ID })
	return snap
}

// Hydrate 启动时从持久化快照恢复内存态，并把所有自增计数器
// 推到已加载 id 的严格上方（社区 id 不低于保留起点 100）
func (s *Store) Hydrate(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range snap.Users {
		u := snap.Users[i].Clone()
		if u.PendingRequests == nil {
			u.PendingRequests = make(map[uint64]struct{})
		}
		s.users[u.ID] = &u
		s.usernameIndex[u.Username] = u.ID
		if u.ID >= s.nextUserID {
			s.nextUserID = u.ID + 1
		}
	}
	for _, e := range snap.Edges {
		s.adj.AddEdge(e[0], e[1])
	}
	for i := range snap.Communities {
		c := snap.Communities[i].Clone()
		if c.NextMsgID == 0 {
			c.NextMsgID = 1
		}
		for _, m := range c.Feed {
			if m.ID >= c.NextMsgID {
				c.NextMsgID = m.ID + 1
			}
		}
		s.communities[c.ID] = &c
		if c.ID >= s.nextCommunityID {
			s.nextCommunityID = c.ID + 1
		}
	}
}
