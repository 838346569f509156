package store

import (
	"NovaCom/internal/graph"
	"NovaCom/internal/model"
)

// 好友申请结果状态，façade 直接透传给前端
const (
	RequestSent           = "request_sent"
	RequestAlreadyFriends = "already_friends"
	RequestPending        = "request_pending"
)

// 关系状态
const (
	RelationSelf            = "self"
	RelationFriend          = "friend"
	RelationPendingSent     = "pending_sent"
	RelationPendingReceived = "pending_received"
	RelationNone            = "none"
)

// SendRequest 向 target 的收件箱写入一条好友申请
func (s *Store) SendRequest(senderID, targetID uint64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if senderID == targetID {
		return "", ErrSelfReference
	}
	target, ok := s.users[targetID]
	if !ok {
		return "", ErrNotFound
	}
	for _, f := range s.adj.Neighbors(senderID) {
		if f == targetID {
			return RequestAlreadyFriends, nil
		}
	}
	if _, pending := target.PendingRequests[senderID]; pending {
		return RequestPending, nil
	}
	target.PendingRequests[senderID] = struct{}{}
	return RequestSent, nil
}

// AcceptRequest 申请存在时建立好友边（双向、原子），返回是否发生变化
func (s *Store) AcceptRequest(userID, requesterID uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	me, ok := s.users[userID]
	if !ok {
		return false
	}
	if _, ok := s.users[requesterID]; !ok {
		return false
	}
	if _, pending := me.PendingRequests[requesterID]; !pending {
		return false
	}
	delete(me.PendingRequests, requesterID)
	s.adj.AddEdge(userID, requesterID)
	return true
}

func (s *Store) DeclineRequest(userID, requesterID uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	me, ok := s.users[userID]
	if !ok {
		return false
	}
	if _, pending := me.PendingRequests[requesterID]; !pending {
		return false
	}
	delete(me.PendingRequests, requesterID)
	return true
}

// PendingRequests 收到的申请（只返回仍存在的用户）
func (s *Store) PendingRequests(userID uint64) []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	me, ok := s.users[userID]
	if !ok {
		return nil
	}
	var out []model.User
	for rid := range me.PendingRequests {
		if r, ok := s.users[rid]; ok {
			out = append(out, r.Clone())
		}
	}
	sortUsersByID(out)
	return out
}

func (s *Store) RelationshipStatus(me, target uint64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if me == target {
		return RelationSelf
	}
	for _, f := range s.adj.Neighbors(me) {
		if f == target {
			return RelationFriend
		}
	}
	if t, ok := s.users[target]; ok {
		if _, sent := t.PendingRequests[me]; sent {
			return RelationPendingSent
		}
	}
	if m, ok := s.users[me]; ok {
		if _, recv := m.PendingRequests[target]; recv {
			return RelationPendingReceived
		}
	}
	return RelationNone
}

// AddFriendship 幂等加边；自环拒绝，两侧同时成功
func (s *Store) AddFriendship(u, v uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == v {
		return false, ErrSelfReference
	}
	return s.adj.AddEdge(u, v), nil
}

func (s *Store) RemoveFriendship(u, v uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adj.RemoveEdge(u, v)
}

// Friends 直接好友（解析为仍存在的用户，id 升序）
func (s *Store) Friends(userID uint64) []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.User
	for _, fid := range s.adj.Neighbors(userID) {
		if f, ok := s.users[fid]; ok {
			out = append(out, f.Clone())
		}
	}
	return out
}

// Degree 关系度查询，3 跳封顶
func (s *Store) Degree(start, target uint64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.users[start]; !ok {
		return graph.Unreachable
	}
	return graph.Degree(s.adj, start, target)
}

// ConnectionsAtDegree 恰好相距 d 跳的用户
func (s *Store) ConnectionsAtDegree(start uint64, degree int) []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.users[start]; !ok {
		return nil
	}
	var out []model.User
	for _, id := range graph.AtDegree(s.adj, start, degree) {
		if u, ok := s.users[id]; ok {
			out = append(out, u.Clone())
		}
	}
	return out
}

func (s *Store) MutualRecommendations(userID uint64) []graph.Mutual {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return graph.MutualRecommendations(s.adj, userID)
}

func (s *Store) WeightedRecommendations(userID uint64) []graph.Weighted {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return graph.WeightedRecommendations(s.adj, userID)
}

func (s *Store) CommunityRecommendations(userID uint64) []graph.CommunityScore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comms := make([]graph.MemberSet, 0, len(s.communities))
	for _, c := range s.communities {
		comms = append(comms, graph.MemberSet{ID: c.ID, Members: c.Members})
	}
	return graph.CommunityRecommendations(s.adj, userID, comms)
}

// GraphSnapshot 全图节点与去重边，供可视化
func (s *Store) GraphSnapshot() ([]model.User, [][2]uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u.Clone())
	}
	sortUsersByID(users)
	return users, s.adj.Edges()
}

// FriendCount 节点度数，可视化里作为节点权重
func (s *Store) FriendCount(userID uint64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.adj.Neighbors(userID))
}
