package service

import (
	"context"

	"NovaCom/internal/graph"
	"NovaCom/internal/model"
	"NovaCom/internal/repository/redis"
	"NovaCom/internal/store"
)

type GraphService struct {
	st     *store.Store
	rCache *redis.RecCacheRepository
}

func NewGraphService(st *store.Store) *GraphService {
	return &GraphService{st: st, rCache: redis.NewRecCacheRepository()}
}

// Degree 两人之间的关系度：0 自己、1..3 跳数、-1 不可达或超 3 跳
func (s *GraphService) Degree(start, target uint64) int {
	return s.st.Degree(start, target)
}

// ConnectionsAtDegree 恰好相距 degree 跳的用户列表
func (s *GraphService) ConnectionsAtDegree(start uint64, degree int) []model.User {
	return s.st.ConnectionsAtDegree(start, degree)
}

// MutualRec 共同好友推荐条目，附带解析出的用户资料
type MutualRec struct {
	User        model.User `json:"user"`
	MutualCount int        `json:"mutual_friends"`
}

func (s *GraphService) RecommendMutual(userID uint64) []MutualRec {
	var out []MutualRec
	for _, rec := range s.st.MutualRecommendations(userID) {
		if u, ok := s.st.GetUser(rec.ID); ok {
			out = append(out, MutualRec{User: u, MutualCount: rec.MutualCount})
		}
	}
	return out
}

// RecommendWeighted 多度加权推荐；结果短暂缓存在 redis
func (s *GraphService) RecommendWeighted(userID uint64) []graph.Weighted {
	ctx := context.Background()
	var cached []graph.Weighted
	if hit, err := s.rCache.GetUserRecs(ctx, userID, &cached); err == nil && hit {
		return cached
	}
	recs := s.st.WeightedRecommendations(userID)
	_ = s.rCache.SetUserRecs(ctx, userID, recs)
	return recs
}

// RecommendCommunities 未加入社区的网络热度打分推荐
func (s *GraphService) RecommendCommunities(userID uint64) []graph.CommunityScore {
	ctx := context.Background()
	var cached []graph.CommunityScore
	if hit, err := s.rCache.GetCommunityRecs(ctx, userID, &cached); err == nil && hit {
		return cached
	}
	recs := s.st.CommunityRecommendations(userID)
	_ = s.rCache.SetCommunityRecs(ctx, userID, recs)
	return recs
}

// GraphNode 可视化节点
type GraphNode struct {
	ID          uint64 `json:"id"`
	Username    string `json:"username"`
	AvatarURL   string `json:"avatar_url"`
	FriendCount int    `json:"friend_count"`
}

// GraphView 全图节点与去重边
func (s *GraphService) GraphView() ([]GraphNode, [][2]uint64) {
	users, edges := s.st.GraphSnapshot()
	nodes := make([]GraphNode, 0, len(users))
	for _, u := range users {
		nodes = append(nodes, GraphNode{
			ID:          u.ID,
			Username:    u.Username,
			AvatarURL:   u.AvatarURL,
			FriendCount: s.st.FriendCount(u.ID),
		})
	}
	return nodes, edges
}
