package service

import (
	"context"

	"NovaCom/internal/model"
	"NovaCom/internal/repository/redis"
	"NovaCom/internal/store"
)

type FriendService struct {
	st      *store.Store
	persist Persister
	rCache  *redis.RecCacheRepository
}

func NewFriendService(st *store.Store, p Persister) *FriendService {
	return &FriendService{st: st, persist: p, rCache: redis.NewRecCacheRepository()}
}

// SendRequest 发起好友申请，返回 request_sent / already_friends / request_pending
func (s *FriendService) SendRequest(senderID, targetID uint64) (string, error) {
	status, err := s.st.SendRequest(senderID, targetID)
	if err != nil {
		return "", err
	}
	if status == store.RequestSent {
		flush(s.st, s.persist)
	}
	return status, nil
}

// AcceptRequest 接受申请并建立好友边，两个端点的推荐缓存都失效
func (s *FriendService) AcceptRequest(userID, requesterID uint64) bool {
	if !s.st.AcceptRequest(userID, requesterID) {
		return false
	}
	s.rCache.Invalidate(context.Background(), userID, requesterID)
	flush(s.st, s.persist, model.SocialEvent{Type: model.EventFriendAdd, ActorID: userID, TargetID: requesterID})
	return true
}

func (s *FriendService) DeclineRequest(userID, requesterID uint64) bool {
	if !s.st.DeclineRequest(userID, requesterID) {
		return false
	}
	flush(s.st, s.persist)
	return true
}

func (s *FriendService) PendingRequests(userID uint64) []model.User {
	return s.st.PendingRequests(userID)
}

func (s *FriendService) RelationshipStatus(me, target uint64) string {
	return s.st.RelationshipStatus(me, target)
}

// AddFriendship 直接建边（管理场景），幂等
func (s *FriendService) AddFriendship(u, v uint64) (bool, error) {
	changed, err := s.st.AddFriendship(u, v)
	if err != nil {
		return false, err
	}
	if changed {
		s.rCache.Invalidate(context.Background(), u, v)
		flush(s.st, s.persist, model.SocialEvent{Type: model.EventFriendAdd, ActorID: u, TargetID: v})
	}
	return changed, nil
}

func (s *FriendService) Unfriend(u, v uint64) bool {
	if !s.st.RemoveFriendship(u, v) {
		return false
	}
	s.rCache.Invalidate(context.Background(), u, v)
	flush(s.st, s.persist, model.SocialEvent{Type: model.EventFriendRemove, ActorID: u, TargetID: v})
	return true
}

func (s *FriendService) Friends(userID uint64) []model.User {
	return s.st.Friends(userID)
}
