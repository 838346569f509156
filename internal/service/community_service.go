package service

import (
	"sort"

	"NovaCom/internal/model"
	"NovaCom/internal/store"
)

type CommunityService struct {
	st      *store.Store
	persist Persister
}

func NewCommunityService(st *store.Store, p Persister) *CommunityService {
	return &CommunityService{st: st, persist: p}
}

// Create 创建社区，创建者直接成为成员兼所有者
func (s *CommunityService) Create(name, desc, coverURL string, tags []string, creatorID uint64) model.Community {
	c := s.st.CreateCommunity(name, desc, coverURL, tags, creatorID)
	flush(s.st, s.persist)
	return c
}

// Join 加入社区；被封禁时静默不变，加入无主社区会直接接任所有者
func (s *CommunityService) Join(userID, commID uint64) (bool, error) {
	joined, promoted, err := s.st.Join(userID, commID)
	if err != nil {
		return false, err
	}
	if joined || promoted != 0 {
		events := []model.SocialEvent(nil)
		if promoted != 0 {
			events = append(events, model.SocialEvent{
				Type: model.EventSuccession, ActorID: userID, TargetID: promoted, CommunityID: commID,
			})
		}
		flush(s.st, s.persist, events...)
	}
	return joined, nil
}

// Leave 退出社区；最后一名 owner 离开时自动触发继任
func (s *CommunityService) Leave(userID, commID uint64) (bool, error) {
	left, promoted, err := s.st.Leave(userID, commID)
	if err != nil {
		return false, err
	}
	if left {
		events := []model.SocialEvent(nil)
		if promoted != 0 {
			events = append(events, model.SocialEvent{
				Type: model.EventSuccession, ActorID: userID, TargetID: promoted, CommunityID: commID,
			})
		}
		flush(s.st, s.persist, events...)
	}
	return left, nil
}

func (s *CommunityService) List() []model.Community {
	return s.st.Communities()
}

func (s *CommunityService) Joined(userID uint64) []model.Community {
	return s.st.JoinedCommunities(userID)
}

func (s *CommunityService) Popular(limit int) []model.Community {
	return s.st.PopularCommunities(limit)
}

func (s *CommunityService) Details(commID uint64) (model.Community, bool) {
	return s.st.GetCommunity(commID)
}

// MemberView 成员列表条目，带社区内角色
type MemberView struct {
	User model.User `json:"user"`
	Role string     `json:"role"`
}

// Members 成员列表（含角色），id 升序
func (s *CommunityService) Members(commID uint64) ([]MemberView, bool) {
	c, ok := s.st.GetCommunity(commID)
	if !ok {
		return nil, false
	}
	ids := make([]uint64, 0, len(c.Members))
	for id := range c.Members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []MemberView
	for _, id := range ids {
		u, found := s.st.GetUser(id)
		if !found {
			continue
		}
		out = append(out, MemberView{User: u, Role: c.RoleOf(id).String()})
	}
	return out, true
}
