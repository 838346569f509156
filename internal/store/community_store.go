package store

import (
	"fmt"
	"sort"

	"NovaCom/internal/model"
)

// CreateCommunity 创建者原子地进入 members 与 owners；id 单调递增、永不复用
func (s *Store) CreateCommunity(name, desc, coverURL string, tags []string, creatorID uint64) model.Community {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextCommunityID
	s.nextCommunityID++
	c := model.NewCommunity(id, name, desc, coverURL, tags)
	c.Members[creatorID] = struct{}{}
	c.Owners[creatorID] = struct{}{}
	s.communities[id] = c
	return c.Clone()
}

func (s *Store) GetCommunity(id uint64) (model.Community, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.communities[id]
	if !ok {
		return model.Community{}, false
	}
	return c.Clone(), true
}

// Communities 全部社区（不含聊天记录，列表页用）
func (s *Store) Communities() []model.Community {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Community, 0, len(s.communities))
	for _, c := range s.communities {
		out = append(out, metaClone(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) JoinedCommunities(userID uint64) []model.Community {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Community
	for _, c := range s.communities {
		if _, in := c.Members[userID]; in {
			out = append(out, metaClone(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PopularCommunities 按成员数降序取前 limit 个
func (s *Store) PopularCommunities(limit int) []model.Community {
	out := s.Communities()
	sort.SliceStable(out, func(i, j int) bool { return len(out[i].Members) > len(out[j].Members) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Join 被封禁用户静默拒绝；加入无主社区时直接继任所有者。
// 已是成员时加入是 no-op，但无主检查仍然执行（注销可能带走唯一 owner）。
func (s *Store) Join(userID, commID uint64) (bool, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[commID]
	if !ok {
		return false, 0, ErrNotFound
	}
	if _, banned := c.Banned[userID]; banned {
		return false, 0, nil
	}
	if _, in := c.Members[userID]; in {
		return false, s.ensureOwner(c, userID), nil
	}
	c.Members[userID] = struct{}{}
	promoted := s.ensureOwner(c, userID)
	return true, promoted, nil
}

// Leave 离开者可能是 Owner；owner 集合被清空且还有成员时触发继任
func (s *Store) Leave(userID, commID uint64) (bool, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[commID]
	if !ok {
		return false, 0, ErrNotFound
	}
	if _, in := c.Members[userID]; !in {
		return false, 0, nil
	}
	delete(c.Members, userID)
	delete(c.Admins, userID)
	var promoted uint64
	if _, wasOwner := c.Owners[userID]; wasOwner {
		delete(c.Owners, userID)
		promoted = s.ensureOwner(c, 0)
	}
	return true, promoted, nil
}

// ensureOwner 继任原语：owner 集合为空且仍有成员时自动补位。
// preferred 非 0 且为成员时优先（join 路径晋升加入者），否则取最小成员 id。
// 晋升同时在聊天流追加一条系统通知。
func (s *Store) ensureOwner(c *model.Community, preferred uint64) uint64 {
	if len(c.Owners) > 0 || len(c.Members) == 0 {
		return 0
	}
	pick := preferred
	if pick == 0 || !c.IsMember(pick) {
		for id := range c.Members {
			if pick == 0 || id < pick {
				pick = id
			}
		}
	}
	c.Owners[pick] = struct{}{}
	name := fmt.Sprintf("user %d", pick)
	if u, ok := s.users[pick]; ok {
		name = u.Username
	}
	s.appendMessage(c, model.Message{
		SenderID:   model.SystemSenderID,
		SenderName: "system",
		Type:       model.MsgTypeSystem,
		Content:    fmt.Sprintf("%s is now the community owner", name),
	})
	return pick
}

// PromoteAdmin 仅 Owner 可提升；目标必须是普通成员（保证 admins ⊆ members，
// 且 Owner/Admin 互斥）。重复提升保持幂等。
func (s *Store) PromoteAdmin(commID, actorID, targetID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[commID]
	if !ok {
		return ErrNotFound
	}
	if c.RoleOf(actorID) != model.RoleOwner {
		return ErrUnauthorized
	}
	if c.RoleOf(targetID) == model.RoleMember {
		c.Admins[targetID] = struct{}{}
	}
	return nil
}

func (s *Store) DemoteAdmin(commID, actorID, targetID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[commID]
	if !ok {
		return ErrNotFound
	}
	if c.RoleOf(actorID) != model.RoleOwner {
		return ErrUnauthorized
	}
	delete(c.Admins, targetID)
	return nil
}

// TransferOwnership 恰好移交一个 owner 席位：actor 退为 Member，目标进入 owners
// 并从 admins 移除。其余 owner（若有多个）不受影响。被封禁用户不能接任。
func (s *Store) TransferOwnership(commID, actorID, targetID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[commID]
	if !ok {
		return ErrNotFound
	}
	if c.RoleOf(actorID) != model.RoleOwner {
		return ErrUnauthorized
	}
	if _, banned := c.Banned[targetID]; banned {
		return nil
	}
	delete(c.Owners, actorID)
	c.Owners[targetID] = struct{}{}
	delete(c.Admins, targetID)
	return nil
}

// Ban Owner 永远不可被封禁；Admin 不能封 Admin，Owner 可以。
// 生效时目标从 members/admins 移除并进入 banned 集合。
func (s *Store) Ban(commID, actorID, targetID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[commID]
	if !ok {
		return ErrNotFound
	}
	actor := c.RoleOf(actorID)
	target := c.RoleOf(targetID)
	if !actor.CanModerate() {
		return ErrUnauthorized
	}
	if target == model.RoleOwner {
		return ErrUnauthorized
	}
	if actor == model.RoleAdmin && target == model.RoleAdmin {
		return ErrUnauthorized
	}
	delete(c.Members, targetID)
	delete(c.Admins, targetID)
	c.Banned[targetID] = struct{}{}
	return nil
}

// Unban 只清 banned 集合，不自动恢复成员身份
func (s *Store) Unban(commID, actorID, targetID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[commID]
	if !ok {
		return ErrNotFound
	}
	if !c.RoleOf(actorID).CanModerate() {
		return ErrUnauthorized
	}
	delete(c.Banned, targetID)
	return nil
}

// metaClone 浅拷贝元数据与角色集合，不带 Feed（列表视图）
func metaClone(c *model.Community) model.Community {
	cp := *c
	cp.Tags = append([]string(nil), c.Tags...)
	cp.Members = model.CloneSet(c.Members)
	cp.Owners = model.CloneSet(c.Owners)
	cp.Admins = model.CloneSet(c.Admins)
	cp.Banned = model.CloneSet(c.Banned)
	cp.Feed = nil
	return cp
}
