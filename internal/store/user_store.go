package store

import (
	"sort"
	"strings"

	"NovaCom/internal/model"
)

// CreateUser 分配 max(id)+1 并建立用户名索引；用户名冲突时不做任何变更
func (s *Store) CreateUser(username, email, passwordHash, avatarURL string, tags []string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usernameIndex[username]; exists {
		return 0, ErrDuplicateUsername
	}
	id := s.nextUserID
	s.nextUserID++
	s.users[id] = &model.User{
		ID:              id,
		Username:        username,
		Email:           email,
		Password:        passwordHash,
		AvatarURL:       avatarURL,
		Tags:            tags,
		PendingRequests: make(map[uint64]struct{}),
	}
	s.usernameIndex[username] = id
	return id, nil
}

func (s *Store) GetUser(id uint64) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, false
	}
	return u.Clone(), true
}

func (s *Store) FindByUsername(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return model.User{}, false
	}
	return s.users[id].Clone(), true
}

func (s *Store) FindByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u.Clone(), true
		}
	}
	return model.User{}, false
}

func (s *Store) UpdateProfile(id uint64, email, avatarURL string, tags []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return false
	}
	u.Email = email
	u.AvatarURL = avatarURL
	u.Tags = tags
	return true
}

func (s *Store) UpdatePassword(id uint64, passwordHash string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return false
	}
	u.Password = passwordHash
	return true
}

// DeleteUser 注销级联：用户名释放、好友图摘除、所有社区角色集合清理
func (s *Store) DeleteUser(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return false
	}
	delete(s.usernameIndex, u.Username)
	delete(s.users, id)
	s.adj.RemoveNode(id)
	for _, c := range s.communities {
		delete(c.Members, id)
		delete(c.Owners, id)
		delete(c.Admins, id)
		delete(c.Banned, id)
	}
	return true
}

func sortUsersByID(users []model.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
}

// SearchUsers 名字子串匹配（大小写不敏感）+ 可选标签过滤，"All"/"" 不过滤
func (s *Store) SearchUsers(query, tagFilter string) []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	query = strings.ToLower(query)
	var out []model.User
	for _, u := range s.users {
		if query != "" && !strings.Contains(strings.ToLower(u.Username), query) {
			continue
		}
		if tagFilter != "" && tagFilter != "All" {
			found := false
			for _, t := range u.Tags {
				if t == tagFilter {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, u.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
