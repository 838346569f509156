package store

import (
	"NovaCom/internal/model"
)

// PinCapacity 同一社区同时置顶的消息上限，超出时按 FIFO 淘汰最旧的
const PinCapacity = 2

// KarmaPerUpvote 首次投票给消息作者的声望增量
const KarmaPerUpvote int64 = 5

// appendMessage 调用方必须已持有写锁
func (s *Store) appendMessage(c *model.Community, m model.Message) model.Message {
	m.ID = c.NextMsgID
	c.NextMsgID++
	m.Timestamp = s.now()
	if m.Upvoters == nil {
		m.Upvoters = make(map[uint64]struct{})
	}
	c.Feed = append(c.Feed, m)
	return m.Clone()
}

// AddMessage 仅成员可发言；replyTo 为 0 表示非回复
func (s *Store) AddMessage(commID, senderID uint64, content, msgType, mediaURL string, replyTo uint64) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[commID]
	if !ok {
		return model.Message{}, ErrNotFound
	}
	if !c.IsMember(senderID) {
		return model.Message{}, ErrNotMember
	}
	name := ""
	if u, ok := s.users[senderID]; ok {
		name = u.Username
	}
	return s.appendMessage(c, model.Message{
		SenderID:   senderID,
		SenderName: name,
		Content:    content,
		Type:       msgType,
		MediaURL:   mediaURL,
		ReplyToID:  replyTo,
	}), nil
}

// CreatePoll 投票选项 id 从 1 开始，每个选项维护独立的投票人集合
func (s *Store) CreatePoll(commID, senderID uint64, question string, allowMultiple bool, options []string) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[commID]
	if !ok {
		return model.Message{}, ErrNotFound
	}
	if !c.IsMember(senderID) {
		return model.Message{}, ErrNotMember
	}
	poll := &model.Poll{Question: question, AllowMultiple: allowMultiple}
	for i, txt := range options {
		poll.Options = append(poll.Options, model.PollOption{
			ID:     i + 1,
			Text:   txt,
			Voters: make(map[uint64]struct{}),
		})
	}
	name := ""
	if u, ok := s.users[senderID]; ok {
		name = u.Username
	}
	return s.appendMessage(c, model.Message{
		SenderID:   senderID,
		SenderName: name,
		Content:    "Poll: " + question,
		Type:       model.MsgTypePoll,
		Poll:       poll,
	}), nil
}

// TogglePollVote 再点一次取消；单选模式下先清掉该用户在其它选项的票
func (s *Store) TogglePollVote(commID, userID, msgID uint64, optionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[commID]
	if !ok {
		return ErrNotFound
	}
	m := findMessage(c, msgID)
	if m == nil || m.Type != model.MsgTypePoll || m.Poll == nil {
		return ErrNotFound
	}
	var chosen *model.PollOption
	for i := range m.Poll.Options {
		if m.Poll.Options[i].ID == optionID {
			chosen = &m.Poll.Options[i]
			break
		}
	}
	if chosen == nil {
		return ErrNotFound
	}
	if _, voted := chosen.Voters[userID]; voted {
		delete(chosen.Voters, userID)
		return nil
	}
	if !m.Poll.AllowMultiple {
		for i := range m.Poll.Options {
			delete(m.Poll.Options[i].Voters, userID)
		}
	}
	chosen.Voters[userID] = struct{}{}
	return nil
}

// ToggleUpvote 成员对消息的点赞开关。每次从无到有的转变给作者 +5 karma，
// 取消不回收；同一次投票绝不会重复加分。
func (s *Store) ToggleUpvote(commID, userID, msgID uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[commID]
	if !ok {
		return false, ErrNotFound
	}
	if !c.IsMember(userID) {
		return false, ErrNotMember
	}
	m := findMessage(c, msgID)
	if m == nil {
		return false, ErrNotFound
	}
	if _, voted := m.Upvoters[userID]; voted {
		delete(m.Upvoters, userID)
		return false, nil
	}
	m.Upvoters[userID] = struct{}{}
	if author, ok := s.users[m.SenderID]; ok {
		author.Karma += KarmaPerUpvote
	}
	return true, nil
}

// DeleteMessage 仅 Owner/Admin；目标不存在时幂等成功
func (s *Store) DeleteMessage(commID, actorID, msgID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[commID]
	if !ok {
		return ErrNotFound
	}
	if !c.RoleOf(actorID).CanModerate() {
		return ErrUnauthorized
	}
	for i := range c.Feed {
		if c.Feed[i].ID == msgID {
			c.Feed = append(c.Feed[:i], c.Feed[i+1:]...)
			break
		}
	}
	return nil
}

// PinMessage 置顶开关。新置顶超过容量时先自动取消最旧的那条（最小下标）。
func (s *Store) PinMessage(commID, actorID, msgID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[commID]
	if !ok {
		return ErrNotFound
	}
	if !c.RoleOf(actorID).CanModerate() {
		return ErrUnauthorized
	}
	m := findMessage(c, msgID)
	if m == nil {
		return ErrNotFound
	}
	if m.Pinned {
		m.Pinned = false
		return nil
	}
	pinned := 0
	firstPin := -1
	for i := range c.Feed {
		if c.Feed[i].Pinned {
			pinned++
			if firstPin == -1 {
				firstPin = i
			}
		}
	}
	if pinned >= PinCapacity && firstPin != -1 {
		c.Feed[firstPin].Pinned = false
	}
	m.Pinned = true
	return nil
}

// FeedPage 取最近一页消息：offset 从尾部回退，limit 条
func (s *Store) FeedPage(commID uint64, offset, limit int) ([]model.Message, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.communities[commID]
	if !ok {
		return nil, 0, ErrNotFound
	}
	total := len(c.Feed)
	end := total - offset
	if end > total {
		end = total
	}
	start := end - limit
	if start < 0 {
		start = 0
	}
	var out []model.Message
	for i := start; i < end; i++ {
		if i < 0 || i >= total {
			continue
		}
		out = append(out, c.Feed[i].Clone())
	}
	return out, total, nil
}

func findMessage(c *model.Community, msgID uint64) *model.Message {
	for i := range c.Feed {
		if c.Feed[i].ID == msgID {
			return &c.Feed[i]
		}
	}
	return nil
}
