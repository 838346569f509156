package service

import (
	"NovaCom/internal/model"
	"NovaCom/internal/store"
)

type ChatService struct {
	st      *store.Store
	persist Persister
}

func NewChatService(st *store.Store, p Persister) *ChatService {
	return &ChatService{st: st, persist: p}
}

// PostMessage 成员发消息；replyTo 为 0 表示非回复
func (s *ChatService) PostMessage(commID, senderID uint64, content, msgType, mediaURL string, replyTo uint64) (model.Message, error) {
	if msgType == "" {
		msgType = model.MsgTypeText
	}
	m, err := s.st.AddMessage(commID, senderID, content, msgType, mediaURL, replyTo)
	if err != nil {
		return model.Message{}, err
	}
	flush(s.st, s.persist)
	return m, nil
}

// CreatePoll 发起投票消息
func (s *ChatService) CreatePoll(commID, senderID uint64, question string, allowMultiple bool, options []string) (model.Message, error) {
	m, err := s.st.CreatePoll(commID, senderID, question, allowMultiple, options)
	if err != nil {
		return model.Message{}, err
	}
	flush(s.st, s.persist)
	return m, nil
}

// Vote 投票开关；单选时自动清掉同一人在其它选项的票
func (s *ChatService) Vote(commID, userID, msgID uint64, optionID int) error {
	if err := s.st.TogglePollVote(commID, userID, msgID, optionID); err != nil {
		return err
	}
	flush(s.st, s.persist)
	return nil
}

// Upvote 点赞开关，首次点赞给作者加声望
func (s *ChatService) Upvote(commID, userID, msgID uint64) (bool, error) {
	added, err := s.st.ToggleUpvote(commID, userID, msgID)
	if err != nil {
		return false, err
	}
	flush(s.st, s.persist)
	return added, nil
}

// Feed 取最近一页消息，offset 从尾部回退
func (s *ChatService) Feed(commID uint64, offset, limit int) ([]model.Message, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.st.FeedPage(commID, offset, limit)
}
