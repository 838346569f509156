package model

// SystemSenderID 系统通知的保留发送者 id（不会分配给真实用户）
const SystemSenderID uint64 = 0

const (
	MsgTypeText   = "text"
	MsgTypeImage  = "image"
	MsgTypePoll   = "poll"
	MsgTypeSystem = "system"
)

// Message 社区聊天消息；id 在社区内单调递增
type Message struct {
	ID         uint64 `json:"id"`
	SenderID   uint64 `json:"sender_id"`
	SenderName string `json:"sender"`
	Content    string `json:"content"`
	Timestamp  string `json:"time"`
	Type       string `json:"type"`
	MediaURL   string `json:"media_url"`

	// ReplyToID 引用的消息 id，0 表示非回复
	ReplyToID uint64 `json:"reply_to"`

	Upvoters map[uint64]struct{} `json:"-"`
	Pinned   bool                `json:"pinned"`

	Poll *Poll `json:"poll,omitempty"`
}

type Poll struct {
	Question      string       `json:"question"`
	AllowMultiple bool         `json:"multi"`
	Options       []PollOption `json:"options"`
}

type PollOption struct {
	ID     int                 `json:"id"`
	Text   string              `json:"text"`
	Voters map[uint64]struct{} `json:"-"`
}

func (m *Message) Clone() Message {
	cp := *m
	cp.Upvoters = CloneSet(m.Upvoters)
	if m.Poll != nil {
		p := Poll{Question: m.Poll.Question, AllowMultiple: m.Poll.AllowMultiple}
		p.Options = make([]PollOption, len(m.Poll.Options))
		for i, o := range m.Poll.Options {
			p.Options[i] = PollOption{ID: o.ID, Text: o.Text, Voters: CloneSet(o.Voters)}
		}
		cp.Poll = &p
	}
	return cp
}
