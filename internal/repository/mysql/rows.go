package mysql

import (
	"encoding/json"
	"sort"
	"time"
)

// 快照行类型。集合/标签列统一存 JSON，和内存结构一一对应。

type UserRow struct {
	ID              uint64 `gorm:"primaryKey"`
	Username        string `gorm:"uniqueIndex;size:32;not null"`
	Email           string `gorm:"size:64"`
	Password        string `gorm:"size:255;not null"`
	AvatarURL       string `gorm:"size:255"`
	Tags            string `gorm:"type:json"`
	Karma           int64  `gorm:"not null;default:0"`
	PendingRequests string `gorm:"type:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (UserRow) TableName() string { return "users" }

// FriendEdgeRow 每条无向边一行，UserA < UserB 规范化
type FriendEdgeRow struct {
	ID        uint64 `gorm:"primaryKey"`
	UserA     uint64 `gorm:"not null;uniqueIndex:uk_edge,priority:1"`
	UserB     uint64 `gorm:"not null;uniqueIndex:uk_edge,priority:2"`
	CreatedAt time.Time
}

func (FriendEdgeRow) TableName() string { return "friend_edges" }

type CommunityRow struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"size:64;not null"`
	Description string `gorm:"type:text"`
	CoverURL    string `gorm:"size:255"`
	Tags        string `gorm:"type:json"`
	Members     string `gorm:"type:json"`
	Owners      string `gorm:"type:json"`
	Admins      string `gorm:"type:json"`
	Banned      string `gorm:"type:json"`
	NextMsgID   uint64 `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CommunityRow) TableName() string { return "communities" }

type MessageRow struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	CommunityID uint64 `gorm:"not null;index:idx_comm_msg,priority:1"`
	MsgID       uint64 `gorm:"not null;index:idx_comm_msg,priority:2"`
	SenderID    uint64 `gorm:"not null"`
	SenderName  string `gorm:"size:32"`
	Content     string `gorm:"type:text"`
	Timestamp   string `gorm:"size:8"`
	Type        string `gorm:"size:16;not null;default:'text'"`
	MediaURL    string `gorm:"size:255"`
	ReplyToID   uint64 `gorm:"not null;default:0"`
	Upvoters    string `gorm:"type:json"`
	Pinned      bool   `gorm:"not null;default:false"`
	Poll        string `gorm:"type:json"`
	CreatedAt   time.Time
}

func (MessageRow) TableName() string { return "messages" }

// OutboxRow 社交事件监控表，relayer 批量投递到 kafka
type OutboxRow struct {
	ID          uint64 `gorm:"primaryKey"`
	EventType   string `gorm:"size:32;not null"`
	ActorID     uint64 `gorm:"not null"`
	TargetID    uint64 `gorm:"not null"`
	CommunityID uint64 `gorm:"not null;default:0"`
	Payload     string `gorm:"type:json;not null"`
	Status      int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry       int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (OutboxRow) TableName() string { return "social_outbox" }

// AllRows AutoMigrate 用
func AllRows() []any {
	return []any{&UserRow{}, &FriendEdgeRow{}, &CommunityRow{}, &MessageRow{}, &OutboxRow{}}
}

func encodeSet(s map[uint64]struct{}) string {
	ids := make([]uint64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	b, _ := json.Marshal(ids)
	return string(b)
}

func decodeSet(raw string) map[uint64]struct{} {
	out := make(map[uint64]struct{})
	if raw == "" {
		return out
	}
	var ids []uint64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return out
	}
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func encodeStrings(ss []string) string {
	if ss == nil {
		ss = []string{}
	}
	b, _ := json.Marshal(ss)
	return string(b)
}

func decodeStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}
