package model

// 社交事件类型，写入 outbox 后由 relayer 投递到 kafka
const (
	EventFriendAdd    = "friend_add"
	EventFriendRemove = "friend_remove"
	EventBan          = "ban"
	EventUnban        = "unban"
	EventSuccession   = "succession"
	EventUserDeleted  = "user_deleted"
)

// SocialEvent 随快照落库的领域事件
type SocialEvent struct {
	Type        string `json:"type"`
	ActorID     uint64 `json:"actor_id"`
	TargetID    uint64 `json:"target_id"`
	CommunityID uint64 `json:"community_id,omitempty"`
}
