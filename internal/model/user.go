package model

// User 用户记录；Password 存 bcrypt 哈希
type User struct {
	ID        uint64   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Password  string   `json:"-"`
	AvatarURL string   `json:"avatar"`
	Tags      []string `json:"tags"`
	Karma     int64    `json:"karma"`

	// PendingRequests 收到的好友申请（发送方 id 集合）
	PendingRequests map[uint64]struct{} `json:"-"`
}

func (u *User) Clone() User {
	cp := *u
	cp.Tags = append([]string(nil), u.Tags...)
	cp.PendingRequests = CloneSet(u.PendingRequests)
	return cp
}

func CloneSet(s map[uint64]struct{}) map[uint64]struct{} {
	out := make(map[uint64]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
