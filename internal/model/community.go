package model

// Role 按 (社区, 用户) 推导出的唯一角色
type Role int

const (
	RoleNonMember Role = iota
	RoleMember
	RoleAdmin
	RoleOwner
	RoleBanned
)

func (r Role) String() string {
	switch r {
	case RoleMember:
		return "member"
	case RoleAdmin:
		return "admin"
	case RoleOwner:
		return "owner"
	case RoleBanned:
		return "banned"
	default:
		return "none"
	}
}

// CanModerate Owner/Admin 拥有管理动作权限
func (r Role) CanModerate() bool {
	return r == RoleOwner || r == RoleAdmin
}

type Community struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"desc"`
	CoverURL    string   `json:"cover"`
	Tags        []string `json:"tags"`

	Members map[uint64]struct{} `json:"-"`
	Owners  map[uint64]struct{} `json:"-"` // 顶级管理角色（原 moderators）
	Admins  map[uint64]struct{} `json:"-"`
	Banned  map[uint64]struct{} `json:"-"`

	Feed      []Message `json:"-"`
	NextMsgID uint64    `json:"-"`
}

func NewCommunity(id uint64, name, desc, cover string, tags []string) *Community {
	return &Community{
		ID:          id,
		Name:        name,
		Description: desc,
		CoverURL:    cover,
		Tags:        tags,
		Members:     make(map[uint64]struct{}),
		Owners:      make(map[uint64]struct{}),
		Admins:      make(map[uint64]struct{}),
		Banned:      make(map[uint64]struct{}),
		NextMsgID:   1,
	}
}

// RoleOf 互斥推导：banned 优先，owner 与 admin 不可能同时成立
func (c *Community) RoleOf(userID uint64) Role {
	if _, ok := c.Banned[userID]; ok {
		return RoleBanned
	}
	if _, ok := c.Owners[userID]; ok {
		return RoleOwner
	}
	if _, ok := c.Admins[userID]; ok {
		return RoleAdmin
	}
	if _, ok := c.Members[userID]; ok {
		return RoleMember
	}
	return RoleNonMember
}

func (c *Community) IsMember(userID uint64) bool {
	_, ok := c.Members[userID]
	return ok
}

func (c *Community) Clone() Community {
	cp := *c
	cp.Tags = append([]string(nil), c.Tags...)
	cp.Members = CloneSet(c.Members)
	cp.Owners = CloneSet(c.Owners)
	cp.Admins = CloneSet(c.Admins)
	cp.Banned = CloneSet(c.Banned)
	cp.Feed = make([]Message, len(c.Feed))
	for i := range c.Feed {
		cp.Feed[i] = c.Feed[i].Clone()
	}
	return cp
}
