package mysql

import (
	"context"
	"encoding/json"
	"time"

	"NovaCom/internal/model"
	"NovaCom/internal/store"

	"gorm.io/gorm"
)

// SnapshotRepository 持久化协作方：启动时整体加载，每次写操作后整体重写。
// 核心只保证交给这里的快照永远是完整、满足不变量的一份。
type SnapshotRepository struct {
	DB *gorm.DB
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{DB: DB}
}

// Load 读全部表并还原内存快照
func (r *SnapshotRepository) Load(ctx context.Context) (store.Snapshot, error) {
	var snap store.Snapshot
	db := r.DB.WithContext(ctx)

	var userRows []UserRow
	if err := db.Order("id ASC").Find(&userRows).Error; err != nil {
		return snap, err
	}
	for _, row := range userRows {
		snap.Users = append(snap.Users, model.User{
			ID:              row.ID,
			Username:        row.Username,
			Email:           row.Email,
			Password:        row.Password,
			AvatarURL:       row.AvatarURL,
			Tags:            decodeStrings(row.Tags),
			Karma:           row.Karma,
			PendingRequests: decodeSet(row.PendingRequests),
		})
	}

	var edgeRows []FriendEdgeRow
	if err := db.Order("id ASC").Find(&edgeRows).Error; err != nil {
		return snap, err
	}
	for _, row := range edgeRows {
		snap.Edges = append(snap.Edges, [2]uint64{row.UserA, row.UserB})
	}

	var commRows []CommunityRow
	if err := db.Order("id ASC").Find(&commRows).Error; err != nil {
		return snap, err
	}
	var msgRows []MessageRow
	if err := db.Order("community_id ASC, msg_id ASC").Find(&msgRows).Error; err != nil {
		return snap, err
	}
	feeds := make(map[uint64][]model.Message)
	for _, row := range msgRows {
		m := model.Message{
			ID:         row.MsgID,
			SenderID:   row.SenderID,
			SenderName: row.SenderName,
			Content:    row.Content,
			Timestamp:  row.Timestamp,
			Type:       row.Type,
			MediaURL:   row.MediaURL,
			ReplyToID:  row.ReplyToID,
			Upvoters:   decodeSet(row.Upvoters),
			Pinned:     row.Pinned,
		}
		if row.Poll != "" {
			m.Poll = decodePoll(row.Poll)
		}
		feeds[row.CommunityID] = append(feeds[row.CommunityID], m)
	}
	for _, row := range commRows {
		snap.Communities = append(snap.Communities, model.Community{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			CoverURL:    row.CoverURL,
			Tags:        decodeStrings(row.Tags),
			Members:     decodeSet(row.Members),
			Owners:      decodeSet(row.Owners),
			Admins:      decodeSet(row.Admins),
			Banned:      decodeSet(row.Banned),
			Feed:        feeds[row.ID],
			NextMsgID:   row.NextMsgID,
		})
	}
	return snap, nil
}

// Flush 单事务全量重写 + 追加本次变更产生的事件，保证快照与事件同时可见
func (r *SnapshotRepository) Flush(ctx context.Context, snap store.Snapshot, events ...model.SocialEvent) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, rows := range []any{&MessageRow{}, &CommunityRow{}, &FriendEdgeRow{}, &UserRow{}} {
			if err := wipe.Delete(rows).Error; err != nil {
				return err
			}
		}

		if len(snap.Users) > 0 {
			userRows := make([]UserRow, 0, len(snap.Users))
			for _, u := range snap.Users {
				userRows = append(userRows, UserRow{
					ID:              u.ID,
					Username:        u.Username,
					Email:           u.Email,
					Password:        u.Password,
					AvatarURL:       u.AvatarURL,
					Tags:            encodeStrings(u.Tags),
					Karma:           u.Karma,
					PendingRequests: encodeSet(u.PendingRequests),
				})
			}
			if err := tx.Create(&userRows).Error; err != nil {
				return err
			}
		}

		if len(snap.Edges) > 0 {
			edgeRows := make([]FriendEdgeRow, 0, len(snap.Edges))
			for _, e := range snap.Edges {
				edgeRows = append(edgeRows, FriendEdgeRow{UserA: e[0], UserB: e[1]})
			}
			if err := tx.Create(&edgeRows).Error; err != nil {
				return err
			}
		}

		for _, c := range snap.Communities {
			row := CommunityRow{
				ID:          c.ID,
				Name:        c.Name,
				Description: c.Description,
				CoverURL:    c.CoverURL,
				Tags:        encodeStrings(c.Tags),
				Members:     encodeSet(c.Members),
				Owners:      encodeSet(c.Owners),
				Admins:      encodeSet(c.Admins),
				Banned:      encodeSet(c.Banned),
				NextMsgID:   c.NextMsgID,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			for _, m := range c.Feed {
				msgRow := MessageRow{
					CommunityID: c.ID,
					MsgID:       m.ID,
					SenderID:    m.SenderID,
					SenderName:  m.SenderName,
					Content:     m.Content,
					Timestamp:   m.Timestamp,
					Type:        m.Type,
					MediaURL:    m.MediaURL,
					ReplyToID:   m.ReplyToID,
					Upvoters:    encodeSet(m.Upvoters),
					Pinned:      m.Pinned,
					Poll:        encodePoll(m.Poll),
				}
				if err := tx.Create(&msgRow).Error; err != nil {
					return err
				}
			}
		}

		for _, ev := range events {
			payload, _ := json.Marshal(map[string]any{
				"event_time":   time.Now().UTC().Format(time.RFC3339Nano),
				"actor":        ev.ActorID,
				"target":       ev.TargetID,
				"community_id": ev.CommunityID,
			})
			row := OutboxRow{
				EventType:   ev.Type,
				ActorID:     ev.ActorID,
				TargetID:    ev.TargetID,
				CommunityID: ev.CommunityID,
				Payload:     string(payload),
				Status:      0,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

type pollDoc struct {
	Question string          `json:"question"`
	Multi    bool            `json:"multi"`
	Options  []pollOptionDoc `json:"options"`
}

type pollOptionDoc struct {
	ID     int      `json:"id"`
	Text   string   `json:"text"`
	Voters []uint64 `json:"voters"`
}

func encodePoll(p *model.Poll) string {
	if p == nil {
		return ""
	}
	doc := pollDoc{Question: p.Question, Multi: p.AllowMultiple}
	for _, o := range p.Options {
		voters := make([]uint64, 0, len(o.Voters))
		for id := range o.Voters {
			voters = append(voters, id)
		}
		doc.Options = append(doc.Options, pollOptionDoc{ID: o.ID, Text: o.Text, Voters: voters})
	}
	b, _ := json.Marshal(doc)
	return string(b)
}

func decodePoll(raw string) *model.Poll {
	var doc pollDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil
	}
	p := &model.Poll{Question: doc.Question, AllowMultiple: doc.Multi}
	for _, o := range doc.Options {
		voters := make(map[uint64]struct{}, len(o.Voters))
		for _, id := range o.Voters {
			voters[id] = struct{}{}
		}
		p.Options = append(p.Options, model.PollOption{ID: o.ID, Text: o.Text, Voters: voters})
	}
	return p
}
