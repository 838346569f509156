package store_test

import (
	"testing"

	"NovaCom/internal/model"
	"NovaCom/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatFixture 返回一个社区：alice 为 owner，bob 为成员，carol 未加入
func chatFixture(t *testing.T) (*store.Store, uint64, []uint64) {
	t.Helper()
	s := store.New()
	ids := seedUsers(t, s, "alice", "bob", "carol")
	c := s.CreateCommunity("gophers", "", "", nil, ids[0])
	_, _, err := s.Join(ids[1], c.ID)
	require.NoError(t, err)
	return s, c.ID, ids
}

func TestAddMessageSequentialIDs(t *testing.T) {
	t.Parallel()
	s, commID, ids := chatFixture(t)

	m1, err := s.AddMessage(commID, ids[0], "hello", model.MsgTypeText, "", 0)
	require.NoError(t, err)
	m2, err := s.AddMessage(commID, ids[1], "hi", model.MsgTypeText, "", m1.ID)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), m1.ID)
	assert.Equal(t, uint64(2), m2.ID)
	assert.Equal(t, "alice", m1.SenderName)
	assert.Equal(t, m1.ID, m2.ReplyToID)
	assert.NotEmpty(t, m1.Timestamp)
}

func TestAddMessageNonMemberRejected(t *testing.T) {
	t.Parallel()
	s, commID, ids := chatFixture(t)

	_, err := s.AddMessage(commID, ids[2], "let me in", model.MsgTypeText, "", 0)
	assert.ErrorIs(t, err, store.ErrNotMember)

	_, err = s.AddMessage(999, ids[0], "hello", model.MsgTypeText, "", 0)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreatePollAndVote(t *testing.T) {
	t.Parallel()
	s, commID, ids := chatFixture(t)

	m, err := s.CreatePoll(commID, ids[0], "favorite language?", false, []string{"Go", "Rust"})
	require.NoError(t, err)
	require.NotNil(t, m.Poll)
	assert.Equal(t, model.MsgTypePoll, m.Type)
	assert.Equal(t, 1, m.Poll.Options[0].ID)
	assert.Equal(t, 2, m.Poll.Options[1].ID)

	// 单选：换选项时自动清掉旧票
	require.NoError(t, s.TogglePollVote(commID, ids[1], m.ID, 1))
	require.NoError(t, s.TogglePollVote(commID, ids[1], m.ID, 2))

	comm, _ := s.GetCommunity(commID)
	poll := comm.Feed[0].Poll
	assert.Empty(t, poll.Options[0].Voters)
	assert.Contains(t, poll.Options[1].Voters, ids[1])

	// 再点一次取消
	require.NoError(t, s.TogglePollVote(commID, ids[1], m.ID, 2))
	comm, _ = s.GetCommunity(commID)
	assert.Empty(t, comm.Feed[0].Poll.Options[1].Voters)
}

func TestMultiSelectPollKeepsVotes(t *testing.T) {
	t.Parallel()
	s, commID, ids := chatFixture(t)

	m, err := s.CreatePoll(commID, ids[0], "stack?", true, []string{"gin", "gorm", "redis"})
	require.NoError(t, err)

	require.NoError(t, s.TogglePollVote(commID, ids[1], m.ID, 1))
	require.NoError(t, s.TogglePollVote(commID, ids[1], m.ID, 3))

	comm, _ := s.GetCommunity(commID)
	poll := comm.Feed[0].Poll
	assert.Contains(t, poll.Options[0].Voters, ids[1])
	assert.Contains(t, poll.Options[2].Voters, ids[1])
}

func TestTogglePollVoteErrors(t *testing.T) {
	t.Parallel()
	s, commID, ids := chatFixture(t)
	m, err := s.AddMessage(commID, ids[0], "not a poll", model.MsgTypeText, "", 0)
	require.NoError(t, err)

	assert.ErrorIs(t, s.TogglePollVote(commID, ids[1], m.ID, 1), store.ErrNotFound)
	assert.ErrorIs(t, s.TogglePollVote(commID, ids[1], 999, 1), store.ErrNotFound)
}

func TestToggleUpvoteKarma(t *testing.T) {
	t.Parallel()
	s, commID, ids := chatFixture(t)
	m, err := s.AddMessage(commID, ids[0], "hello", model.MsgTypeText, "", 0)
	require.NoError(t, err)

	added, err := s.ToggleUpvote(commID, ids[1], m.ID)
	require.NoError(t, err)
	assert.True(t, added)
	author, _ := s.GetUser(ids[0])
	assert.Equal(t, store.KarmaPerUpvote, author.Karma)

	// 取消不回收声望
	added, err = s.ToggleUpvote(commID, ids[1], m.ID)
	require.NoError(t, err)
	assert.False(t, added)
	author, _ = s.GetUser(ids[0])
	assert.Equal(t, store.KarmaPerUpvote, author.Karma)

	// 再点赞再加一次
	_, err = s.ToggleUpvote(commID, ids[1], m.ID)
	require.NoError(t, err)
	author, _ = s.GetUser(ids[0])
	assert.Equal(t, 2*store.KarmaPerUpvote, author.Karma)
}

func TestToggleUpvoteNonMember(t *testing.T) {
	t.Parallel()
	s, commID, ids := chatFixture(t)
	m, err := s.AddMessage(commID, ids[0], "hello", model.MsgTypeText, "", 0)
	require.NoError(t, err)

	_, err = s.ToggleUpvote(commID, ids[2], m.ID)
	assert.ErrorIs(t, err, store.ErrNotMember)
}

func TestDeleteMessageModeratorOnly(t *testing.T) {
	t.Parallel()
	s, commID, ids := chatFixture(t)
	m, err := s.AddMessage(commID, ids[1], "spam", model.MsgTypeText, "", 0)
	require.NoError(t, err)

	// 普通成员无权删
	assert.ErrorIs(t, s.DeleteMessage(commID, ids[1], m.ID), store.ErrUnauthorized)

	require.NoError(t, s.DeleteMessage(commID, ids[0], m.ID))
	comm, _ := s.GetCommunity(commID)
	assert.Empty(t, comm.Feed)

	// 不存在的消息幂等成功
	require.NoError(t, s.DeleteMessage(commID, ids[0], m.ID))
}

func TestPinMessageFIFOEviction(t *testing.T) {
	t.Parallel()
	s, commID, ids := chatFixture(t)
	var msgs []model.Message
	for _, txt := range []string{"a", "b", "c"} {
		m, err := s.AddMessage(commID, ids[0], txt, model.MsgTypeText, "", 0)
		require.NoError(t, err)
		msgs = append(msgs, m)
	}

	require.NoError(t, s.PinMessage(commID, ids[0], msgs[0].ID))
	require.NoError(t, s.PinMessage(commID, ids[0], msgs[1].ID))
	// 第三条置顶挤掉最旧的
	require.NoError(t, s.PinMessage(commID, ids[0], msgs[2].ID))

	comm, _ := s.GetCommunity(commID)
	assert.False(t, comm.Feed[0].Pinned)
	assert.True(t, comm.Feed[1].Pinned)
	assert.True(t, comm.Feed[2].Pinned)

	// 再点一次取消置顶
	require.NoError(t, s.PinMessage(commID, ids[0], msgs[1].ID))
	comm, _ = s.GetCommunity(commID)
	assert.False(t, comm.Feed[1].Pinned)

	// 普通成员无权置顶
	assert.ErrorIs(t, s.PinMessage(commID, ids[1], msgs[2].ID), store.ErrUnauthorized)
}

func TestFeedPage(t *testing.T) {
	t.Parallel()
	s, commID, ids := chatFixture(t)
	for _, txt := range []string{"1", "2", "3", "4", "5"} {
		_, err := s.AddMessage(commID, ids[0], txt, model.MsgTypeText, "", 0)
		require.NoError(t, err)
	}

	// 最近两条
	page, total, err := s.FeedPage(commID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "4", page[0].Content)
	assert.Equal(t, "5", page[1].Content)

	// 从尾部回退 2 条再取 2 条
	page, _, err = s.FeedPage(commID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "2", page[0].Content)
	assert.Equal(t, "3", page[1].Content)

	// 越界只返回剩余部分
	page, _, err = s.FeedPage(commID, 4, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "1", page[0].Content)

	_, _, err = s.FeedPage(999, 0, 10)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
