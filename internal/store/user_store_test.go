package store_test

import (
	"testing"

	"NovaCom/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedUsers 依次注册 n 个用户，返回分配的 id（从 1 开始）
func seedUsers(t *testing.T, s *store.Store, names ...string) []uint64 {
	t.Helper()
	ids := make([]uint64, 0, len(names))
	for _, name := range names {
		id, err := s.CreateUser(name, name+"@example.com", "hash", "", nil)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestCreateUserSequentialIDs(t *testing.T) {
	t.Parallel()
	s := store.New()

	ids := seedUsers(t, s, "alice", "bob", "carol")
	assert.Equal(t, []uint64{1, 2, 3}, ids)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	t.Parallel()
	s := store.New()
	seedUsers(t, s, "alice")

	_, err := s.CreateUser("alice", "other@example.com", "hash", "", nil)
	require.ErrorIs(t, err, store.ErrDuplicateUsername)

	// 失败的注册不消耗 id
	id, err := s.CreateUser("bob", "bob@example.com", "hash", "", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), id)
}

func TestFindByUsernameAndEmail(t *testing.T) {
	t.Parallel()
	s := store.New()
	seedUsers(t, s, "alice")

	u, ok := s.FindByUsername("alice")
	require.True(t, ok)
	assert.Equal(t, uint64(1), u.ID)

	u, ok = s.FindByEmail("alice@example.com")
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)

	_, ok = s.FindByUsername("nobody")
	assert.False(t, ok)
}

func TestGetUserReturnsClone(t *testing.T) {
	t.Parallel()
	s := store.New()
	seedUsers(t, s, "alice")

	u, ok := s.GetUser(1)
	require.True(t, ok)
	u.Username = "mallory"

	again, _ := s.GetUser(1)
	assert.Equal(t, "alice", again.Username)
}

func TestUpdateProfileAndPassword(t *testing.T) {
	t.Parallel()
	s := store.New()
	seedUsers(t, s, "alice")

	require.True(t, s.UpdateProfile(1, "new@example.com", "http://a.png", []string{"go"}))
	require.True(t, s.UpdatePassword(1, "newhash"))

	u, _ := s.GetUser(1)
	assert.Equal(t, "new@example.com", u.Email)
	assert.Equal(t, "http://a.png", u.AvatarURL)
	assert.Equal(t, []string{"go"}, u.Tags)
	assert.Equal(t, "newhash", u.Password)

	assert.False(t, s.UpdateProfile(99, "", "", nil))
}

func TestDeleteUserCascades(t *testing.T) {
	t.Parallel()
	s := store.New()
	ids := seedUsers(t, s, "alice", "bob", "carol")

	_, err := s.AddFriendship(ids[0], ids[1])
	require.NoError(t, err)
	c := s.CreateCommunity("gophers", "", "", nil, ids[0])
	_, _, err = s.Join(ids[1], c.ID)
	require.NoError(t, err)

	require.True(t, s.DeleteUser(ids[0]))

	// 好友边随之消失
	assert.Empty(t, s.Friends(ids[1]))
	// 社区成员与 owner 集合被清理
	comm, _ := s.GetCommunity(c.ID)
	assert.NotContains(t, comm.Members, ids[0])
	assert.NotContains(t, comm.Owners, ids[0])
	// 用户名释放，可重新注册；id 不复用
	newID, err := s.CreateUser("alice", "a2@example.com", "hash", "", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), newID)
}

func TestSearchUsers(t *testing.T) {
	t.Parallel()
	s := store.New()
	_, err := s.CreateUser("Alice", "a@example.com", "hash", "", []string{"go", "music"})
	require.NoError(t, err)
	_, err = s.CreateUser("alina", "b@example.com", "hash", "", []string{"art"})
	require.NoError(t, err)
	_, err = s.CreateUser("bob", "c@example.com", "hash", "", []string{"go"})
	require.NoError(t, err)

	// 大小写不敏感子串
	found := s.SearchUsers("ali", "")
	require.Len(t, found, 2)
	assert.Equal(t, "Alice", found[0].Username)

	// 标签过滤
	found = s.SearchUsers("", "go")
	require.Len(t, found, 2)

	// "All" 不过滤
	found = s.SearchUsers("", "All")
	assert.Len(t, found, 3)

	found = s.SearchUsers("ali", "art")
	require.Len(t, found, 1)
	assert.Equal(t, "alina", found[0].Username)
}
