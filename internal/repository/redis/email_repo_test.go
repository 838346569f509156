package redis_test

import (
	"testing"

	"NovaCom/internal/repository/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailCodePendingConfirmFlow(t *testing.T) {
	setupRedis(t)
	repo := &redis.EmailRepository{}

	require.NoError(t, repo.PutPending("register", "a@example.com", "123456"))

	// pending 阶段还查不到
	_, err := repo.GetConfirmed("register", "a@example.com")
	assert.ErrorIs(t, err, redis.ErrEmailNotFound)

	require.NoError(t, repo.Confirm("register", "a@example.com"))
	code, err := repo.GetConfirmed("register", "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
}

func TestEmailCodeConfirmWithoutPending(t *testing.T) {
	setupRedis(t)
	repo := &redis.EmailRepository{}

	assert.ErrorIs(t, repo.Confirm("register", "a@example.com"), redis.ErrCodeConfirmedFailed)
}

func TestEmailCodeScopesIsolated(t *testing.T) {
	setupRedis(t)
	repo := &redis.EmailRepository{}

	require.NoError(t, repo.PutPending("register", "a@example.com", "111111"))
	require.NoError(t, repo.Confirm("register", "a@example.com"))

	// reset 作用域查不到 register 的 code
	_, err := repo.GetConfirmed("reset", "a@example.com")
	assert.ErrorIs(t, err, redis.ErrEmailNotFound)
}

func TestEmailCodeOneShotConsume(t *testing.T) {
	setupRedis(t)
	repo := &redis.EmailRepository{}

	require.NoError(t, repo.PutPending("reset", "a@example.com", "654321"))
	require.NoError(t, repo.Confirm("reset", "a@example.com"))
	require.NoError(t, repo.DeleteConfirmed("reset", "a@example.com"))

	_, err := repo.GetConfirmed("reset", "a@example.com")
	assert.ErrorIs(t, err, redis.ErrEmailNotFound)
}

func TestEmailCodeExpiry(t *testing.T) {
	mr := setupRedis(t)
	repo := &redis.EmailRepository{}

	require.NoError(t, repo.PutPending("register", "a@example.com", "123456"))
	mr.FastForward(redis.DefaultEmailCodeTTL + 1)

	assert.ErrorIs(t, repo.Confirm("register", "a@example.com"), redis.ErrCodeConfirmedFailed)
}
