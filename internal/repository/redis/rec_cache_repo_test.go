package redis_test

import (
	"context"
	"testing"

	"NovaCom/internal/graph"
	"NovaCom/internal/repository/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecCacheMissThenHit(t *testing.T) {
	setupRedis(t)
	repo := redis.NewRecCacheRepository()
	ctx := context.Background()

	var got []graph.Weighted
	hit, err := repo.GetUserRecs(ctx, 1, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	recs := []graph.Weighted{{ID: 4, Degree: 2, Score: 14}}
	require.NoError(t, repo.SetUserRecs(ctx, 1, recs))

	hit, err = repo.GetUserRecs(ctx, 1, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, recs, got)
}

func TestRecCacheInvalidate(t *testing.T) {
	setupRedis(t)
	repo := redis.NewRecCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.SetUserRecs(ctx, 1, []graph.Weighted{{ID: 2}}))
	require.NoError(t, repo.SetCommunityRecs(ctx, 1, []graph.CommunityScore{{ID: 100, Score: 5}}))
	require.NoError(t, repo.SetUserRecs(ctx, 2, []graph.Weighted{{ID: 3}}))

	// 失效同时清掉该用户的两类缓存
	repo.Invalidate(ctx, 1)

	var users []graph.Weighted
	hit, err := repo.GetUserRecs(ctx, 1, &users)
	require.NoError(t, err)
	assert.False(t, hit)

	var comms []graph.CommunityScore
	hit, err = repo.GetCommunityRecs(ctx, 1, &comms)
	require.NoError(t, err)
	assert.False(t, hit)

	// 其他用户不受影响
	hit, err = repo.GetUserRecs(ctx, 2, &users)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestRecCacheExpiry(t *testing.T) {
	mr := setupRedis(t)
	repo := redis.NewRecCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.SetUserRecs(ctx, 1, []graph.Weighted{{ID: 2}}))
	mr.FastForward(redis.RecCacheTTL + 1)

	var got []graph.Weighted
	hit, err := repo.GetUserRecs(ctx, 1, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}
