package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	RecCacheTTL          = 5 * time.Minute
	RecUserKeyPrefix     = "rec:user"      // 某用户的加权好友推荐结果
	RecCommunityKeyMixin = "rec:community" // 某用户的社区推荐结果
)

// RecCacheRepository 推荐结果缓存。BFS 打分是读路径里最贵的操作，
// 结果短暂缓存，好友边发生变化时按用户失效。
type RecCacheRepository struct {
	ttl time.Duration
}

func NewRecCacheRepository() *RecCacheRepository {
	return &RecCacheRepository{ttl: RecCacheTTL}
}

func (r *RecCacheRepository) userKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", RecUserKeyPrefix, userID)
}

func (r *RecCacheRepository) communityKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", RecCommunityKeyMixin, userID)
}

// GetUserRecs 命中时把缓存的 JSON 反序列化进 dst，返回是否命中
func (r *RecCacheRepository) GetUserRecs(ctx context.Context, userID uint64, dst any) (bool, error) {
	return r.get(ctx, r.userKey(userID), dst)
}

func (r *RecCacheRepository) SetUserRecs(ctx context.Context, userID uint64, val any) error {
	return r.set(ctx, r.userKey(userID), val)
}

func (r *RecCacheRepository) GetCommunityRecs(ctx context.Context, userID uint64, dst any) (bool, error) {
	return r.get(ctx, r.communityKey(userID), dst)
}

func (r *RecCacheRepository) SetCommunityRecs(ctx context.Context, userID uint64, val any) error {
	return r.set(ctx, r.communityKey(userID), val)
}

// Invalidate 边变更后删掉该用户的两类缓存，交给下次读重建
func (r *RecCacheRepository) Invalidate(ctx context.Context, userIDs ...uint64) {
	keys := make([]string, 0, len(userIDs)*2)
	for _, id := range userIDs {
		keys = append(keys, r.userKey(id), r.communityKey(id))
	}
	if len(keys) > 0 {
		_ = Client.Del(ctx, keys...).Err()
	}
}

func (r *RecCacheRepository) get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RecCacheRepository) set(ctx context.Context, key string, val any) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return Client.Set(ctx, key, raw, r.ttl).Err()
}
