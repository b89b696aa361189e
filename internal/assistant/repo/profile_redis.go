// Package repo implements profile persistence. Writes are write-through only:
// a live session never reads its profile back from the store.
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sahayak-assistant/server/internal/assistant/model"
	errx "github.com/sahayak-assistant/server/internal/core/error"
	logx "github.com/sahayak-assistant/server/pkg/logger"
)

type RedisProfileRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisProfileRepository(rdb redis.Cmdable, ttl time.Duration) *RedisProfileRepository {
	return &RedisProfileRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisProfileRepository) profileKey(key string) string {
	return fmt.Sprintf("profile:%s", key)
}

// Upsert merges fields into the hash for key. Redis hashes give idempotent
// last-write-wins per field, which is all concurrent sessions need.
func (r *RedisProfileRepository) Upsert(ctx context.Context, key string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	rkey := r.profileKey(key)

	if err := r.rdb.HSet(ctx, rkey, fields).Err(); err != nil {
		logx.Error().Err(err).Str("key", rkey).Msg("failed to upsert profile to redis")
		return errx.WrapRedis(err)
	}
	// extend TTL on touch
	if r.ttl > 0 {
		if ok, err := r.rdb.Expire(ctx, rkey, r.ttl).Result(); err != nil {
			logx.Error().Err(err).Str("key", rkey).Msg("failed to set expire")
			return errx.WrapRedis(err)
		} else if !ok {
			logx.Warn().Str("key", rkey).Dur("ttl", r.ttl).Msg("failed to set TTL on profile key")
		}
	}
	return nil
}

var _ model.ProfileStore = (*RedisProfileRepository)(nil)
