package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "perm:"

// RedisCache shares resolved permissions between service instances.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.SugaredLogger
}

// NewRedisCache connects to Redis and checks the connection.
func NewRedisCache(ctx context.Context, addr, password string, db int, ttl time.Duration, log *zap.SugaredLogger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisCache{client: client, ttl: ttl, log: log}, nil
}

func key(userID uint) string {
	return redisKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}

// Get treats any Redis failure as a miss; the caller falls back to the database.
func (r *RedisCache) Get(ctx context.Context, userID uint) ([]string, bool) {
	raw, err := r.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warnw("permission cache read failed", "user_id", userID, "error", err)
		}
		return nil, false
	}
	var codes []string
	if err := json.Unmarshal(raw, &codes); err != nil {
		return nil, false
	}
	return codes, true
}

func (r *RedisCache) Set(ctx context.Context, userID uint, codes []string) {
	raw, err := json.Marshal(codes)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key(userID), raw, r.ttl).Err(); err != nil {
		r.log.Warnw("permission cache write failed", "user_id", userID, "error", err)
	}
}

func (r *RedisCache) Purge(ctx context.Context) {
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.log.Warnw("permission cache scan failed", "error", err)
	}
	if len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.log.Warnw("permission cache purge failed", "error", err)
	}
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
