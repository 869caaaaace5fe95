package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fraudscope/fraudscope/internal/model"
)

// RedisConfig holds connection settings for the redis score cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache implements ScoreCache on redis. Entries expire; nothing is
// ever listed or queried back, so this is a cache, not a history store.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to redis and verifies the connection.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get fetches a cached result by record hash.
func (c *RedisCache) Get(ctx context.Context, key string) (model.ScoringResult, bool, error) {
	val, err := c.client.Get(ctx, scoreKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return model.ScoringResult{}, false, nil
	}
	if err != nil {
		return model.ScoringResult{}, false, err
	}

	var res model.ScoringResult
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return model.ScoringResult{}, false, err
	}
	return res, true, nil
}

// Set stores a result under the record hash with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, res model.ScoringResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, scoreKey(key), data, c.ttl).Err()
}

// Close releases the redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func scoreKey(hash string) string {
	return fmt.Sprintf("score:%s", hash)
}
