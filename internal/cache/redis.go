package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/creai-labs/creai/internal/component"
)

// RedisConfig holds Redis cache connection configuration.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTL      time.Duration
}

// Redis is a shared modification cache for multi-instance deployments.
// Records are stored JSON-encoded; expiry is delegated to Redis so no
// sweeping is needed.
type Redis struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
	ctx    context.Context
	cancel context.CancelFunc
}

// NewRedis creates a Redis-backed cache and verifies the connection.
func NewRedis(config RedisConfig, logger *zap.Logger) (*Redis, error) {
	ctx, cancel := context.WithCancel(context.Background())

	client := redis.NewClient(&redis.Options{
		Addr:     config.Address,
		Password: config.Password,
		DB:       config.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Redis{
		client: client,
		logger: logger,
		ttl:    config.TTL,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// redisKey hashes the raw cache key; modification prompts plus code
// prefixes are arbitrary text and make poor Redis keys as-is.
func redisKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return "creai:modcache:" + hex.EncodeToString(sum[:])
}

// Get returns the cached record for key, if present.
func (r *Redis) Get(key string) (*component.Record, bool) {
	data, err := r.client.Get(r.ctx, redisKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("redis cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var rec component.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		r.logger.Warn("redis cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return &rec, true
}

// Put stores rec under key. Write failures are logged and swallowed; the
// cache is an optimization, not a dependency.
func (r *Redis) Put(key string, rec *component.Record) {
	data, err := json.Marshal(rec)
	if err != nil {
		r.logger.Warn("failed to marshal cache entry", zap.Error(err))
		return
	}
	if err := r.client.Set(r.ctx, redisKey(key), data, r.ttl).Err(); err != nil {
		r.logger.Warn("redis cache write failed", zap.Error(err))
	}
}

// Clear drops all cache entries owned by this client.
func (r *Redis) Clear() {
	iter := r.client.Scan(r.ctx, 0, "creai:modcache:*", 0).Iterator()
	for iter.Next(r.ctx) {
		if err := r.client.Del(r.ctx, iter.Val()).Err(); err != nil {
			r.logger.Warn("redis cache delete failed", zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		r.logger.Warn("redis cache scan failed", zap.Error(err))
	}
}

// Close releases the connection.
func (r *Redis) Close() error {
	r.cancel()
	return r.client.Close()
}
