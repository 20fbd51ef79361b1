// Package store provides production storage backends for the SDK's KVStore
// interface.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	entitysdk "github.com/reliquary/entity-sdk-go"
)

// RedisKVStore implements entitysdk.KVStore over Redis.
// Keys are laid out as "{prefix}:{namespace}:{key}".
type RedisKVStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	ctx    context.Context
}

// RedisConfig configures the Redis store.
type RedisConfig struct {
	Prefix string        // key prefix, default "reliquary"
	TTL    time.Duration // TTL for entries, 0 = no expiry
}

// NewRedisKVStore creates a KVStore backed by the given Redis client.
// Works with Client, ClusterClient, and Ring.
func NewRedisKVStore(client redis.UniversalClient, config ...RedisConfig) *RedisKVStore {
	cfg := RedisConfig{Prefix: "reliquary"}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "reliquary"
	}
	return &RedisKVStore{
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
		ctx:    context.Background(),
	}
}

func (r *RedisKVStore) key(namespace, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, namespace, key)
}

func (r *RedisKVStore) Get(namespace, key string) (string, error) {
	val, err := r.client.Get(r.ctx, r.key(namespace, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (r *RedisKVStore) Set(namespace, key, value string) error {
	return r.client.Set(r.ctx, r.key(namespace, key), value, r.ttl).Err()
}

func (r *RedisKVStore) Delete(namespace, key string) error {
	return r.client.Del(r.ctx, r.key(namespace, key)).Err()
}

func (r *RedisKVStore) ListKeys(namespace string) ([]string, error) {
	pattern := fmt.Sprintf("%s:%s:*", r.prefix, namespace)
	keys, err := r.client.Keys(r.ctx, pattern).Result()
	if err != nil {
		return nil, err
	}
	prefixLen := len(fmt.Sprintf("%s:%s:", r.prefix, namespace))
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		if len(k) > prefixLen {
			result = append(result, k[prefixLen:])
		}
	}
	return result, nil
}

var _ entitysdk.KVStore = &RedisKVStore{}
