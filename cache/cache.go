// Package cache memoizes batch predictions in redis. The pipeline is
// deterministic for fixed weights, so a cached result keyed by policy,
// backend, and the exact image bytes is always safe to replay.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sdeoras/servable/pipeline"
)

const keyPrefix = "predict:"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Key digests a batch request into a cache key. Any change to the policy,
// the backend, the image bytes, or their order yields a different key.
// Every field is length-prefixed: JPEG payloads can contain any byte, so a
// separator alone would let different batches share a concatenation.
func Key(backend string, policy pipeline.Policy, images [][]byte) string {
	h := md5.New()
	writeField := func(b []byte) {
		binary.Write(h, binary.BigEndian, uint64(len(b)))
		h.Write(b)
	}
	writeField([]byte(backend))
	writeField([]byte(policy))
	for _, img := range images {
		writeField(img)
	}
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached result for key, or nil on a miss.
func (c *Cache) Get(ctx context.Context, key string) (*pipeline.BatchResult, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var result pipeline.BatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Cache) Set(ctx context.Context, key string, result *pipeline.BatchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
