// util/cache_service.go

package util

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	echo_errors "github.com/923325596/albedo-boot/errors"
	logger "github.com/923325596/albedo-boot/logging"
)

// Cache is one named keyspace.
type Cache interface {
	Name() string
	// Get decodes the entry for key into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Put(ctx context.Context, key string, value interface{}) error
	// Evict removes key. Evicting a missing key is not an error.
	Evict(ctx context.Context, key string) error
}

// CacheManager hands out named caches.
type CacheManager interface {
	GetCache(name string) Cache
}

type cacheManager struct {
	mu       sync.Mutex
	caches   map[string]Cache
	newCache func(name string) Cache
}

func (m *cacheManager) GetCache(name string) Cache {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.caches[name]
	if !ok {
		c = m.newCache(name)
		m.caches[name] = c
	}
	return c
}

// NewRedisCacheManager stores entries in Redis under "<name>::<key>".
func NewRedisCacheManager(client redis.Cmdable, ttl time.Duration) CacheManager {
	return &cacheManager{
		caches: make(map[string]Cache),
		newCache: func(name string) Cache {
			return NewRedisCache(client, name, ttl)
		},
	}
}

// NewLRUCacheManager keeps entries in process, size entries per cache.
func NewLRUCacheManager(size int, ttl time.Duration) CacheManager {
	return &cacheManager{
		caches: make(map[string]Cache),
		newCache: func(name string) Cache {
			return NewLRUCache(name, size, ttl)
		},
	}
}

// Values are gob encoded so write-only fields hidden from JSON survive a round trip.
func encode(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, dest interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(dest)
}

type RedisCache struct {
	client redis.Cmdable
	name   string
	ttl    time.Duration
}

func NewRedisCache(client redis.Cmdable, name string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, name: name, ttl: ttl}
}

func (c *RedisCache) Name() string {
	return c.name
}

func (c *RedisCache) key(key string) string {
	return fmt.Sprintf("%s::%s", c.name, key)
}

func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", echo_errors.ErrCacheOperation, err)
	}
	if err := decode(data, dest); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", echo_errors.ErrCacheOperation, c.key(key), err)
	}
	return true, nil
}

func (c *RedisCache) Put(ctx context.Context, key string, value interface{}) error {
	data, err := encode(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", echo_errors.ErrCacheOperation, c.key(key), err)
	}
	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrCacheOperation, err)
	}
	logger.Debug("Cache entry stored", zap.String("cache", c.name), zap.String("key", key))
	return nil
}

func (c *RedisCache) Evict(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrCacheOperation, err)
	}
	logger.Debug("Cache entry evicted", zap.String("cache", c.name), zap.String("key", key))
	return nil
}

type LRUCache struct {
	name  string
	store *expirable.LRU[string, []byte]
}

func NewLRUCache(name string, size int, ttl time.Duration) *LRUCache {
	return &LRUCache{name: name, store: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *LRUCache) Name() string {
	return c.name
}

func (c *LRUCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	data, ok := c.store.Get(key)
	if !ok {
		return false, nil
	}
	if err := decode(data, dest); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", echo_errors.ErrCacheOperation, key, err)
	}
	return true, nil
}

func (c *LRUCache) Put(_ context.Context, key string, value interface{}) error {
	data, err := encode(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", echo_errors.ErrCacheOperation, key, err)
	}
	c.store.Add(key, data)
	return nil
}

func (c *LRUCache) Evict(_ context.Context, key string) error {
	c.store.Remove(key)
	return nil
}

// Len is the number of live entries.
func (c *LRUCache) Len() int {
	return c.store.Len()
}
