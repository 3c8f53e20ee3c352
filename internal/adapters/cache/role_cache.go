package cache

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"gameonbaby/internal/domain"
)

const keyPrefix = "role:"

type redisRoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRoleCache returns a RoleCache backed by Redis. Cache failures are
// logged and treated as misses so an unavailable Redis never blocks requests.
func NewRedisRoleCache(client *redis.Client, ttl time.Duration) domain.RoleCache {
	return &redisRoleCache{client: client, ttl: ttl}
}

func (c *redisRoleCache) Get(ctx context.Context, key string) (domain.Role, bool) {
	val, err := c.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[CACHE] get %s: %v", key, err)
		}
		return "", false
	}
	role, err := domain.ParseRole(val)
	if err != nil {
		return "", false
	}
	return role, true
}

func (c *redisRoleCache) Set(ctx context.Context, key string, role domain.Role) {
	if err := c.client.Set(ctx, keyPrefix+key, string(role), c.ttl).Err(); err != nil {
		log.Printf("[CACHE] set %s: %v", key, err)
	}
}

func (c *redisRoleCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		log.Printf("[CACHE] invalidate %v: %v", keys, err)
	}
}

type memoryEntry struct {
	role      domain.Role
	expiresAt time.Time
}

type memoryRoleCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewMemoryRoleCache returns an in-process RoleCache for single-instance
// deployments and tests.
func NewMemoryRoleCache(ttl time.Duration) domain.RoleCache {
	return &memoryRoleCache{entries: make(map[string]memoryEntry), ttl: ttl}
}

func (c *memoryRoleCache) Get(ctx context.Context, key string) (domain.Role, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.role, true
}

func (c *memoryRoleCache) Set(ctx context.Context, key string, role domain.Role) {
	c.mu.Lock()
	c.entries[key] = memoryEntry{role: role, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *memoryRoleCache) Invalidate(ctx context.Context, keys ...string) {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	c.mu.Unlock()
}
