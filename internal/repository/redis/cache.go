package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"urlite/internal/domain"
	"urlite/internal/metrics"

	"github.com/redis/go-redis/v9"
)

// Cache holds resolved links so hot redirects skip the database.
// Cache-aside: the service checks here first, falls back to Postgres on a
// miss, and writes the result back with a TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a new Redis link cache
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// GetLink retrieves a link from cache.
// Returns nil, nil on a cache miss.
func (c *Cache) GetLink(ctx context.Context, shortCode string) (*domain.Link, error) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	}()

	key := linkKey(shortCode)

	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		metrics.RecordCacheMiss()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	metrics.RecordCacheHit()

	var link domain.Link
	if err := json.Unmarshal([]byte(data), &link); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached link: %w", err)
	}

	return &link, nil
}

// SetLink stores a link in cache with the configured TTL
func (c *Cache) SetLink(ctx context.Context, shortCode string, link *domain.Link) error {
	data, err := json.Marshal(link)
	if err != nil {
		return fmt.Errorf("failed to marshal link: %w", err)
	}

	if err := c.client.Set(ctx, linkKey(shortCode), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}

	return nil
}

// DeleteLink evicts a link from cache.
// Called on update and delete so stale destinations are never served.
func (c *Cache) DeleteLink(ctx context.Context, shortCode string) error {
	if err := c.client.Del(ctx, linkKey(shortCode)).Err(); err != nil {
		return fmt.Errorf("redis delete error: %w", err)
	}

	return nil
}

func linkKey(shortCode string) string {
	return fmt.Sprintf("link:%s", shortCode)
}

// InitRedis creates a new Redis client and verifies connectivity
func InitRedis(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,

		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
