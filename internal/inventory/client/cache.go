package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/link/inventory-platform/internal/inventory/domain"
)

// ErrCacheMiss is returned by ProductCache.Get for unknown products.
var ErrCacheMiss = errors.New("product not cached")

// ProductCache keeps the last known version of each product.
type ProductCache interface {
	Get(ctx context.Context, id uint) (*domain.Product, error)
	Set(ctx context.Context, product *domain.Product) error
}

// CacheConfig configures the redis connection. An empty Addr disables the cache.
type CacheConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

const cacheKeyPrefix = "inventory:product:"

type cachedProduct struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RedisProductCache stores products as JSON strings with a TTL.
type RedisProductCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisProductCache(client redis.UniversalClient, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{client: client, ttl: ttl}
}

// NewRedisClient connects to redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, cfg CacheConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func (c *RedisProductCache) Get(ctx context.Context, id uint) (*domain.Product, error) {
	raw, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cached product: %w", err)
	}

	var cp cachedProduct
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, fmt.Errorf("failed to decode cached product: %w", err)
	}
	return &domain.Product{ID: cp.ID, Name: cp.Name}, nil
}

func (c *RedisProductCache) Set(ctx context.Context, product *domain.Product) error {
	raw, err := json.Marshal(cachedProduct{ID: product.ID, Name: product.Name})
	if err != nil {
		return fmt.Errorf("failed to encode product: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(product.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache product: %w", err)
	}
	return nil
}

func cacheKey(id uint) string {
	return fmt.Sprintf("%s%d", cacheKeyPrefix, id)
}
