package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/shopfront/internal/config"
	"github.com/aaravmahajanofficial/shopfront/internal/metrics"
	"github.com/aaravmahajanofficial/shopfront/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	cfg    *config.CacheConfig
}

func NewRedisCache(client *redis.Client, cfg *config.CacheConfig) *RedisCache {
	return &RedisCache{
		client: client,
		cfg:    cfg,
	}
}

func (r *RedisCache) Get(ctx context.Context, key string, value any) (bool, error) {

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {

		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from redis: %w", key, err)

	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = r.cfg.DefaultTTL
	}

	err = r.client.Set(ctx, key, data, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	return nil

}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {

	if len(keys) == 0 {
		return nil
	}

	err := r.client.Del(ctx, keys...).Err()
	if err != nil {
		return fmt.Errorf("failed to delete keys %s from redis: %w", strings.Join(keys, ","), err)
	}

	return nil

}

func (r *RedisCache) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, bool, error) {
	product := &models.Product{}

	found, err := r.Get(ctx, ProductKey(id), product)
	switch {
	case err != nil:
		metrics.RecordCacheLookup(metrics.CacheError)
		return nil, false, err
	case !found:
		metrics.RecordCacheLookup(metrics.CacheMiss)
		return nil, false, nil
	}

	metrics.RecordCacheLookup(metrics.CacheHit)
	return product, true, nil
}

func (r *RedisCache) SetProduct(ctx context.Context, product *models.Product) error {
	return r.Set(ctx, ProductKey(product.ID), product, r.cfg.ProductTTL)
}

func (r *RedisCache) InvalidateProduct(ctx context.Context, id uuid.UUID) error {
	return r.Delete(ctx, ProductKey(id))
}
