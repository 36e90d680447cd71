package cache

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/shopfront/internal/models"
	"github.com/google/uuid"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// ProductCache is the read-through layer in front of the product store.
type ProductCache interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, bool, error)
	SetProduct(ctx context.Context, product *models.Product) error
	InvalidateProduct(ctx context.Context, id uuid.UUID) error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const ProductKeyPrefix = "product"

func ProductKey(id uuid.UUID) string {
	return Key(ProductKeyPrefix, id.String())
}
