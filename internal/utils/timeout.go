package utils

import (
	"context"
	"time"
)

const (
	DefaultDBTimeout     = 5 * time.Second
	DefaultUploadTimeout = 30 * time.Second
)

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

func WithUploadTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultUploadTimeout)
}
