package service_test

import (
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/shopfront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireAppErrorCode(t *testing.T, err error, code string) *appErrors.AppError {
	t.Helper()

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)

	return appErr
}

func ptr[T any](v T) *T {
	return &v
}
