package repository_test

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/aaravmahajanofficial/shopfront/internal/repositories"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	t.Run("Success - Every Statement Applied", func(t *testing.T) {
		// Arrange
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		require.NoError(t, err)
		defer db.Close()

		for _, stmt := range repository.Schema {
			mock.ExpectExec(stmt).WillReturnResult(sqlmock.NewResult(0, 0))
		}

		// Act
		err = repository.EnsureSchema(t.Context(), db)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Stops At First Error", func(t *testing.T) {
		// Arrange
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		dbErr := errors.New("permission denied")
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS products")).WillReturnError(dbErr)

		// Act
		err = repository.EnsureSchema(t.Context(), db)

		// Assert
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to bootstrap schema")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNewRepository(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewRepository(db)

	assert.Same(t, db, repo.DB)
	assert.NotNil(t, repo.Product)
	assert.NotNil(t, repo.Cart)
	assert.NotNil(t, repo.Order)
	assert.NotNil(t, repo.Contact)
	assert.NotNil(t, repo.User)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, repository.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, repository.IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, repository.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, repository.IsUniqueViolation(errors.New("boom")))
	assert.False(t, repository.IsUniqueViolation(nil))
}
