package repository_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/shopfront/internal/models"
	repository "github.com/aaravmahajanofficial/shopfront/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cartCols = []string{"id", "user_id", "products", "created_at", "updated_at"}

func setupCartRepoTest(t *testing.T) (repository.CartRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewCartRepo(db)
	require.NotNil(t, repo, "NewCartRepo should return a non-nil repository")

	return repo, mock
}

func mustLinesJSON(t *testing.T, lines []models.CartLine) []byte {
	t.Helper()

	data, err := json.Marshal(lines)
	require.NoError(t, err)

	return data
}

func TestCartRepository(t *testing.T) {
	ctx := t.Context()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	now := time.Now()
	lines := []models.CartLine{{ProductID: productID, Name: "Blue Mug", Price: 12.5, Quantity: 2}}

	t.Run("CreateCart", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`INSERT INTO carts (id, user_id, products, created_at, updated_at) VALUES ($1, $2, $3, NOW(), NOW()) ON CONFLICT (user_id) DO UPDATE`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			cart := &models.Cart{ID: cartID, UserID: userID, Lines: lines}

			mock.ExpectQuery(expectedSQL).
				WithArgs(cartID, userID, mustLinesJSON(t, lines)).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(cartID, now, now))

			// Act
			err := repo.CreateCart(ctx, cart)

			// Assert
			require.NoError(t, err, "CreateCart should not return an error on success")
			assert.Equal(t, cartID, cart.ID)
			assert.WithinDuration(t, now, cart.CreatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success - Nil Lines Stored As Empty Array", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			cart := &models.Cart{ID: cartID, UserID: userID}

			mock.ExpectQuery(expectedSQL).
				WithArgs(cartID, userID, []byte("[]")).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(cartID, now, now))

			// Act
			err := repo.CreateCart(ctx, cart)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetCartByUserID", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`SELECT id, user_id, products, created_at, updated_at FROM carts WHERE user_id = $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)

			mock.ExpectQuery(expectedSQL).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows(cartCols).AddRow(cartID, userID, mustLinesJSON(t, lines), now, now))

			// Act
			cart, err := repo.GetCartByUserID(ctx, userID)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, cartID, cart.ID)
			assert.Equal(t, userID, cart.UserID)
			assert.Equal(t, lines, cart.Lines)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)

			mock.ExpectQuery(expectedSQL).WithArgs(userID).WillReturnError(sql.ErrNoRows)

			// Act
			cart, err := repo.GetCartByUserID(ctx, userID)

			// Assert
			assert.Nil(t, cart)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Corrupt Lines", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)

			mock.ExpectQuery(expectedSQL).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows(cartCols).AddRow(cartID, userID, []byte(`{"broken"`), now, now))

			// Act
			cart, err := repo.GetCartByUserID(ctx, userID)

			// Assert
			assert.Nil(t, cart)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to unmarshal cart lines")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("SetLines", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`UPDATE carts SET products = $2, updated_at = NOW() WHERE user_id = $1 RETURNING id, user_id, products, created_at, updated_at`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			updated := []models.CartLine{{ProductID: productID, Name: "Blue Mug", Price: 12.5, Quantity: 5}}
			data := mustLinesJSON(t, updated)

			mock.ExpectQuery(expectedSQL).
				WithArgs(userID, data).
				WillReturnRows(sqlmock.NewRows(cartCols).AddRow(cartID, userID, data, now, now))

			// Act
			cart, err := repo.SetLines(ctx, userID, updated)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, 5, cart.Lines[0].Quantity)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Database Error", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			dbErr := errors.New("update failed")

			mock.ExpectQuery(expectedSQL).WillReturnError(dbErr)

			// Act
			cart, err := repo.SetLines(ctx, userID, lines)

			// Assert
			assert.Nil(t, cart)
			assert.ErrorIs(t, err, dbErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("RemoveLine", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`jsonb_array_elements(products) AS line WHERE line->>'productId' <> $2`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)

			mock.ExpectQuery(expectedSQL).
				WithArgs(userID, productID.String()).
				WillReturnRows(sqlmock.NewRows(cartCols).AddRow(cartID, userID, []byte("[]"), now, now))

			// Act
			cart, err := repo.RemoveLine(ctx, userID, productID)

			// Assert
			require.NoError(t, err)
			assert.NotNil(t, cart.Lines)
			assert.Empty(t, cart.Lines)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("No Cart", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)

			mock.ExpectQuery(expectedSQL).WillReturnError(sql.ErrNoRows)

			// Act
			_, err := repo.RemoveLine(ctx, userID, productID)

			// Assert
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ClearLines", func(t *testing.T) {
		// Arrange
		repo, mock := setupCartRepoTest(t)

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE carts SET products = '[]'::jsonb, updated_at = NOW() WHERE user_id = $1`)).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(cartCols).AddRow(cartID, userID, []byte("[]"), now, now))

		// Act
		cart, err := repo.ClearLines(ctx, userID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, cartID, cart.ID)
		assert.Empty(t, cart.Lines)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
