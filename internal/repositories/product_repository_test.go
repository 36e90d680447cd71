package repository_test

import (
	"database/sql"
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

var productCols = []string{"id", "name", "description", "price", "image", "created_at", "updated_at"}

func setupProductRepoTest(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewProductRepo(db), mock
}

func TestNewProductRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	assert.NotNil(t, repo, "NewProductRepo should return a non-nil repository")
}

func TestProductRepository_CreateProduct(t *testing.T) {
	ctx := t.Context()
	expectedSQL := regexp.QuoteMeta(`INSERT INTO products (id, name, description, price, image) VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		product := &models.Product{
			ID:          uuid.New(),
			Name:        "Blue Mug",
			Description: "Ceramic mug",
			Price:       12.5,
			Image:       "https://storage.googleapis.com/bucket/products/mug.png",
		}
		now := time.Now()

		mock.ExpectQuery(expectedSQL).
			WithArgs(product.ID, product.Name, product.Description, product.Price, product.Image).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		// Act
		err := repo.CreateProduct(ctx, product)

		// Assert
		require.NoError(t, err, "CreateProduct should not return an error on success")
		assert.WithinDuration(t, now, product.CreatedAt, time.Second)
		assert.WithinDuration(t, now, product.UpdatedAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		product := &models.Product{ID: uuid.New(), Name: "Broken", Description: "x", Price: 1}
		dbError := errors.New("database insertion error")

		mock.ExpectQuery(expectedSQL).
			WithArgs(product.ID, product.Name, product.Description, product.Price, product.Image).
			WillReturnError(dbError)

		// Act
		err := repo.CreateProduct(ctx, product)

		// Assert
		assert.ErrorIs(t, err, dbError, "Returned error should be the database error")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_GetProductByID(t *testing.T) {
	ctx := t.Context()
	productID := uuid.New()
	now := time.Now()
	expectedSQL := regexp.QuoteMeta(`SELECT id, name, description, price, image, created_at, updated_at FROM products WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectQuery(expectedSQL).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows(productCols).AddRow(productID, "Lamp", "Desk lamp", 49.99, "img", now, now))

		// Act
		product, err := repo.GetProductByID(ctx, productID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "Lamp", product.Name)
		assert.Equal(t, 49.99, product.Price)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectQuery(expectedSQL).WithArgs(productID).WillReturnError(sql.ErrNoRows)

		// Act
		product, err := repo.GetProductByID(ctx, productID)

		// Assert
		assert.Nil(t, product)
		assert.ErrorIs(t, err, sql.ErrNoRows, "Missing rows must stay detectable")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_UpdateProduct(t *testing.T) {
	ctx := t.Context()
	expectedSQL := regexp.QuoteMeta(`UPDATE products SET name = $1, description = $2, price = $3, image = $4, updated_at = NOW() WHERE id = $5 RETURNING created_at, updated_at`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		product := &models.Product{ID: uuid.New(), Name: "Lamp", Description: "Desk lamp", Price: 39.99, Image: "img"}
		created := time.Now().Add(-time.Hour)
		updated := time.Now()

		mock.ExpectQuery(expectedSQL).
			WithArgs(product.Name, product.Description, product.Price, product.Image, product.ID).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, updated))

		// Act
		err := repo.UpdateProduct(ctx, product)

		// Assert
		require.NoError(t, err)
		assert.WithinDuration(t, created, product.CreatedAt, time.Second)
		assert.WithinDuration(t, updated, product.UpdatedAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		product := &models.Product{ID: uuid.New(), Name: "Lamp"}

		mock.ExpectQuery(expectedSQL).WillReturnError(sql.ErrNoRows)

		// Act
		err := repo.UpdateProduct(ctx, product)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_DeleteProduct(t *testing.T) {
	ctx := t.Context()
	productID := uuid.New()
	expectedSQL := regexp.QuoteMeta(`DELETE FROM products WHERE id = $1 RETURNING id, name, description, price, image, created_at, updated_at`)

	t.Run("Success - Returns Removed Record", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		now := time.Now()

		mock.ExpectQuery(expectedSQL).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows(productCols).AddRow(productID, "Lamp", "Desk lamp", 49.99, "img", now, now))

		// Act
		product, err := repo.DeleteProduct(ctx, productID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "Lamp", product.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectQuery(expectedSQL).WithArgs(productID).WillReturnError(sql.ErrNoRows)

		// Act
		product, err := repo.DeleteProduct(ctx, productID)

		// Assert
		assert.Nil(t, product)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_ListProducts(t *testing.T) {
	ctx := t.Context()
	now := time.Now()

	t.Run("Success - Price Floor Only", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		page := models.NewPageRequest(2, 8)
		id1, id2 := uuid.New(), uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products WHERE price >= $1`)).
			WithArgs(float64(0)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

		mock.ExpectQuery(regexp.QuoteMeta(`FROM products WHERE price >= $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
			WithArgs(float64(0), 8, 8).
			WillReturnRows(sqlmock.NewRows(productCols).
				AddRow(id1, "Newest", "d", 10.0, "", now, now).
				AddRow(id2, "Older", "d", 20.0, "", now.Add(-time.Hour), now))

		// Act
		products, total, err := repo.ListProducts(ctx, models.ProductFilter{}, page)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 10, total)
		require.Len(t, products, 2)
		assert.Equal(t, id1, products[0].ID)
		assert.Equal(t, id2, products[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Keyword And Price Range", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		maxPrice := 50.0
		filter := models.ProductFilter{Keyword: "50%_off", MinPrice: 10, MaxPrice: &maxPrice}
		page := models.NewPageRequest(1, 8)
		pattern := `%50\%\_off%`

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products WHERE price >= $1 AND price <= $2 AND name ILIKE $3`)).
			WithArgs(10.0, 50.0, pattern).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE price >= $1 AND price <= $2 AND name ILIKE $3 ORDER BY created_at DESC LIMIT $4 OFFSET $5`)).
			WithArgs(10.0, 50.0, pattern, 8, 0).
			WillReturnRows(sqlmock.NewRows(productCols))

		// Act
		products, total, err := repo.ListProducts(ctx, filter, page)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.NotNil(t, products, "An empty page should be an empty slice")
		assert.Empty(t, products)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Count Error", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		dbErr := errors.New("count failed")

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products`)).WillReturnError(dbErr)

		// Act
		products, total, err := repo.ListProducts(ctx, models.ProductFilter{}, models.NewPageRequest(1, 8))

		// Assert
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, products)
		assert.Zero(t, total)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Scan Error", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
			WillReturnRows(sqlmock.NewRows(productCols).AddRow("not-a-uuid", "x", "d", 1.0, "", now, now))

		// Act
		_, _, err := repo.ListProducts(ctx, models.ProductFilter{}, models.NewPageRequest(1, 8))

		// Assert
		assert.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
