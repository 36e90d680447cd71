package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/shopfront/internal/api/middleware"
	"github.com/aaravmahajanofficial/shopfront/internal/cache"
	"github.com/aaravmahajanofficial/shopfront/internal/errors"
	"github.com/aaravmahajanofficial/shopfront/internal/models"
	repository "github.com/aaravmahajanofficial/shopfront/internal/repositories"
	"github.com/aaravmahajanofficial/shopfront/internal/storage"
	"github.com/aaravmahajanofficial/shopfront/internal/utils"
	"github.com/google/uuid"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest, image *models.ImageFile) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest, image *models.ImageFile) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter, page models.PageRequest) ([]*models.Product, int, error)
}

type productService struct {
	repo   repository.ProductRepository
	images storage.ImageStore
	cache  cache.ProductCache
}

// NewProductService wires the catalog. productCache may be nil, in which case reads go straight to the store.
func NewProductService(repo repository.ProductRepository, images storage.ImageStore, productCache cache.ProductCache) ProductService {
	return &productService{repo: repo, images: images, cache: productCache}
}

func (s *productService) uploadImage(ctx context.Context, image *models.ImageFile) (string, error) {
	if s.images == nil {
		return "", errors.ThirdPartyError("Image uploads are not configured")
	}

	url, err := s.images.Upload(ctx, image)
	if err != nil {
		if stdErrors.Is(err, storage.ErrNotImage) {
			return "", errors.ValidationError("Image must be a valid image file").WithError(err)
		}

		return "", errors.ThirdPartyError("Failed to upload image").WithError(err)
	}

	return url, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest, image *models.ImageFile) (*models.Product, error) {

	product := &models.Product{
		ID:          uuid.New(),
		Name:        utils.SanitizeText(req.Name),
		Description: utils.SanitizeText(req.Description),
		Price:       req.Price,
	}

	if product.Name == "" || product.Description == "" {
		return nil, errors.ValidationError("Name and description are required")
	}

	// the image goes first so a failed upload never leaves a product behind
	if image != nil {
		url, err := s.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		product.Image = url
	}

	err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	logger := middleware.LoggerFromContext(ctx)

	if s.cache != nil {
		product, found, err := s.cache.GetProduct(ctx, id)
		if err != nil {
			logger.Warn("Product cache read failed", slog.String("productId", id.String()), slog.Any("error", err))
		} else if found {
			return product, nil
		}
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to retrieve product").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.SetProduct(ctx, product); err != nil {
			logger.Warn("Product cache write failed", slog.String("productId", id.String()), slog.Any("error", err))
		}
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest, image *models.ImageFile) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to retrieve product").WithError(err)
	}

	if req.Name != nil {
		product.Name = utils.SanitizeText(*req.Name)
	}
	if req.Description != nil {
		product.Description = utils.SanitizeText(*req.Description)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	if product.Name == "" || product.Description == "" {
		return nil, errors.ValidationError("Name and description cannot be empty")
	}

	if image != nil {
		url, err := s.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		product.Image = url
	}

	err = s.repo.UpdateProduct(ctx, product)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, id)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	product, err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to delete product").WithError(err)
	}

	s.invalidate(ctx, id)

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter, page models.PageRequest) ([]*models.Product, int, error) {

	if filter.MinPrice < 0 {
		filter.MinPrice = 0
	}

	if filter.MaxPrice != nil && *filter.MaxPrice < filter.MinPrice {
		return nil, 0, errors.ValidationError("Maximum price must not be below the minimum price")
	}

	products, total, err := s.repo.ListProducts(ctx, filter, page)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}

	if err := s.cache.InvalidateProduct(ctx, id); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product cache invalidation failed", slog.String("productId", id.String()), slog.Any("error", err))
	}
}
