package service

import (
	"context"
	"database/sql"
	stdErrors "errors"

	"github.com/aaravmahajanofficial/shopfront/internal/errors"
	"github.com/aaravmahajanofficial/shopfront/internal/models"
	repository "github.com/aaravmahajanofficial/shopfront/internal/repositories"
	"github.com/google/uuid"
)

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, line *models.CartLineInput) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*models.Cart, error)
	ClearCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
}

type cartService struct {
	repo repository.CartRepository
}

func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

func emptyCart(userID uuid.UUID) *models.Cart {
	return &models.Cart{UserID: userID, Lines: []models.CartLine{}}
}

// GetCart never reports a missing cart; a user without one sees an empty cart.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {

	cart, err := s.repo.GetCartByUserID(ctx, userID)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return emptyCart(userID), nil
		}
		return nil, errors.DatabaseError("Failed to retrieve cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *models.CartLineInput) (*models.Cart, error) {

	if input == nil || input.ProductID == uuid.Nil || input.Name == "" || input.Price == nil {
		return nil, errors.ValidationError("Product id, name and price are required")
	}

	if *input.Price < 0 {
		return nil, errors.ValidationError("Price must not be negative")
	}

	if input.Quantity < 1 {
		return nil, errors.ValidationError("Quantity must be at least 1")
	}

	line := input.ToLine()

	cart, err := s.repo.GetCartByUserID(ctx, userID)
	if err != nil {
		if !stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.DatabaseError("Failed to retrieve cart").WithError(err)
		}

		cart = &models.Cart{
			ID:     uuid.New(),
			UserID: userID,
			Lines:  []models.CartLine{line},
		}

		if err := s.repo.CreateCart(ctx, cart); err != nil {
			return nil, errors.DatabaseError("Failed to create cart").WithError(err)
		}

		return cart, nil
	}

	lines := cart.Lines
	merged := false

	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}

	if !merged {
		lines = append(lines, line)
	}

	updated, err := s.repo.SetLines(ctx, userID, lines)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	return updated, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) (*models.Cart, error) {

	if quantity < 1 {
		return nil, errors.ValidationError("Quantity must be at least 1")
	}

	cart, err := s.repo.GetCartByUserID(ctx, userID)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Cart not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to retrieve cart").WithError(err)
	}

	found := false

	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			cart.Lines[i].Quantity = quantity
			found = true
			break
		}
	}

	if !found {
		return nil, errors.NotFoundError("Product not found in cart")
	}

	updated, err := s.repo.SetLines(ctx, userID, cart.Lines)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	return updated, nil
}

// RemoveItem is a no-op for products that are not in the cart.
func (s *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*models.Cart, error) {

	cart, err := s.repo.RemoveLine(ctx, userID, productID)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return emptyCart(userID), nil
		}
		return nil, errors.DatabaseError("Failed to remove item from cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {

	cart, err := s.repo.ClearLines(ctx, userID)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return emptyCart(userID), nil
		}
		return nil, errors.DatabaseError("Failed to clear cart").WithError(err)
	}

	return cart, nil
}
