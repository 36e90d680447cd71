package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aaravmahajanofficial/shopfront/internal/models"
	"github.com/aaravmahajanofficial/shopfront/internal/utils"
	"github.com/google/uuid"
)

// CartRepository stores one cart document per user. Lines live in a JSONB array.
type CartRepository interface {
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetCartByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	SetLines(ctx context.Context, userID uuid.UUID, lines []models.CartLine) (*models.Cart, error)
	RemoveLine(ctx context.Context, userID, productID uuid.UUID) (*models.Cart, error)
	ClearLines(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
}

type cartRepository struct {
	DB *sql.DB
}

const cartColumns = `id, user_id, products, created_at, updated_at`

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func marshalLines[T any](lines []T) ([]byte, error) {
	if lines == nil {
		lines = []T{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lines: %w", err)
	}

	return data, nil
}

func scanCart(row rowScanner) (*models.Cart, error) {
	cart := &models.Cart{}

	var linesJSON []byte

	if err := row.Scan(&cart.ID, &cart.UserID, &linesJSON, &cart.CreatedAt, &cart.UpdatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(linesJSON, &cart.Lines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart lines: %w", err)
	}

	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}

	return cart, nil
}

// CreateCart inserts the user's cart. A concurrent first insert for the same user is
// resolved by keeping the later write.
func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	linesJSON, err := marshalLines(cart.Lines)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO carts (id, user_id, products, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET products = EXCLUDED.products, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, cart.ID, cart.UserID, linesJSON).Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt)
}

func (r *cartRepository) GetCartByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + cartColumns + ` FROM carts WHERE user_id = $1`

	cart, err := scanCart(r.DB.QueryRowContext(dbCtx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return cart, nil
}

// SetLines overwrites the whole line array.
func (r *cartRepository) SetLines(ctx context.Context, userID uuid.UUID, lines []models.CartLine) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	linesJSON, err := marshalLines(lines)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE carts SET products = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + cartColumns

	cart, err := scanCart(r.DB.QueryRowContext(dbCtx, query, userID, linesJSON))
	if err != nil {
		return nil, fmt.Errorf("updating cart: %w", err)
	}

	return cart, nil
}

// RemoveLine pulls every line for productID out of the array. Missing lines are ignored.
func (r *cartRepository) RemoveLine(ctx context.Context, userID, productID uuid.UUID) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE carts SET products = COALESCE(
			(SELECT jsonb_agg(line) FROM jsonb_array_elements(products) AS line WHERE line->>'productId' <> $2),
			'[]'::jsonb
		), updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + cartColumns

	cart, err := scanCart(r.DB.QueryRowContext(dbCtx, query, userID, productID.String()))
	if err != nil {
		return nil, fmt.Errorf("removing cart line: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) ClearLines(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE carts SET products = '[]'::jsonb, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + cartColumns

	cart, err := scanCart(r.DB.QueryRowContext(dbCtx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("clearing cart: %w", err)
	}

	return cart, nil
}
