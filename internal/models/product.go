package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// UpdateProductRequest only overwrites the fields that are non-nil.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// ImageFile is an uploaded image held in memory until it is pushed to the asset store.
type ImageFile struct {
	Filename string
	Data     []byte
}

// ProductFilter narrows a catalog listing. A nil MaxPrice means no upper bound.
type ProductFilter struct {
	Keyword  string
	MinPrice float64
	MaxPrice *float64
}
