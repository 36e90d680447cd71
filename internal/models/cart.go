package models

import (
	"time"

	"github.com/google/uuid"
)

type CartLine struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image,omitempty"`
	Quantity  int       `json:"quantity"`
}

type Cart struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Lines     []CartLine `json:"products"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartLineInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Price     *float64  `json:"price" validate:"required,gte=0"`
	Image     string    `json:"image,omitempty"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type AddItemRequest struct {
	Product *CartLineInput `json:"product" validate:"required"`
}

type UpdateQuantityRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=1"`
}

// RemoveItemRequest without a product id clears the whole cart.
type RemoveItemRequest struct {
	ProductID *uuid.UUID `json:"productId,omitempty"`
}

func (in *CartLineInput) ToLine() CartLine {
	line := CartLine{
		ProductID: in.ProductID,
		Name:      in.Name,
		Image:     in.Image,
		Quantity:  in.Quantity,
	}

	if in.Price != nil {
		line.Price = *in.Price
	}

	return line
}
