package structs

import "github.com/google/uuid"

type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Color     string    `json:"color" validate:"omitempty,max=50"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type AddToWishlistRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}
