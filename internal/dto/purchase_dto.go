package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePurchaseRequest struct {
	RecipeId uuid.UUID `json:"recipe_id" validate:"required"`
	Amount   int64     `json:"amount" validate:"required,gt=0"`
}

type PurchaseResponse struct {
	Id          uuid.UUID `json:"id"`
	RecipeId    uuid.UUID `json:"recipe_id"`
	Provider    string    `json:"provider"`
	Reference   string    `json:"reference"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CheckoutURL string    `json:"checkout_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
