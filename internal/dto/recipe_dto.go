package dto

import (
	"time"

	"github.com/google/uuid"
)

type SuggestRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,required"`
}

type SuggestResponse struct {
	QueryId   uuid.UUID `json:"query_id"`
	Recipe    string    `json:"recipe"`
	Fallback  bool      `json:"fallback"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryEntryResponse struct {
	Id          uuid.UUID `json:"id"`
	QueryText   string    `json:"query_text"`
	Ingredients []string  `json:"ingredients"`
	Response    string    `json:"response"`
	Fallback    bool      `json:"fallback"`
	CreatedAt   time.Time `json:"created_at"`
}

type IngredientResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type RecipeResponse struct {
	Id          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	FullText    string               `json:"full_text,omitempty"`
	AiGenerated bool                 `json:"ai_generated"`
	Ingredients []IngredientResponse `json:"ingredients,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// CatalogRecipeMessage is the payload published after a suggestion is
// recorded, consumed by the catalog enrichment worker.
type CatalogRecipeMessage struct {
	QueryId uuid.UUID `json:"query_id"`
}
