package entity

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	Id          uuid.UUID
	Title       string
	Description string
	FullText    string
	AiGenerated bool
	CreatedAt   time.Time
	Ingredients []*Ingredient
}

type Ingredient struct {
	Id   uuid.UUID
	Name string
}

// RecipeIngredient links one Recipe to one Ingredient.
type RecipeIngredient struct {
	RecipeId     uuid.UUID
	IngredientId uuid.UUID
}
