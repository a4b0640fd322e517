package contract

import (
	"context"

	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RecipeRepository interface {
	Create(ctx context.Context, recipe *entity.Recipe) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Recipe, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recipe, error)

	// FirstOrCreateIngredient resolves an ingredient by its unique name,
	// inserting it when missing.
	FirstOrCreateIngredient(ctx context.Context, name string) (*entity.Ingredient, error)
	FindAllIngredients(ctx context.Context, specs ...specification.Specification) ([]*entity.Ingredient, error)
	LinkIngredient(ctx context.Context, recipeId, ingredientId uuid.UUID) error
}
