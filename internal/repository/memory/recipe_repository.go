package memory

import (
	"context"
	"sort"
	"time"

	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RecipeRepository struct {
	store *Store
}

func matchRecipe(r *entity.Recipe, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if r.Id != s.ID {
				return false
			}
		case specification.AiGeneratedOnly:
			if !r.AiGenerated {
				return false
			}
		}
	}
	return true
}

func (r *RecipeRepository) view(recipe *entity.Recipe) *entity.Recipe {
	cp := *recipe
	cp.Ingredients = nil
	for _, ingId := range r.store.joins[recipe.Id] {
		for _, ing := range r.store.ingredients {
			if ing.Id == ingId {
				cpIng := *ing
				cp.Ingredients = append(cp.Ingredients, &cpIng)
			}
		}
	}
	return &cp
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if recipe.Id == uuid.Nil {
		recipe.Id = uuid.New()
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now()
	}
	cp := *recipe
	cp.Ingredients = nil
	r.store.recipes[recipe.Id] = &cp
	return nil
}

func (r *RecipeRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Recipe, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rec := range r.store.recipes {
		if matchRecipe(rec, specs) {
			return r.view(rec), nil
		}
	}
	return nil, nil
}

func (r *RecipeRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recipe, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Recipe
	for _, rec := range r.store.recipes {
		if matchRecipe(rec, specs) {
			out = append(out, r.view(rec))
		}
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "created_at" {
			sort.SliceStable(out, func(i, j int) bool {
				if s.Desc {
					return out[i].CreatedAt.After(out[j].CreatedAt)
				}
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			})
		}
	}
	return out, nil
}

func (r *RecipeRepository) FirstOrCreateIngredient(ctx context.Context, name string) (*entity.Ingredient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if ing, ok := r.store.ingredients[name]; ok {
		cp := *ing
		return &cp, nil
	}
	ing := &entity.Ingredient{Id: uuid.New(), Name: name}
	r.store.ingredients[name] = ing
	cp := *ing
	return &cp, nil
}

func (r *RecipeRepository) FindAllIngredients(ctx context.Context, specs ...specification.Specification) ([]*entity.Ingredient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Ingredient
	for _, ing := range r.store.ingredients {
		cp := *ing
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *RecipeRepository) LinkIngredient(ctx context.Context, recipeId, ingredientId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.joins[recipeId] {
		if existing == ingredientId {
			return nil
		}
	}
	r.store.joins[recipeId] = append(r.store.joins[recipeId], ingredientId)
	return nil
}
