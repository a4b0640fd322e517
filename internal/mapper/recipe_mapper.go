package mapper

import (
	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/model"
)

type RecipeMapper struct{}

func NewRecipeMapper() *RecipeMapper {
	return &RecipeMapper{}
}

func (m *RecipeMapper) ToEntity(r *model.Recipe) *entity.Recipe {
	if r == nil {
		return nil
	}
	return &entity.Recipe{
		Id:          r.Id,
		Title:       r.Title,
		Description: r.Description,
		FullText:    r.FullText,
		AiGenerated: r.AiGenerated,
		CreatedAt:   r.CreatedAt,
		Ingredients: m.IngredientsToEntities(r.Ingredients),
	}
}

func (m *RecipeMapper) ToModel(r *entity.Recipe) *model.Recipe {
	if r == nil {
		return nil
	}
	return &model.Recipe{
		Id:          r.Id,
		Title:       r.Title,
		Description: r.Description,
		FullText:    r.FullText,
		AiGenerated: r.AiGenerated,
		CreatedAt:   r.CreatedAt,
		Ingredients: m.IngredientsToModels(r.Ingredients),
	}
}

func (m *RecipeMapper) ToEntities(recipes []*model.Recipe) []*entity.Recipe {
	entities := make([]*entity.Recipe, len(recipes))
	for i, r := range recipes {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *RecipeMapper) IngredientToEntity(i *model.Ingredient) *entity.Ingredient {
	if i == nil {
		return nil
	}
	return &entity.Ingredient{Id: i.Id, Name: i.Name}
}

func (m *RecipeMapper) IngredientToModel(i *entity.Ingredient) *model.Ingredient {
	if i == nil {
		return nil
	}
	return &model.Ingredient{Id: i.Id, Name: i.Name}
}

func (m *RecipeMapper) IngredientsToEntities(ingredients []*model.Ingredient) []*entity.Ingredient {
	if ingredients == nil {
		return nil
	}
	entities := make([]*entity.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		entities[i] = m.IngredientToEntity(ing)
	}
	return entities
}

func (m *RecipeMapper) IngredientsToModels(ingredients []*entity.Ingredient) []*model.Ingredient {
	if ingredients == nil {
		return nil
	}
	models := make([]*model.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		models[i] = m.IngredientToModel(ing)
	}
	return models
}
