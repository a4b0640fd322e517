package implementation

import (
	"context"
	"errors"

	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/mapper"
	"ai-recipe-be/internal/model"
	"ai-recipe-be/internal/repository/contract"
	"ai-recipe-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecipeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecipeMapper
}

func NewRecipeRepository(db *gorm.DB) contract.RecipeRepository {
	return &RecipeRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecipeMapper(),
	}
}

func (r *RecipeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecipeRepositoryImpl) Create(ctx context.Context, recipe *entity.Recipe) error {
	m := r.mapper.ToModel(recipe)
	// Join rows are written separately via LinkIngredient.
	if err := r.db.WithContext(ctx).Omit("Ingredients").Create(m).Error; err != nil {
		return err
	}
	recipe.Id = m.Id
	recipe.CreatedAt = m.CreatedAt
	return nil
}

func (r *RecipeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Recipe, error) {
	var m model.Recipe
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Ingredients"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RecipeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recipe, error) {
	var models []*model.Recipe
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Ingredients"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RecipeRepositoryImpl) FirstOrCreateIngredient(ctx context.Context, name string) (*entity.Ingredient, error) {
	// Struct condition, not a string clause: only struct conditions are
	// copied into the row FirstOrCreate inserts on a miss.
	m := model.Ingredient{Name: name}
	err := r.db.WithContext(ctx).
		Where(model.Ingredient{Name: name}).
		Attrs(model.Ingredient{Id: uuid.New()}).
		FirstOrCreate(&m).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.IngredientToEntity(&m), nil
}

func (r *RecipeRepositoryImpl) FindAllIngredients(ctx context.Context, specs ...specification.Specification) ([]*entity.Ingredient, error) {
	var models []*model.Ingredient
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.IngredientsToEntities(models), nil
}

func (r *RecipeRepositoryImpl) LinkIngredient(ctx context.Context, recipeId, ingredientId uuid.UUID) error {
	join := model.RecipeIngredient{RecipeId: recipeId, IngredientId: ingredientId}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&join).Error
}
