package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-recipe-be/internal/dto"
	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/specification"
	"ai-recipe-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IRecipeService interface {
	Suggest(ctx context.Context, userId uuid.UUID, req *dto.SuggestRequest) (*dto.SuggestResponse, error)
	History(ctx context.Context, userId uuid.UUID) ([]*dto.HistoryEntryResponse, error)
	ListRecipes(ctx context.Context) ([]*dto.RecipeResponse, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error)
	ListIngredients(ctx context.Context) ([]*dto.IngredientResponse, error)
}

type recipeService struct {
	uowFactory unitofwork.RepositoryFactory
	generator  IGeneratorService
	publisher  IPublisherService
}

func NewRecipeService(
	uowFactory unitofwork.RepositoryFactory,
	generator IGeneratorService,
	publisher IPublisherService,
) IRecipeService {
	return &recipeService{
		uowFactory: uowFactory,
		generator:  generator,
		publisher:  publisher,
	}
}

// Suggest runs the full flow: generate text for the selection, then
// append one immutable ledger row. The row is written only after
// generation finishes, so an aborted call leaves no partial entry.
func (s *recipeService) Suggest(ctx context.Context, userId uuid.UUID, req *dto.SuggestRequest) (*dto.SuggestResponse, error) {
	result := s.generator.Generate(ctx, req.Ingredients)

	responseText := result.Text
	query := &entity.QueryHistory{
		Id:           uuid.New(),
		UserId:       userId,
		QueryText:    strings.Join(req.Ingredients, ", "),
		Ingredients:  req.Ingredients,
		ResponseText: &responseText,
		Fallback:     result.Fallback,
		CreatedAt:    time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.QueryHistoryRepository().Create(ctx, query); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishCatalogRecipe(query.Id); err != nil {
			fmt.Printf("[WARN] Failed to publish catalog recipe message: %v\n", err)
		}
	}

	return &dto.SuggestResponse{
		QueryId:   query.Id,
		Recipe:    result.Text,
		Fallback:  result.Fallback,
		CreatedAt: query.CreatedAt,
	}, nil
}

func (s *recipeService) History(ctx context.Context, userId uuid.UUID) ([]*dto.HistoryEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.QueryHistoryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		response := ""
		if e.ResponseText != nil {
			response = *e.ResponseText
		}
		res = append(res, &dto.HistoryEntryResponse{
			Id:          e.Id,
			QueryText:   e.QueryText,
			Ingredients: e.Ingredients,
			Response:    response,
			Fallback:    e.Fallback,
			CreatedAt:   e.CreatedAt,
		})
	}
	return res, nil
}

func (s *recipeService) ListRecipes(ctx context.Context) ([]*dto.RecipeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recipes, err := uow.RecipeRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, mapRecipe(r, false))
	}
	return res, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recipe, err := uow.RecipeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrNotFound
	}
	return mapRecipe(recipe, true), nil
}

func (s *recipeService) ListIngredients(ctx context.Context) ([]*dto.IngredientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ingredients, err := uow.RecipeRepository().FindAllIngredients(ctx,
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		res = append(res, &dto.IngredientResponse{Id: ing.Id, Name: ing.Name})
	}
	return res, nil
}

func mapRecipe(r *entity.Recipe, includeFullText bool) *dto.RecipeResponse {
	res := &dto.RecipeResponse{
		Id:          r.Id,
		Title:       r.Title,
		Description: r.Description,
		AiGenerated: r.AiGenerated,
		CreatedAt:   r.CreatedAt,
	}
	if includeFullText {
		res.FullText = r.FullText
	}
	for _, ing := range r.Ingredients {
		res.Ingredients = append(res.Ingredients, dto.IngredientResponse{Id: ing.Id, Name: ing.Name})
	}
	return res
}
