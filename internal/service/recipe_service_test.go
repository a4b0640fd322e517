package service

import (
	"context"
	"testing"
	"time"

	"ai-recipe-be/internal/dto"
	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	queryIds []uuid.UUID
}

func (p *capturingPublisher) PublishCatalogRecipe(queryId uuid.UUID) error {
	p.queryIds = append(p.queryIds, queryId)
	return nil
}

func newTestRecipeService(provider *fakeProvider) (IRecipeService, *memory.Store, *capturingPublisher) {
	store := memory.NewStore()
	factory := memory.NewFactory(store)
	generator := NewGeneratorService(provider, testAIConfig())
	publisher := &capturingPublisher{}
	return NewRecipeService(factory, generator, publisher), store, publisher
}

func TestSuggestRecordsHistory(t *testing.T) {
	provider := &fakeProvider{response: "Tomato Egg Scramble\n\n1. Cook it."}
	svc, _, publisher := newTestRecipeService(provider)
	ctx := context.Background()
	userId := uuid.New()

	res, err := svc.Suggest(ctx, userId, &dto.SuggestRequest{
		Ingredients: []string{"tomato", "egg"},
	})
	require.NoError(t, err)
	assert.Equal(t, provider.response, res.Recipe)
	assert.False(t, res.Fallback)

	history, err := svc.History(ctx, userId)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "tomato, egg", history[0].QueryText)
	assert.Equal(t, []string{"tomato", "egg"}, history[0].Ingredients)
	assert.Equal(t, provider.response, history[0].Response)

	// The recorded entry is handed to the catalog pipeline.
	require.Len(t, publisher.queryIds, 1)
	assert.Equal(t, res.QueryId, publisher.queryIds[0])
}

func TestSuggestFallbackIsRecorded(t *testing.T) {
	provider := &fakeProvider{response: ""}
	svc, _, _ := newTestRecipeService(provider)
	ctx := context.Background()
	userId := uuid.New()

	res, err := svc.Suggest(ctx, userId, &dto.SuggestRequest{
		Ingredients: []string{"rice"},
	})
	require.NoError(t, err)
	assert.True(t, res.Fallback)

	history, err := svc.History(ctx, userId)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Fallback)
}

func TestHistoryNewestFirstAndScoped(t *testing.T) {
	provider := &fakeProvider{response: "A recipe."}
	svc, _, _ := newTestRecipeService(provider)
	ctx := context.Background()
	userId := uuid.New()
	otherId := uuid.New()

	_, err := svc.Suggest(ctx, userId, &dto.SuggestRequest{Ingredients: []string{"tomato"}})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = svc.Suggest(ctx, userId, &dto.SuggestRequest{Ingredients: []string{"egg"}})
	require.NoError(t, err)
	_, err = svc.Suggest(ctx, otherId, &dto.SuggestRequest{Ingredients: []string{"rice"}})
	require.NoError(t, err)

	history, err := svc.History(ctx, userId)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "egg", history[0].QueryText)
	assert.Equal(t, "tomato", history[1].QueryText)

	// A user with no queries gets an empty list, not an error.
	empty, err := svc.History(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetRecipeNotFound(t *testing.T) {
	provider := &fakeProvider{}
	svc, _, _ := newTestRecipeService(provider)

	res, err := svc.GetRecipe(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, res)
}

func TestListRecipesAndIngredients(t *testing.T) {
	provider := &fakeProvider{}
	svc, store, _ := newTestRecipeService(provider)
	ctx := context.Background()

	factory := memory.NewFactory(store)
	uow := factory.NewUnitOfWork(ctx)

	recipe := &entity.Recipe{
		Id:          uuid.New(),
		Title:       "Classic Tomato Pasta",
		Description: "Weeknight pasta.",
		FullText:    "Classic Tomato Pasta\n\n1. Boil pasta.",
		AiGenerated: false,
	}
	require.NoError(t, uow.RecipeRepository().Create(ctx, recipe))

	ing, err := uow.RecipeRepository().FirstOrCreateIngredient(ctx, "tomato")
	require.NoError(t, err)
	require.NoError(t, uow.RecipeRepository().LinkIngredient(ctx, recipe.Id, ing.Id))

	recipes, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Classic Tomato Pasta", recipes[0].Title)
	assert.Empty(t, recipes[0].FullText, "listing omits the full text")

	got, err := svc.GetRecipe(ctx, recipe.Id)
	require.NoError(t, err)
	assert.Equal(t, recipe.FullText, got.FullText)

	ingredients, err := svc.ListIngredients(ctx)
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "tomato", ingredients[0].Name)
}
