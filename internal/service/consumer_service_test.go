package service

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/memory"
	"ai-recipe-be/internal/repository/specification"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogPipeline(t *testing.T) (IPublisherService, IConsumerService, *memory.Store) {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	store := memory.NewStore()
	factory := memory.NewFactory(store)
	publisher := NewPublisherService("catalog.test", pubSub)
	consumer := NewConsumerService(pubSub, "catalog.test", factory)
	return publisher, consumer, store
}

func recordQuery(t *testing.T, store *memory.Store, response string, fallback bool, ingredients []string) uuid.UUID {
	t.Helper()
	factory := memory.NewFactory(store)
	uow := factory.NewUnitOfWork(context.Background())

	query := &entity.QueryHistory{
		Id:           uuid.New(),
		UserId:       uuid.New(),
		QueryText:    "test query",
		Ingredients:  ingredients,
		ResponseText: &response,
		Fallback:     fallback,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, uow.QueryHistoryRepository().Create(context.Background(), query))
	return query.Id
}

func TestConsumerFilesGeneratedRecipe(t *testing.T) {
	publisher, consumer, store := newCatalogPipeline(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, consumer.Consume(ctx))

	queryId := recordQuery(t, store, "# Tomato Egg Scramble\n\n1. Cook it.", false, []string{"Tomato", "egg"})
	require.NoError(t, publisher.PublishCatalogRecipe(queryId))

	factory := memory.NewFactory(store)
	uow := factory.NewUnitOfWork(ctx)

	require.Eventually(t, func() bool {
		recipes, err := uow.RecipeRepository().FindAll(ctx, specification.AiGeneratedOnly{})
		return err == nil && len(recipes) == 1
	}, 2*time.Second, 10*time.Millisecond)

	recipes, err := uow.RecipeRepository().FindAll(ctx, specification.AiGeneratedOnly{})
	require.NoError(t, err)
	recipe := recipes[0]
	assert.Equal(t, "Tomato Egg Scramble", recipe.Title, "title comes from the first line, heading markers stripped")
	assert.True(t, recipe.AiGenerated)

	// Ingredients are normalized to lowercase and linked.
	full, err := uow.RecipeRepository().FindOne(ctx, specification.ByID{ID: recipe.Id})
	require.NoError(t, err)
	require.Len(t, full.Ingredients, 2)
	names := []string{full.Ingredients[0].Name, full.Ingredients[1].Name}
	assert.ElementsMatch(t, []string{"tomato", "egg"}, names)
}

func TestConsumerSkipsFallbackEntries(t *testing.T) {
	publisher, consumer, store := newCatalogPipeline(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, consumer.Consume(ctx))

	queryId := recordQuery(t, store, "Simple rice Stir-Together", true, []string{"rice"})
	require.NoError(t, publisher.PublishCatalogRecipe(queryId))

	factory := memory.NewFactory(store)
	uow := factory.NewUnitOfWork(ctx)

	// Give the worker a moment, then confirm nothing was filed.
	time.Sleep(100 * time.Millisecond)
	recipes, err := uow.RecipeRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestRecipeTitle(t *testing.T) {
	assert.Equal(t, "Tomato Pasta", recipeTitle("# Tomato Pasta\n\n1. Cook."))
	assert.Equal(t, "Untitled recipe", recipeTitle("\n\n  \n"))

	// Truncation counts runes: a long multi-byte line must come back
	// valid UTF-8, never cut inside a character.
	long := strings.Repeat("é", 300)
	title := recipeTitle(long)
	assert.True(t, utf8.ValidString(title))
	assert.Equal(t, 255, utf8.RuneCountInString(title))

	// Invalid byte sequences are dropped, not stored.
	title = recipeTitle("Sopa de ajo\xff\xfe caliente")
	assert.True(t, utf8.ValidString(title))
	assert.Equal(t, "Sopa de ajo caliente", title)
}

func TestConsumerIgnoresUnknownQuery(t *testing.T) {
	publisher, consumer, store := newCatalogPipeline(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, consumer.Consume(ctx))
	require.NoError(t, publisher.PublishCatalogRecipe(uuid.New()))

	factory := memory.NewFactory(store)
	uow := factory.NewUnitOfWork(ctx)

	time.Sleep(100 * time.Millisecond)
	recipes, err := uow.RecipeRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}
