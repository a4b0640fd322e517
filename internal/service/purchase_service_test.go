package service

import (
	"context"
	"testing"
	"time"

	"ai-recipe-be/internal/config"
	"ai-recipe-be/internal/dto"
	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPurchaseService() (IPurchaseService, *memory.Store) {
	store := memory.NewStore()
	// No server key configured, so no external call is made.
	svc := NewPurchaseService(memory.NewFactory(store), nil, config.PaymentConfig{Currency: "NGN"})
	return svc, store
}

func seedRecipe(t *testing.T, store *memory.Store) *entity.Recipe {
	t.Helper()
	uow := memory.NewFactory(store).NewUnitOfWork(context.Background())
	recipe := &entity.Recipe{
		Id:       uuid.New(),
		Title:    "Classic Tomato Pasta",
		FullText: "Classic Tomato Pasta\n\n1. Boil pasta.",
	}
	require.NoError(t, uow.RecipeRepository().Create(context.Background(), recipe))
	return recipe
}

func TestCreatePurchase(t *testing.T) {
	svc, store := newTestPurchaseService()
	ctx := context.Background()
	userId := uuid.New()
	recipe := seedRecipe(t, store)

	res, err := svc.CreatePurchase(ctx, userId, &dto.CreatePurchaseRequest{
		RecipeId: recipe.Id,
		Amount:   1500,
	})
	require.NoError(t, err)
	assert.Equal(t, recipe.Id, res.RecipeId)
	assert.Equal(t, int64(1500), res.Amount)
	assert.Equal(t, "NGN", res.Currency)
	assert.Equal(t, string(entity.PurchaseStatusInitiated), res.Status)
	assert.NotEmpty(t, res.Reference)
}

func TestCreatePurchaseUnknownRecipe(t *testing.T) {
	svc, _ := newTestPurchaseService()

	res, err := svc.CreatePurchase(context.Background(), uuid.New(), &dto.CreatePurchaseRequest{
		RecipeId: uuid.New(),
		Amount:   1500,
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, res)
}

func TestListPurchasesScopedToUser(t *testing.T) {
	svc, store := newTestPurchaseService()
	ctx := context.Background()
	userId := uuid.New()
	otherId := uuid.New()
	recipe := seedRecipe(t, store)

	_, err := svc.CreatePurchase(ctx, userId, &dto.CreatePurchaseRequest{RecipeId: recipe.Id, Amount: 1000})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = svc.CreatePurchase(ctx, userId, &dto.CreatePurchaseRequest{RecipeId: recipe.Id, Amount: 2000})
	require.NoError(t, err)
	_, err = svc.CreatePurchase(ctx, otherId, &dto.CreatePurchaseRequest{RecipeId: recipe.Id, Amount: 3000})
	require.NoError(t, err)

	purchases, err := svc.ListPurchases(ctx, userId)
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.Equal(t, int64(2000), purchases[0].Amount, "newest first")
	assert.Equal(t, int64(1000), purchases[1].Amount)

	empty, err := svc.ListPurchases(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
