package service

import (
	"context"
	"testing"
	"time"

	"ai-recipe-be/internal/config"
	"ai-recipe-be/internal/dto"
	"ai-recipe-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileNotFound(t *testing.T) {
	svc := NewUserService(memory.NewFactory(memory.NewStore()))

	res, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, res)
}

func TestListAccountsNewestFirst(t *testing.T) {
	store := memory.NewStore()
	factory := memory.NewFactory(store)
	authSvc := NewAuthService(factory, nil, nil, config.AuthConfig{
		JWTSecret:       "test_secret",
		SessionTTLHours: 1,
	})
	svc := NewUserService(factory)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, &dto.RegisterRequest{
		Email: "first@example.com", Password: "password1", FullName: "First",
	})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = authSvc.Register(ctx, &dto.RegisterRequest{
		Email: "second@example.com", Password: "password1", FullName: "Second",
	})
	require.NoError(t, err)

	accounts, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "second@example.com", accounts[0].Email)
	assert.Equal(t, "first@example.com", accounts[1].Email)
}
