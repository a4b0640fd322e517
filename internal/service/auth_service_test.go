package service

import (
	"context"
	"sync"
	"testing"

	"ai-recipe-be/internal/config"
	"ai-recipe-be/internal/dto"
	"ai-recipe-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() IAuthService {
	store := memory.NewStore()
	return NewAuthService(memory.NewFactory(store), nil, nil, config.AuthConfig{
		JWTSecret:       "test_secret",
		SessionTTLHours: 1,
	})
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	res, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "cook@example.com",
		Password: "supersecret",
		FullName: "Test Cook",
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "cook@example.com", res.Email)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "cook@example.com",
		Password: "supersecret",
	}, "127.0.0.1", "go-test")
	require.NoError(t, err)
	require.NotEmpty(t, login.AccessToken)

	// The token must resolve back to the account.
	user, err := svc.CurrentUser(ctx, login.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "cook@example.com", user.Email)

	// The stored credential is never the raw password.
	assert.NotEqual(t, "supersecret", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "supersecret")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "dup@example.com",
		Password: "password1",
		FullName: "First",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Email:    "dup@example.com",
		Password: "password2",
		FullName: "Second",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterConcurrentDuplicate(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(ctx, &dto.RegisterRequest{
				Email:    "race@example.com",
				Password: "password1",
				FullName: "Racer",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateEmail)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent signup may win")
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "cook@example.com",
		Password: "supersecret",
		FullName: "Test Cook",
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "cook@example.com",
		Password: "wrong-password",
	}, "127.0.0.1", "go-test")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, login)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService()

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	}, "127.0.0.1", "go-test")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, login)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "cook@example.com",
		Password: "supersecret",
		FullName: "Test Cook",
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "cook@example.com",
		Password: "supersecret",
	}, "127.0.0.1", "go-test")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.AccessToken))

	user, err := svc.CurrentUser(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Nil(t, user, "revoked token must not resolve")

	// Logout is idempotent.
	assert.NoError(t, svc.Logout(ctx, login.AccessToken))
}

func TestCurrentUserGarbageToken(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	user, err := svc.CurrentUser(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.CurrentUser(ctx, "not-a-token")
	require.NoError(t, err)
	assert.Nil(t, user)
}
