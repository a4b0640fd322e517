package unitofwork

import (
	"context"

	"ai-recipe-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	QueryHistoryRepository() contract.QueryHistoryRepository
	RecipeRepository() contract.RecipeRepository
	PurchaseRepository() contract.PurchaseRepository
}
