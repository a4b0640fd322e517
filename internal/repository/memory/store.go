// Package memory provides map-backed repository implementations used by
// unit tests and by local development without Postgres. Email and
// ingredient-name uniqueness are enforced under the store lock, mirroring
// the database constraints.
package memory

import (
	"context"
	"sync"

	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/contract"
	"ai-recipe-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Store struct {
	mu          sync.Mutex
	users       map[uuid.UUID]*entity.User
	emails      map[string]uuid.UUID
	sessions    map[uuid.UUID]*entity.Session
	queries     []*entity.QueryHistory
	recipes     map[uuid.UUID]*entity.Recipe
	ingredients map[string]*entity.Ingredient
	joins       map[uuid.UUID][]uuid.UUID // recipe id -> ingredient ids
	purchases   map[uuid.UUID]*entity.Purchase
	references  map[string]uuid.UUID
}

func NewStore() *Store {
	return &Store{
		users:       make(map[uuid.UUID]*entity.User),
		emails:      make(map[string]uuid.UUID),
		sessions:    make(map[uuid.UUID]*entity.Session),
		recipes:     make(map[uuid.UUID]*entity.Recipe),
		ingredients: make(map[string]*entity.Ingredient),
		joins:       make(map[uuid.UUID][]uuid.UUID),
		purchases:   make(map[uuid.UUID]*entity.Purchase),
		references:  make(map[string]uuid.UUID),
	}
}

// Factory satisfies unitofwork.RepositoryFactory over a single shared
// store. Transactions are no-ops: every write is applied immediately.
type Factory struct {
	store *Store
}

func NewFactory(store *Store) *Factory {
	return &Factory{store: store}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memoryUnitOfWork{store: f.store}
}

type memoryUnitOfWork struct {
	store *Store
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memoryUnitOfWork) Commit() error                   { return nil }
func (u *memoryUnitOfWork) Rollback() error                 { return nil }

func (u *memoryUnitOfWork) UserRepository() contract.UserRepository {
	return &UserRepository{store: u.store}
}

func (u *memoryUnitOfWork) QueryHistoryRepository() contract.QueryHistoryRepository {
	return &QueryHistoryRepository{store: u.store}
}

func (u *memoryUnitOfWork) RecipeRepository() contract.RecipeRepository {
	return &RecipeRepository{store: u.store}
}

func (u *memoryUnitOfWork) PurchaseRepository() contract.PurchaseRepository {
	return &PurchaseRepository{store: u.store}
}
