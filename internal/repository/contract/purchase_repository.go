package contract

import (
	"context"

	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/specification"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Purchase, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Purchase, error)
}
