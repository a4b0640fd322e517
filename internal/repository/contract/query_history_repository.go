package contract

import (
	"context"

	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/specification"
)

// QueryHistoryRepository is append-only: no update or delete exists.
type QueryHistoryRepository interface {
	Create(ctx context.Context, query *entity.QueryHistory) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QueryHistory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QueryHistory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
