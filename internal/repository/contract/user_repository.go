package contract

import (
	"context"

	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error
	SetActive(ctx context.Context, userId uuid.UUID, active bool) error

	// Sessions
	CreateSession(ctx context.Context, session *entity.Session) error
	FindSession(ctx context.Context, specs ...specification.Specification) (*entity.Session, error)
	RevokeSession(ctx context.Context, id uuid.UUID) error
}
