package service

import (
	"context"

	"ai-recipe-be/internal/dto"
	"ai-recipe-be/internal/repository/specification"
	"ai-recipe-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	ListAccounts(ctx context.Context) ([]*dto.AccountSummary, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	return &dto.UserProfileResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}, nil
}

// ListAccounts is the diagnostic listing: id, email and creation time
// for every account, newest first. Password hashes never leave here.
func (s *userService) ListAccounts(ctx context.Context) ([]*dto.AccountSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AccountSummary, 0, len(users))
	for _, u := range users {
		res = append(res, &dto.AccountSummary{
			Id:        u.Id,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		})
	}
	return res, nil
}
